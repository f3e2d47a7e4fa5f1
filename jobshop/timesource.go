package jobshop

import "math/rand"

// TimeSource abstracts a deterministic or stochastic duration source,
// per spec.md §9: "treat each distribution as a small object with
// sample(rng) -> int". Implementations live in jobshop/stochastic;
// reproducibility depends only on the rng passed in, never on hidden
// package-level state.
type TimeSource interface {
	Sample(rng *rand.Rand) int64
}

// ConstantTime is the trivial deterministic TimeSource, usable directly in
// jobshop without pulling in the stochastic package.
type ConstantTime int64

func (c ConstantTime) Sample(*rand.Rand) int64 { return int64(c) }
