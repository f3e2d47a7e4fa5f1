package stochastic

import (
	"math/rand"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"gonum.org/v1/gonum/stat/distuv"
)

// Deterministic is a jobshop.TimeSource that always samples the same
// fixed duration, regardless of rng. It is the time source for every
// instance field that declares a plain integer rather than a distribution.
type Deterministic int64

func (d Deterministic) Sample(rng *rand.Rand) int64 { return int64(d) }

// Normal samples a truncated-at-zero normal distribution via
// gonum.org/v1/gonum/stat/distuv, rounding to the nearest tick and never
// returning a negative duration.
type Normal struct {
	Mean, StdDev float64
}

func (n Normal) Sample(rng *rand.Rand) int64 {
	dist := distuv.Normal{Mu: n.Mean, Sigma: n.StdDev, Src: rng}
	v := dist.Rand()
	if v < 0 {
		v = 0
	}
	return int64(v + 0.5)
}

// Exponential samples an exponential distribution via
// gonum.org/v1/gonum/stat/distuv, parameterized by rate (1/mean).
type Exponential struct {
	Rate float64
}

func (e Exponential) Sample(rng *rand.Rand) int64 {
	dist := distuv.Exponential{Rate: e.Rate, Src: rng}
	return int64(dist.Rand() + 0.5)
}

// Uniform samples a continuous uniform distribution over [Min, Max] via
// gonum.org/v1/gonum/stat/distuv.
type Uniform struct {
	Min, Max float64
}

func (u Uniform) Sample(rng *rand.Rand) int64 {
	dist := distuv.Uniform{Min: u.Min, Max: u.Max, Src: rng}
	return int64(dist.Rand() + 0.5)
}

var (
	_ jobshop.TimeSource = Deterministic(0)
	_ jobshop.TimeSource = Normal{}
	_ jobshop.TimeSource = Exponential{}
	_ jobshop.TimeSource = Uniform{}
)
