// Package factory declares §4.9's external collaborator contracts
// (ActionInterpreter, ObservationBuilder, RewardScorer) and provides the
// minimal concrete implementations jobshop/middleware composes into an
// environment by default. Production callers are expected to supply their
// own featurization and reward shaping; these cover the engine's own
// tests and a bare-bones agent loop.
package factory

import (
	"math/rand"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
)

// StepOutcome is what a RewardScorer is asked to score: the transitions
// applied, the states before and after the step, and the terminated and
// truncated flags. It is named distinctly from jobshop.State to avoid pulling
// reward-specific fields into the core data model.
type StepOutcome struct {
	Applied    []jobshop.ComponentTransition
	OldState   jobshop.State
	NewState   jobshop.State
	Terminated bool
	Truncated  bool
}

// ActionInterpreter turns one raw agent action into at most one component
// transition; a false bool means NoOp (§4.9).
type ActionInterpreter interface {
	Interpret(action any, s jobshop.State, inst jobshop.Instance, candidates []jobshop.ComponentTransition) (jobshop.ComponentTransition, bool, error)
}

// ObservationBuilder produces an opaque, pre-declared-shape feature
// object from the current state (§4.9).
type ObservationBuilder interface {
	Build(s jobshop.State, inst jobshop.Instance) any
}

// RewardScorer produces a real-valued scalar from one step's outcome (§4.9).
type RewardScorer interface {
	Score(outcome StepOutcome) float64
}

// Clock abstracts the RNG an ActionInterpreter may consult (e.g. for a
// random tie-break among equally-ranked candidates); most interpreters
// ignore it.
type Clock interface {
	Rand() *rand.Rand
}
