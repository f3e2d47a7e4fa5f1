package middleware

import (
	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/factory"
	"github.com/proto-lab-ro/jobshoplab/jobshop/stochastic"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

// Environment is the §4.10 agent-loop wrapper: one Instance, one RNG
// partition, one running engine State plus its History, and the factory
// collaborators that turn raw actions into transitions and states into
// observations and rewards.
type Environment struct {
	Instance    jobshop.Instance
	Config      Config
	Interpreter factory.ActionInterpreter
	Observer    factory.ObservationBuilder
	Scorer      factory.RewardScorer

	rng        *stochastic.PartitionedRNG
	state      jobshop.State
	history    jobshop.History
	lowerBound jobshop.Time
	totalOps   int
	actionCnt  int
	jokersUsed int
}

// New builds an Environment around inst, seeded by key. interpreterName,
// observerName and scorerName are resolved through jobshop/factory's
// by-name registry; empty strings select each registry's default.
func New(inst jobshop.Instance, cfg Config, key stochastic.SimulationKey, interpreterName, observerName, scorerName string) *Environment {
	return &Environment{
		Instance:    inst,
		Config:      cfg,
		Interpreter: factory.NewActionInterpreter(interpreterName),
		Observer:    factory.NewObservationBuilder(observerName),
		Scorer:      factory.NewRewardScorer(scorerName),
		rng:         stochastic.NewPartitionedRNG(key),
		totalOps:    util.TotalOperations(inst),
	}
}

// State returns the environment's current engine state.
func (e *Environment) State() jobshop.State { return e.state }

// History returns the append-only record of every internal tick taken so
// far, suitable for jobshop/render.
func (e *Environment) History() jobshop.History { return e.history }
