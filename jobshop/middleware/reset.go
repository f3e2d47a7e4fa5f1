package middleware

import (
	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/engine"
	"github.com/proto-lab-ro/jobshoplab/jobshop/stochastic"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

// Reset implements the §6 `reset() -> (observation, info)` contract:
// builds a fresh initial state, resamples the instance's lower bound
// (used by the time-budget truncation check), and clears the history and
// joker/action counters.
func (e *Environment) Reset() (any, map[string]any, error) {
	timeRNG := e.rng.ForSubsystem(stochastic.SubsystemTime)
	state, err := engine.NewState(e.Instance, timeRNG)
	if err != nil {
		return nil, nil, err
	}
	e.state = state
	e.history = jobshop.History{}
	e.lowerBound = util.LowerBound(e.Instance, timeRNG)
	e.actionCnt = 0
	e.jokersUsed = 0

	obs := e.Observer.Build(e.state, e.Instance)
	info := map[string]any{"lower_bound": e.lowerBound}
	return obs, info, nil
}
