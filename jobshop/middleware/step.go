package middleware

import (
	"github.com/sirupsen/logrus"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/engine"
	"github.com/proto-lab-ro/jobshoplab/jobshop/factory"
	"github.com/proto-lab-ro/jobshoplab/jobshop/stochastic"
)

// Step implements §4.10's `step(action) -> (observation, reward,
// terminated, truncated, info)`:
//  1. interpret the action into a transition or NoOp;
//  2. advance the engine by exactly one internal tick;
//  3. on an invalid chosen action, consume a joker instead of failing the
//     call outright;
//  4. detect termination and every truncation condition;
//  5. build the observation and score the reward.
func (e *Environment) Step(action any) (obs any, reward float64, terminated, truncated bool, info map[string]any, err error) {
	info = map[string]any{}
	before := e.state
	timeRNG := e.rng.ForSubsystem(stochastic.SubsystemTime)

	candidates := engine.GenerateStarts(e.state, e.Instance, e.Config.AllowEarlyTransport)
	chosen, ok, interpErr := e.Interpreter.Interpret(action, e.state, e.Instance, candidates)

	var result engine.Result
	var stepErr error
	if interpErr != nil || !ok {
		if interpErr != nil {
			logrus.Warnf("action interpretation failed, consuming joker %d/%d: %v", e.jokersUsed+1, e.Config.TruncationJoker, interpErr)
			e.jokersUsed++
			info["invalid_action"] = interpErr.Error()
		}
		result, stepErr = engine.Step(e.state, e.Instance, timeRNG, nil)
	} else {
		result, stepErr = engine.Step(e.state, e.Instance, timeRNG, &chosen)
		if stepErr != nil {
			if _, rejected := stepErr.(*jobshop.InvalidTransitionError); rejected {
				logrus.Warnf("rejected chosen transition %s(%s), consuming joker %d/%d: %v", chosen.Tag, chosen.ComponentID, e.jokersUsed+1, e.Config.TruncationJoker, stepErr)
				e.jokersUsed++
				info["invalid_action"] = stepErr.Error()
				stepErr = nil
			}
		} else {
			e.actionCnt++
		}
	}
	if stepErr != nil {
		return nil, 0, false, false, info, stepErr
	}

	e.state = result.State
	e.history.Append(jobshop.HistoryRecord{
		OldState:          before,
		ChosenTransitions: result.Applied,
		NewState:          e.state,
		Message:           result.Message,
		SubStates:         result.SubStates,
	})

	terminated = isDone(e.state, e.Instance)
	truncated, reason := e.checkTruncation(len(candidates) == 0 && len(result.Applied) == 0 && e.state.Time == before.Time)
	if truncated {
		info["truncated_reason"] = reason
		logrus.Warnf("[tick %07d] truncated: %s", e.state.Time, reason)
	}
	if terminated {
		logrus.Infof("[tick %07d] all jobs delivered, terminating", e.state.Time)
	}

	obs = e.Observer.Build(e.state, e.Instance)
	reward = e.Scorer.Score(factory.StepOutcome{
		Applied:    result.Applied,
		OldState:   before,
		NewState:   e.state,
		Terminated: terminated,
		Truncated:  truncated,
	})
	return obs, reward, terminated, truncated, info, nil
}

func isDone(s jobshop.State, inst jobshop.Instance) bool {
	for _, j := range s.Jobs {
		if !inst.IsOutputBuffer(j.Location) {
			return false
		}
	}
	return true
}

// checkTruncation implements §4.10 step 4's three truncation conditions.
// stalled is true when this tick made no progress whatsoever (no
// candidates, no applied transitions, no clock advancement) — the
// §7 "deadlock" condition.
func (e *Environment) checkTruncation(stalled bool) (bool, string) {
	if stalled {
		return true, "deadlock"
	}
	if e.Config.TruncationActive && e.jokersUsed > e.Config.TruncationJoker {
		return true, "joker_exhausted"
	}
	if e.Config.MaxTimeFct > 0 && float64(e.state.Time) > e.Config.MaxTimeFct*float64(e.lowerBound) {
		return true, "time_budget"
	}
	if e.Config.MaxActionFct > 0 && e.totalOps > 0 && float64(e.actionCnt) > e.Config.MaxActionFct*float64(e.totalOps) {
		return true, "action_budget"
	}
	return false, ""
}
