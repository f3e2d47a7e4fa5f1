package factory

import (
	"github.com/proto-lab-ro/jobshoplab/jobshop"
)

// BinaryDecisionInterpreter implements §4.9's canonical action form:
// middleware offers the first of the deterministically-ordered candidate
// transitions, and the raw action is a bool deciding whether to schedule
// it (true) or skip this tick (false, NoOp).
type BinaryDecisionInterpreter struct{}

func (BinaryDecisionInterpreter) Interpret(action any, s jobshop.State, inst jobshop.Instance, candidates []jobshop.ComponentTransition) (jobshop.ComponentTransition, bool, error) {
	accept, ok := action.(bool)
	if !ok {
		return jobshop.ComponentTransition{}, false, &jobshop.InvalidValueError{Value: action, Reason: "binary action interpreter requires a bool"}
	}
	if !accept || len(candidates) == 0 {
		return jobshop.ComponentTransition{}, false, nil
	}
	return candidates[0], true, nil
}
