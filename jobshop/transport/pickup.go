package transport

import (
	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

// PickupOutcome is the result of evaluating whether a transport can pick
// up jobID from a buffer right now, per §4.6.
type PickupOutcome struct {
	// Ready is true when jobID is at the buffer's head-of-queue position:
	// the pickup may proceed immediately.
	Ready bool
	// Dependency is populated when Ready is false and jobID is present but
	// not at head: the engine parks the transport on this TimeDependency
	// instead of failing the transition.
	Dependency jobshop.TimeDependency
}

// EvaluatePickup implements §4.6: decide whether a pickup of jobID from
// bufferID (with the given discipline and current store) can proceed, or
// must defer behind the job currently at head. deferred is the
// ComponentTransition to re-attempt once the dependency resolves.
func EvaluatePickup(store []string, discipline jobshop.BufferDiscipline, bufferID, jobID string, deferred jobshop.ComponentTransition) (PickupOutcome, error) {
	if !util.Contains(store, jobID) {
		return PickupOutcome{}, &jobshop.InvalidTransitionError{
			ComponentID: deferred.ComponentID,
			Reason:      "job " + jobID + " is not present in buffer " + bufferID,
		}
	}

	if util.IsAtHead(store, discipline, jobID) {
		return PickupOutcome{Ready: true}, nil
	}

	head, _ := util.HeadOfQueue(store, discipline)
	return PickupOutcome{
		Ready: false,
		Dependency: jobshop.TimeDependency{
			BlockingJobID:      head,
			BufferID:           bufferID,
			DeferredTransition: deferred,
		},
	}, nil
}
