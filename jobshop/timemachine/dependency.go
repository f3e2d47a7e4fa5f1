package timemachine

import (
	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

// ResolvedDependencies implements §4.6 R1/R2: returns the deferred
// ComponentTransitions of every transport currently parked on a
// TimeDependency whose resolution condition now holds. The engine
// executes each one in the very next apply step (§4.6 "on resolution...
// executed in the very next apply step").
func ResolvedDependencies(state jobshop.State, inst jobshop.Instance) []jobshop.ComponentTransition {
	var ready []jobshop.ComponentTransition
	for _, t := range state.Transports {
		if !t.OccupiedTill.IsWaiting() {
			continue
		}
		dep := t.OccupiedTill.Wait
		if dependencyResolved(state, inst, dep, t.ID) {
			ready = append(ready, dep.DeferredTransition)
		}
	}
	return ready
}

func dependencyResolved(state jobshop.State, inst jobshop.Instance, dep jobshop.TimeDependency, transportID string) bool {
	// R1: blocking_job_id is no longer at the head position of buffer_id.
	if loc, ok := util.FindAnyBuffer(state, dep.BufferID); ok {
		store := util.BufferStateAt(state, loc).Store
		if cfg, ok := inst.FindBufferConfig(dep.BufferID); ok {
			if !util.IsAtHead(store, cfg.Discipline, dep.BlockingJobID) {
				return true
			}
		}
	}

	// R2: some other transport currently has transport_job == blocking_job_id.
	for _, other := range state.Transports {
		if other.ID != transportID && other.TransportJob == dep.BlockingJobID {
			return true
		}
	}
	return false
}
