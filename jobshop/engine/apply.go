package engine

import (
	"math/rand"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/handler"
	"github.com/proto-lab-ro/jobshoplab/jobshop/transport"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
	"github.com/proto-lab-ro/jobshoplab/jobshop/validate"
)

// applyStart validates and applies a §4.2 "start" category transition:
// either a machine start or a transport pickup commit. It also serves
// resolved §4.6 TimeDependencies, whose deferred_transition is itself
// always a TransitionTransportPickup.
func applyStart(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance, rng *rand.Rand) (jobshop.State, error) {
	switch t.Tag {
	case jobshop.TransitionMachineSetup, jobshop.TransitionMachineSkipToWorking:
		if err := validate.MachineStart(s, t, inst); err != nil {
			return s, err
		}
		return handler.MachineStart(s, t, inst, rng)
	case jobshop.TransitionTransportPickup:
		if err := validate.TransportPickup(s, t, inst); err != nil {
			return s, err
		}
		return handler.TransportPickup(s, t, inst, rng)
	default:
		return s, &jobshop.InconsistentStateError{ComponentID: t.ComponentID, Reason: "unknown start tag " + string(t.Tag)}
	}
}

// applyCompletion validates and applies a §4.2 "completion" category
// transition: setup/processing/travel elapsing, or an outage exit.
func applyCompletion(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance, rng *rand.Rand) (jobshop.State, error) {
	switch t.Tag {
	case jobshop.TransitionMachineStartWorking:
		if err := validate.MachineEnterWorking(s, t); err != nil {
			return s, err
		}
		return handler.MachineEnterWorking(s, t, inst, rng)
	case jobshop.TransitionMachineComplete:
		if err := validate.MachineComplete(s, t, inst); err != nil {
			return s, err
		}
		return handler.MachineComplete(s, t, inst)
	case jobshop.TransitionMachineOutageExit:
		if err := validate.MachineOutageExit(s, t); err != nil {
			return s, err
		}
		return handler.MachineOutageExit(s, t)
	case jobshop.TransitionTransportLoaded:
		if err := validate.TransportLoaded(s, t); err != nil {
			return s, err
		}
		return handler.TransportLoaded(s, t, inst, rng)
	case jobshop.TransitionTransportComplete:
		dest, err := completionDestination(s, t, inst)
		if err != nil {
			return s, err
		}
		if err := validate.TransportComplete(s, t, inst, dest); err != nil {
			return s, err
		}
		return handler.TransportComplete(s, t, inst)
	case jobshop.TransitionTransportOutageExit:
		if err := validate.TransportOutageExit(s, t); err != nil {
			return s, err
		}
		return handler.TransportOutageExit(s, t)
	default:
		return s, &jobshop.InconsistentStateError{ComponentID: t.ComponentID, Reason: "unknown completion tag " + string(t.Tag)}
	}
}

// completionDestination resolves where a TransitionTransportComplete is
// headed, mirroring handler.TransportComplete's own resolution, so
// validate.TransportComplete can check capacity before the handler commits.
func completionDestination(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance) (string, error) {
	ti := util.FindTransport(s, t.ComponentID)
	if ti < 0 {
		return "", &jobshop.InvalidTransitionError{ComponentID: t.ComponentID, Reason: "no such transport"}
	}
	ji := util.FindJob(s, s.Transports[ti].TransportJob)
	if ji < 0 {
		return "", &jobshop.InvalidTransitionError{ComponentID: t.ComponentID, Reason: "transport carries no known job"}
	}
	job := s.Jobs[ji]
	jc, _ := inst.FindJobConfig(job.ID)
	dest, err := transport.Destination(job, jc, inst)
	if err != nil {
		return "", err
	}
	if mc, ok := inst.FindMachineConfig(dest); ok {
		return mc.PreBufferID, nil
	}
	return dest, nil
}

// applyOutageEnter validates and applies a due §4.7 outage entry, returning
// the ComponentTransition actually applied for history purposes.
func applyOutageEnter(s jobshop.State, po jobshop.PendingOutage, inst jobshop.Instance) (jobshop.State, jobshop.ComponentTransition, error) {
	if mi := util.FindMachine(s, po.ComponentID); mi >= 0 {
		t := jobshop.ComponentTransition{ComponentID: po.ComponentID, Tag: jobshop.TransitionMachineOutageEnter}
		if err := validate.MachineOutageEnter(s, t); err != nil {
			return s, t, err
		}
		out, err := handler.MachineOutageEnter(s, t, po.OutageID, po.Duration)
		return out, t, err
	}
	t := jobshop.ComponentTransition{ComponentID: po.ComponentID, Tag: jobshop.TransitionTransportOutageEnter}
	if err := validate.TransportOutageEnter(s, t); err != nil {
		return s, t, err
	}
	out, err := handler.TransportOutageEnter(s, t, po.OutageID, po.Duration)
	return out, t, err
}

// activeOutageID reads the outage schedule id currently running on a
// component, before its exit transition clears the bookkeeping field.
func activeOutageID(s jobshop.State, componentID string) string {
	if mi := util.FindMachine(s, componentID); mi >= 0 {
		return s.Machines[mi].ActiveOutageID
	}
	if ti := util.FindTransport(s, componentID); ti >= 0 {
		return s.Transports[ti].ActiveOutageID
	}
	return ""
}
