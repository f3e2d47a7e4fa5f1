// Package validate implements §4.3's preconditions: one pure predicate per
// transition kind, each checking (State, ComponentTransition, Instance) and
// returning an *jobshop.InvalidTransitionError when the transition cannot be
// applied. The engine runs these before calling into handler; a rejection
// here simply drops the candidate from the current tick rather than failing
// the run.
package validate

import (
	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

func rejectf(componentID, reason string) error {
	return &jobshop.InvalidTransitionError{ComponentID: componentID, Reason: reason}
}

// MachineStart validates machine:idle->setup and machine:idle->working: the
// machine must be IDLE, the named job's next IDLE operation must target this
// machine, and the job must occupy the pre-buffer's head-of-queue position.
func MachineStart(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance) error {
	mi := util.FindMachine(s, t.ComponentID)
	if mi < 0 {
		return rejectf(t.ComponentID, "no such machine")
	}
	m := s.Machines[mi]
	if m.Phase != jobshop.MachineIdle {
		return rejectf(t.ComponentID, "machine is not idle")
	}

	ji := util.FindJob(s, t.JobID)
	if ji < 0 {
		return rejectf(t.ComponentID, "no such job "+t.JobID)
	}
	job := s.Jobs[ji]
	jc, ok := inst.FindJobConfig(t.JobID)
	if !ok {
		return rejectf(t.ComponentID, "job "+t.JobID+" has no instance config")
	}

	nextOp, _, ok := util.NextIdleOperation(job, jc)
	if !ok {
		return rejectf(t.ComponentID, "job "+t.JobID+" has no idle operation to reserve")
	}
	if nextOp.MachineID != t.ComponentID {
		return rejectf(t.ComponentID, "job "+t.JobID+"'s next operation targets "+nextOp.MachineID+", not this machine")
	}

	mc, _ := inst.FindMachineConfig(t.ComponentID)
	bufCfg, ok := inst.FindBufferConfig(mc.PreBufferID)
	if !ok {
		return rejectf(t.ComponentID, "pre-buffer has no instance config")
	}
	if !util.IsAtHead(m.PreBuffer.Store, bufCfg.Discipline, t.JobID) {
		return rejectf(t.ComponentID, "job "+t.JobID+" is not at the pre-buffer's head-of-queue position")
	}
	if len(m.Buffer.Store) != 0 {
		return rejectf(t.ComponentID, "machine's internal buffer is occupied")
	}
	return nil
}

// MachineEnterWorking validates machine:setup->working: the setup timer
// must have elapsed.
func MachineEnterWorking(s jobshop.State, t jobshop.ComponentTransition) error {
	mi := util.FindMachine(s, t.ComponentID)
	if mi < 0 {
		return rejectf(t.ComponentID, "no such machine")
	}
	m := s.Machines[mi]
	if m.Phase != jobshop.MachineSetup {
		return rejectf(t.ComponentID, "machine is not in setup")
	}
	due, ok := m.OccupiedTill.Due()
	if !ok || due > s.Time {
		return rejectf(t.ComponentID, "setup has not elapsed")
	}
	return nil
}

// MachineComplete validates machine:working->idle: the processing timer
// must have elapsed and the post-buffer must have free capacity.
func MachineComplete(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance) error {
	mi := util.FindMachine(s, t.ComponentID)
	if mi < 0 {
		return rejectf(t.ComponentID, "no such machine")
	}
	m := s.Machines[mi]
	if m.Phase != jobshop.MachineWorking {
		return rejectf(t.ComponentID, "machine is not working")
	}
	due, ok := m.OccupiedTill.Due()
	if !ok || due > s.Time {
		return rejectf(t.ComponentID, "processing has not elapsed")
	}
	mc, _ := inst.FindMachineConfig(t.ComponentID)
	postCfg, ok := inst.FindBufferConfig(mc.PostBufferID)
	if !ok {
		return rejectf(t.ComponentID, "post-buffer has no instance config")
	}
	if len(m.PostBuffer.Store) >= postCfg.Capacity {
		return rejectf(t.ComponentID, "post-buffer "+mc.PostBufferID+" is full")
	}
	return nil
}

// MachineOutageEnter validates machine:*->outage: the machine must not
// already be in an outage.
func MachineOutageEnter(s jobshop.State, t jobshop.ComponentTransition) error {
	mi := util.FindMachine(s, t.ComponentID)
	if mi < 0 {
		return rejectf(t.ComponentID, "no such machine")
	}
	if s.Machines[mi].Phase == jobshop.MachineOutage {
		return rejectf(t.ComponentID, "machine is already in outage")
	}
	return nil
}

// MachineOutageExit validates machine:outage->idle (really outage->prior
// phase): the outage timer must have elapsed.
func MachineOutageExit(s jobshop.State, t jobshop.ComponentTransition) error {
	mi := util.FindMachine(s, t.ComponentID)
	if mi < 0 {
		return rejectf(t.ComponentID, "no such machine")
	}
	m := s.Machines[mi]
	if m.Phase != jobshop.MachineOutage {
		return rejectf(t.ComponentID, "machine is not in outage")
	}
	due, ok := m.OccupiedTill.Due()
	if !ok || due > s.Time {
		return rejectf(t.ComponentID, "outage has not elapsed")
	}
	return nil
}

// TransportPickup validates transport:idle->pickup: the transport must be
// IDLE and the named job must resolve to a real buffer it currently occupies.
// Whether the job is at that buffer's head-of-queue position is not a
// rejection here: handler.TransportPickup defers via a TimeDependency
// instead, per §4.6.
func TransportPickup(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance) error {
	ti := util.FindTransport(s, t.ComponentID)
	if ti < 0 {
		return rejectf(t.ComponentID, "no such transport")
	}
	if s.Transports[ti].Phase != jobshop.TransportIdle {
		return rejectf(t.ComponentID, "transport is not idle")
	}

	ji := util.FindJob(s, t.JobID)
	if ji < 0 {
		return rejectf(t.ComponentID, "no such job "+t.JobID)
	}
	job := s.Jobs[ji]
	loc, ok := util.FindAnyBuffer(s, job.Location)
	if !ok {
		return rejectf(t.ComponentID, "job "+t.JobID+" is not at a buffer")
	}
	if !util.Contains(util.BufferStateAt(s, loc).Store, t.JobID) {
		return rejectf(t.ComponentID, "job "+t.JobID+" is not present in its own location's buffer")
	}
	return nil
}

// TransportLoaded validates transport:pickup->working: the travel leg to
// the buffer must have elapsed.
func TransportLoaded(s jobshop.State, t jobshop.ComponentTransition) error {
	ti := util.FindTransport(s, t.ComponentID)
	if ti < 0 {
		return rejectf(t.ComponentID, "no such transport")
	}
	tr := s.Transports[ti]
	if tr.Phase != jobshop.TransportPickup {
		return rejectf(t.ComponentID, "transport is not in pickup")
	}
	due, ok := tr.OccupiedTill.Due()
	if !ok || due > s.Time {
		return rejectf(t.ComponentID, "pickup leg has not elapsed")
	}
	return nil
}

// TransportComplete validates transport:working->idle: the loaded leg must
// have elapsed and the destination buffer must have free capacity.
func TransportComplete(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance, destBufferID string) error {
	ti := util.FindTransport(s, t.ComponentID)
	if ti < 0 {
		return rejectf(t.ComponentID, "no such transport")
	}
	tr := s.Transports[ti]
	if tr.Phase != jobshop.TransportWorking {
		return rejectf(t.ComponentID, "transport is not working")
	}
	due, ok := tr.OccupiedTill.Due()
	if !ok || due > s.Time {
		return rejectf(t.ComponentID, "loaded leg has not elapsed")
	}

	destCfg, ok := inst.FindBufferConfig(destBufferID)
	if !ok {
		return rejectf(t.ComponentID, "destination buffer "+destBufferID+" has no instance config")
	}
	loc, ok := util.FindAnyBuffer(s, destBufferID)
	if !ok {
		return rejectf(t.ComponentID, "destination buffer "+destBufferID+" not present in state")
	}
	if len(util.BufferStateAt(s, loc).Store) >= destCfg.Capacity {
		return rejectf(t.ComponentID, "destination buffer "+destBufferID+" is full")
	}
	return nil
}

// TransportOutageEnter validates transport:*->outage: per §4.1 transports
// only cycle OUTAGE from IDLE.
func TransportOutageEnter(s jobshop.State, t jobshop.ComponentTransition) error {
	ti := util.FindTransport(s, t.ComponentID)
	if ti < 0 {
		return rejectf(t.ComponentID, "no such transport")
	}
	if s.Transports[ti].Phase != jobshop.TransportIdle {
		return rejectf(t.ComponentID, "transport is not idle")
	}
	return nil
}

// TransportOutageExit validates transport:outage->idle: the outage timer
// must have elapsed.
func TransportOutageExit(s jobshop.State, t jobshop.ComponentTransition) error {
	ti := util.FindTransport(s, t.ComponentID)
	if ti < 0 {
		return rejectf(t.ComponentID, "no such transport")
	}
	tr := s.Transports[ti]
	if tr.Phase != jobshop.TransportOutage {
		return rejectf(t.ComponentID, "transport is not in outage")
	}
	due, ok := tr.OccupiedTill.Due()
	if !ok || due > s.Time {
		return rejectf(t.ComponentID, "outage has not elapsed")
	}
	return nil
}
