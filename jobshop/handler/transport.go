package handler

import (
	"math/rand"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/transport"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

// TransportPickup implements IDLE -> PICKUP: the commit point of §4.6.
// Feasibility (head-of-queue) is evaluated right here, before any travel
// time is charged; if the target job is present but not at head, the
// transport is parked on a TimeDependency and its phase stays IDLE,
// exactly as §4.6 specifies.
func TransportPickup(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance, rng *rand.Rand) (jobshop.State, error) {
	out := s.Clone()
	ti := util.FindTransport(out, t.ComponentID)
	tr := &out.Transports[ti]
	ji := util.FindJob(out, t.JobID)
	job := &out.Jobs[ji]

	loc, ok := util.FindAnyBuffer(out, job.Location)
	if !ok {
		return s, &jobshop.InconsistentStateError{ComponentID: job.ID, Reason: "job location is not a known buffer"}
	}
	bufState := util.BufferStateAt(out, loc)
	bufCfg, ok := inst.FindBufferConfig(job.Location)
	if !ok {
		return s, &jobshop.InconsistentStateError{ComponentID: job.Location, Reason: "buffer has no instance config"}
	}

	outcome, err := transport.EvaluatePickup(bufState.Store, bufCfg.Discipline, job.Location, job.ID, t)
	if err != nil {
		return s, err
	}
	if !outcome.Ready {
		tr.OccupiedTill = jobshop.Waiting(outcome.Dependency)
		return out, nil
	}

	travelTime, err := transport.TravelTime(inst, tr.Location, job.Location, rng)
	if err != nil {
		return s, err
	}
	tr.Phase = jobshop.TransportPickup
	tr.PickupJobID = job.ID
	tr.OccupiedTill = jobshop.AtTime(out.Time + jobshop.Time(travelTime))
	return out, nil
}

// TransportLoaded implements PICKUP -> WORKING: the transport has arrived
// at the buffer, grabs the job, and begins the loaded leg to its
// destination (§4.5).
func TransportLoaded(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance, rng *rand.Rand) (jobshop.State, error) {
	out := s.Clone()
	ti := util.FindTransport(out, t.ComponentID)
	tr := &out.Transports[ti]
	ji := util.FindJob(out, t.JobID)
	job := &out.Jobs[ji]
	jc, _ := inst.FindJobConfig(job.ID)

	loc, ok := util.FindAnyBuffer(out, job.Location)
	if !ok {
		return s, &jobshop.InconsistentStateError{ComponentID: job.ID, Reason: "job location is not a known buffer"}
	}
	pickupFrom := job.Location
	removeFromBuffer(&out, loc, job.ID)

	tr.TransportJob = job.ID
	tr.PickupJobID = ""
	job.Location = tr.ID

	dest, err := transport.Destination(*job, jc, inst)
	if err != nil {
		return s, err
	}
	travelTime, err := transport.TravelTime(inst, pickupFrom, dest, rng)
	if err != nil {
		return s, err
	}
	tr.Phase = jobshop.TransportWorking
	tr.OccupiedTill = jobshop.AtTime(out.Time + jobshop.Time(travelTime))
	return out, nil
}

// TransportComplete implements WORKING -> IDLE: delivery. If the job's
// next idle operation targets a machine, it is dropped into that
// machine's pre-buffer; if the job is done, it is dropped into the
// resolved OUTPUT-role buffer.
func TransportComplete(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance) (jobshop.State, error) {
	out := s.Clone()
	ti := util.FindTransport(out, t.ComponentID)
	tr := &out.Transports[ti]
	ji := util.FindJob(out, tr.TransportJob)
	job := &out.Jobs[ji]
	jc, _ := inst.FindJobConfig(job.ID)

	dest, err := transport.Destination(*job, jc, inst)
	if err != nil {
		return s, err
	}

	dropBufferID := dest
	if mc, ok := inst.FindMachineConfig(dest); ok {
		dropBufferID = mc.PreBufferID
	}

	loc, ok := util.FindAnyBuffer(out, dropBufferID)
	if !ok {
		return s, &jobshop.InconsistentStateError{ComponentID: dropBufferID, Reason: "destination buffer not present in state"}
	}
	// Capacity was already confirmed by validate.TransportComplete.
	addToBuffer(&out, loc, job.ID)
	job.Location = dropBufferID

	tr.TransportJob = ""
	tr.Location = dropBufferID
	tr.Phase = jobshop.TransportIdle
	tr.OccupiedTill = jobshop.AtTime(out.Time)
	return out, nil
}

func removeFromBuffer(s *jobshop.State, loc util.BufferLocation, jobID string) {
	if loc.MachineIdx == -1 {
		s.Buffers[loc.BufferIdx].Store = util.RemoveJob(s.Buffers[loc.BufferIdx].Store, jobID)
		return
	}
	m := &s.Machines[loc.MachineIdx]
	switch loc.Slot {
	case util.SlotPre:
		m.PreBuffer.Store = util.RemoveJob(m.PreBuffer.Store, jobID)
	case util.SlotPost:
		m.PostBuffer.Store = util.RemoveJob(m.PostBuffer.Store, jobID)
	default:
		m.Buffer.Store = util.RemoveJob(m.Buffer.Store, jobID)
	}
}

func addToBuffer(s *jobshop.State, loc util.BufferLocation, jobID string) {
	if loc.MachineIdx == -1 {
		s.Buffers[loc.BufferIdx].Store = util.AppendJob(s.Buffers[loc.BufferIdx].Store, jobID)
		return
	}
	m := &s.Machines[loc.MachineIdx]
	switch loc.Slot {
	case util.SlotPre:
		m.PreBuffer.Store = util.AppendJob(m.PreBuffer.Store, jobID)
	case util.SlotPost:
		m.PostBuffer.Store = util.AppendJob(m.PostBuffer.Store, jobID)
	default:
		m.Buffer.Store = util.AppendJob(m.Buffer.Store, jobID)
	}
}
