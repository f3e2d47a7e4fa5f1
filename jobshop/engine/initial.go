package engine

import (
	"math/rand"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/timemachine"
)

// NewState builds the initial State for inst: every job sitting in the
// reserved input buffer, every machine and transport IDLE, and every
// declared outage schedule armed for its first firing (§4.7). Transports
// start parked at the input buffer's location, the only location every
// instance is guaranteed to declare. Buffers owned by a machine (its pre-,
// internal and post-buffer) live on that machine's state only; every other
// declared buffer becomes a standalone State.Buffers entry.
func NewState(inst jobshop.Instance, rng *rand.Rand) (jobshop.State, error) {
	s := jobshop.State{Time: 0}

	owned := map[string]bool{}
	for _, mc := range inst.Machines {
		owned[mc.PreBufferID], owned[mc.BufferID], owned[mc.PostBufferID] = true, true, true
	}
	for _, bc := range inst.Buffers {
		if owned[bc.ID] {
			continue
		}
		store := []string(nil)
		if bc.ID == inst.InputBufferID {
			for _, j := range inst.Jobs {
				store = append(store, j.ID)
			}
		}
		s.Buffers = append(s.Buffers, jobshop.BufferState{ID: bc.ID, Store: store})
	}

	for _, mc := range inst.Machines {
		s.Machines = append(s.Machines, jobshop.MachineState{
			ID:           mc.ID,
			Phase:        jobshop.MachineIdle,
			OccupiedTill: jobshop.AtTime(0),
			PreBuffer:    jobshop.BufferState{ID: mc.PreBufferID},
			Buffer:       jobshop.BufferState{ID: mc.BufferID},
			PostBuffer:   jobshop.BufferState{ID: mc.PostBufferID},
		})
	}

	for _, tc := range inst.Transports {
		s.Transports = append(s.Transports, jobshop.TransportState{
			ID:           tc.ID,
			Phase:        jobshop.TransportIdle,
			Location:     inst.InputBufferID,
			OccupiedTill: jobshop.AtTime(0),
		})
	}

	for _, jc := range inst.Jobs {
		ops := make([]jobshop.OperationStatus, len(jc.Operations))
		for i, op := range jc.Operations {
			ops[i] = jobshop.OperationStatus{OperationID: op.ID, State: jobshop.OperationIdle}
		}
		s.Jobs = append(s.Jobs, jobshop.JobState{ID: jc.ID, Operations: ops, Location: inst.InputBufferID})
	}

	s.PendingOutages = timemachine.InitialPendingOutages(inst, s.Time, rng)

	if err := s.Validate(inst); err != nil {
		return jobshop.State{}, err
	}
	return s, nil
}
