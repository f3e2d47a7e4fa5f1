package jobshop

import "fmt"

// Validate checks the §3 structural invariants that can be determined from
// a single State (P1, P2, P4, P5). P3 (monotonic time) is checked across
// consecutive states by jobshop/engine, since it requires the previous
// state for comparison. P6 (once a job reaches an output buffer it never
// leaves) is not checked here or anywhere post hoc; it holds by
// construction, since jobshop/transport.IsTransportable excludes jobs
// already at an output buffer from every future pickup candidate.
//
// A non-nil error here is an InconsistentStateError: per §7, this
// indicates a defect in the engine itself, not a user error.
func (s State) Validate(inst Instance) error {
	if err := s.validateJobConservation(inst); err != nil {
		return err
	}
	if err := s.validateBufferCapacity(inst); err != nil {
		return err
	}
	if err := s.validateOperationPrecedence(); err != nil {
		return err
	}
	if err := s.validateSingleClaim(); err != nil {
		return err
	}
	return nil
}

// validateJobConservation checks P1: every job id appears in exactly one
// container (a buffer's store, a machine's pre/internal/post buffer, or a
// transport's carried job), and that the job's own Location field agrees.
func (s State) validateJobConservation(inst Instance) error {
	locations := make(map[string][]string) // jobID -> list of container ids it was found in

	for _, b := range s.Buffers {
		for _, jid := range b.Store {
			locations[jid] = append(locations[jid], b.ID)
		}
	}
	for _, m := range s.Machines {
		for _, jid := range m.PreBuffer.Store {
			locations[jid] = append(locations[jid], m.PreBuffer.ID)
		}
		for _, jid := range m.Buffer.Store {
			locations[jid] = append(locations[jid], m.Buffer.ID)
		}
		for _, jid := range m.PostBuffer.Store {
			locations[jid] = append(locations[jid], m.PostBuffer.ID)
		}
	}
	for _, t := range s.Transports {
		if t.TransportJob != "" {
			locations[t.TransportJob] = append(locations[t.TransportJob], t.ID)
		}
	}

	for _, j := range s.Jobs {
		found := locations[j.ID]
		if len(found) != 1 {
			return &InconsistentStateError{
				ComponentID: j.ID,
				Reason:      fmt.Sprintf("job located in %d containers (want 1): %v", len(found), found),
			}
		}
		if found[0] != j.Location {
			return &InconsistentStateError{
				ComponentID: j.ID,
				Reason:      fmt.Sprintf("job.Location=%q disagrees with container %q", j.Location, found[0]),
			}
		}
	}
	return nil
}

// validateBufferCapacity checks P2 for every standalone and machine-owned buffer.
func (s State) validateBufferCapacity(inst Instance) error {
	check := func(b BufferState) error {
		cfg, ok := inst.FindBufferConfig(b.ID)
		if !ok {
			return &InconsistentStateError{ComponentID: b.ID, Reason: "buffer has no matching instance config"}
		}
		if len(b.Store) > cfg.Capacity {
			return &InconsistentStateError{
				ComponentID: b.ID,
				Reason:      fmt.Sprintf("buffer over capacity: %d > %d", len(b.Store), cfg.Capacity),
			}
		}
		return nil
	}
	for _, b := range s.Buffers {
		if err := check(b); err != nil {
			return err
		}
	}
	for _, m := range s.Machines {
		for _, b := range []BufferState{m.PreBuffer, m.Buffer, m.PostBuffer} {
			if err := check(b); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateOperationPrecedence checks P4: a machine may be WORKING on
// operation k of a job only if operations 0..k-1 of that job are DONE.
func (s State) validateOperationPrecedence() error {
	for _, m := range s.Machines {
		if m.Phase != MachineWorking || m.CurrentOperationID == "" {
			continue
		}
		job := findJobState(s, m.CurrentJobID)
		if job == nil {
			return &InconsistentStateError{ComponentID: m.ID, Reason: "working on operation of unknown job"}
		}
		for _, op := range job.Operations {
			if op.OperationID == m.CurrentOperationID {
				break
			}
			if op.State != OperationDone {
				return &InconsistentStateError{
					ComponentID: m.ID,
					Reason:      fmt.Sprintf("operation %s of job %s is %s, but a later operation is being worked", op.OperationID, job.ID, op.State),
				}
			}
		}
	}
	return nil
}

// validateSingleClaim checks P5: at most one transport holds a given job;
// at most one machine claims a given operation.
func (s State) validateSingleClaim() error {
	carriers := make(map[string]string)
	for _, t := range s.Transports {
		if t.TransportJob == "" {
			continue
		}
		if prev, ok := carriers[t.TransportJob]; ok {
			return &InconsistentStateError{ComponentID: t.ID, Reason: fmt.Sprintf("job %s already carried by %s", t.TransportJob, prev)}
		}
		carriers[t.TransportJob] = t.ID
	}

	claims := make(map[string]string)
	for _, m := range s.Machines {
		if m.CurrentOperationID == "" {
			continue
		}
		if prev, ok := claims[m.CurrentOperationID]; ok {
			return &InconsistentStateError{ComponentID: m.ID, Reason: fmt.Sprintf("operation %s already claimed by %s", m.CurrentOperationID, prev)}
		}
		claims[m.CurrentOperationID] = m.ID
	}
	return nil
}

func findJobState(s State, id string) *JobState {
	for i := range s.Jobs {
		if s.Jobs[i].ID == id {
			return &s.Jobs[i]
		}
	}
	return nil
}
