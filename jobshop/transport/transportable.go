// Package transport implements §4.4 is_transportable, §4.5 destination
// selection, and the §4.6 TimeDependency construction that the engine asks
// for when a pickup target is not at the head of its buffer.
package transport

import (
	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

// IsTransportable implements the §4.4 four-case decision for whether job
// should be moved by a transport right now, and if so, implicitly, where
// (resolved separately by Destination). Returns an *jobshop.InconsistentStateError
// if the job has no idle operation but is not all-done, which is the case
// whenever one of its operations is PROCESSING.
func IsTransportable(job jobshop.JobState, cfg jobshop.JobConfig, inst jobshop.Instance) (bool, error) {
	// Case 1: already delivered.
	if inst.IsOutputBuffer(job.Location) {
		return false, nil
	}

	// Case 2: finished but not yet delivered.
	if util.AllOperationsDone(job) {
		return true, nil
	}

	nextOp, _, ok := util.NextIdleOperation(job, cfg)
	if !ok {
		return false, &jobshop.InconsistentStateError{
			ComponentID: job.ID,
			Reason:      "job has no idle operation but is not all-done",
		}
	}

	// Case 3: already at the machine the next operation targets.
	if atMachineBuffers(job.Location, nextOp.MachineID, inst) {
		return false, nil
	}

	// Case 4: needs moving to the next operation's machine.
	return true, nil
}

// atMachineBuffers reports whether location is one of machineID's three
// owned buffer ids.
func atMachineBuffers(location, machineID string, inst jobshop.Instance) bool {
	mc, ok := inst.FindMachineConfig(machineID)
	if !ok {
		return false
	}
	return location == mc.PreBufferID || location == mc.BufferID || location == mc.PostBufferID
}
