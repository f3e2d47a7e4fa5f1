// Package handler implements §4.1's pure transition functions: one
// function per legal tag-to-tag edge, each taking an already-validated
// ComponentTransition and returning the resulting State.
package handler

import (
	"math/rand"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/timemachine"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

// MachineStart implements entering SETUP or skipping directly to WORKING
// (§4.1 "Entering SETUP requires current_tool != required_tool; if equal,
// transition skips directly to WORKING... Entering WORKING reserves the
// next pending operation of the named job"). t.Tag must be
// TransitionMachineSetup or TransitionMachineSkipToWorking.
func MachineStart(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance, rng *rand.Rand) (jobshop.State, error) {
	out := s.Clone()
	mi := util.FindMachine(out, t.ComponentID)
	ji := util.FindJob(out, t.JobID)
	mc, _ := inst.FindMachineConfig(t.ComponentID)
	jc, _ := inst.FindJobConfig(t.JobID)

	m := &out.Machines[mi]
	job := &out.Jobs[ji]

	nextOp, status, ok := util.NextIdleOperation(*job, jc)
	if !ok {
		return s, &jobshop.InconsistentStateError{ComponentID: t.ComponentID, Reason: "no idle operation to reserve"}
	}

	// Reserve the operation: move it from IDLE to PROCESSING.
	for i := range job.Operations {
		if job.Operations[i].OperationID == status.OperationID {
			job.Operations[i].State = jobshop.OperationProcessing
		}
	}
	m.CurrentJobID = job.ID
	m.CurrentOperationID = nextOp.ID

	// Move the job from the pre-buffer into the machine's internal buffer.
	m.PreBuffer.Store = util.RemoveJob(m.PreBuffer.Store, job.ID)
	m.Buffer.Store = util.AppendJob(m.Buffer.Store, job.ID)
	job.Location = m.Buffer.ID

	setup := timemachine.SetupDuration(mc, m.CurrentTool, nextOp.ToolID)
	if setup == 0 {
		dur := nextOp.Duration.Sample(rng)
		m.Phase = jobshop.MachineWorking
		m.CurrentTool = nextOp.ToolID
		m.OccupiedTill = jobshop.AtTime(out.Time + jobshop.Time(dur))
		return out, nil
	}

	m.Phase = jobshop.MachineSetup
	m.OccupiedTill = jobshop.AtTime(out.Time + jobshop.Time(setup))
	return out, nil
}

// MachineEnterWorking implements SETUP -> WORKING once setup completes.
func MachineEnterWorking(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance, rng *rand.Rand) (jobshop.State, error) {
	out := s.Clone()
	mi := util.FindMachine(out, t.ComponentID)
	m := &out.Machines[mi]

	jc, _ := inst.FindJobConfig(m.CurrentJobID)
	var opCfg jobshop.OperationConfig
	for _, op := range jc.Operations {
		if op.ID == m.CurrentOperationID {
			opCfg = op
			break
		}
	}

	dur := opCfg.Duration.Sample(rng)
	m.Phase = jobshop.MachineWorking
	m.CurrentTool = opCfg.ToolID
	m.OccupiedTill = jobshop.AtTime(out.Time + jobshop.Time(dur))
	return out, nil
}

// MachineComplete implements WORKING -> IDLE (§4.1 "Leaving WORKING moves
// the job from the internal buffer to the post-buffer and advances the
// operation to DONE").
func MachineComplete(s jobshop.State, t jobshop.ComponentTransition, inst jobshop.Instance) (jobshop.State, error) {
	out := s.Clone()
	mi := util.FindMachine(out, t.ComponentID)
	m := &out.Machines[mi]
	ji := util.FindJob(out, m.CurrentJobID)
	if ji < 0 {
		return s, &jobshop.InvalidTransitionError{ComponentID: t.ComponentID, Reason: "machine holds no known job to complete"}
	}
	job := &out.Jobs[ji]

	for i := range job.Operations {
		if job.Operations[i].OperationID == m.CurrentOperationID {
			job.Operations[i].State = jobshop.OperationDone
		}
	}

	m.Buffer.Store = util.RemoveJob(m.Buffer.Store, job.ID)
	m.PostBuffer.Store = util.AppendJob(m.PostBuffer.Store, job.ID)
	job.Location = m.PostBuffer.ID

	m.Phase = jobshop.MachineIdle
	m.CurrentJobID = ""
	m.CurrentOperationID = ""
	m.OccupiedTill = jobshop.AtTime(out.Time)
	return out, nil
}
