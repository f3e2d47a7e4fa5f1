package jobshop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
)

func baseInstance() jobshop.Instance {
	return jobshop.Instance{
		Buffers: []jobshop.BufferConfig{
			{ID: "in-buf", Capacity: 10, Role: jobshop.BufferInput},
			{ID: "out-buf", Capacity: 10, Role: jobshop.BufferOutput},
			{ID: "m1-pre", Capacity: 4, Role: jobshop.BufferComponent, Parent: "M1"},
			{ID: "m1-buf", Capacity: 1, Role: jobshop.BufferComponent, Parent: "M1"},
			{ID: "m1-post", Capacity: 4, Role: jobshop.BufferComponent, Parent: "M1"},
		},
		Machines: []jobshop.MachineConfig{
			{ID: "M1", PreBufferID: "m1-pre", BufferID: "m1-buf", PostBufferID: "m1-post"},
		},
		InputBufferID:   "in-buf",
		OutputBufferIDs: []string{"out-buf"},
	}
}

func baseState() jobshop.State {
	return jobshop.State{
		Time: 0,
		Machines: []jobshop.MachineState{
			{ID: "M1", Phase: jobshop.MachineIdle, OccupiedTill: jobshop.AtTime(0),
				PreBuffer: jobshop.BufferState{ID: "m1-pre", Store: []string{"J1"}},
				Buffer:    jobshop.BufferState{ID: "m1-buf"},
				PostBuffer: jobshop.BufferState{ID: "m1-post"}},
		},
		Jobs: []jobshop.JobState{
			{ID: "J1", Location: "m1-pre", Operations: []jobshop.OperationStatus{{OperationID: "op1", State: jobshop.OperationIdle}}},
		},
		Buffers: []jobshop.BufferState{
			{ID: "in-buf"},
			{ID: "out-buf"},
		},
	}
}

func TestState_Validate_Valid(t *testing.T) {
	assert.NoError(t, baseState().Validate(baseInstance()))
}

func TestState_Validate_JobInNoContainer(t *testing.T) {
	s := baseState()
	s.Machines[0].PreBuffer.Store = nil
	err := s.Validate(baseInstance())
	assert.Error(t, err)
	var inconsistent *jobshop.InconsistentStateError
	assert.ErrorAs(t, err, &inconsistent)
}

func TestState_Validate_JobInTwoContainers(t *testing.T) {
	s := baseState()
	s.Buffers[0].Store = []string{"J1"}
	err := s.Validate(baseInstance())
	assert.Error(t, err)
}

func TestState_Validate_LocationDisagreesWithContainer(t *testing.T) {
	s := baseState()
	s.Jobs[0].Location = "out-buf"
	err := s.Validate(baseInstance())
	assert.Error(t, err)
}

func TestState_Validate_BufferOverCapacity(t *testing.T) {
	s := baseState()
	inst := baseInstance()
	s.Machines[0].PreBuffer.Store = []string{"J1", "J2", "J3", "J4", "J5"}
	s.Jobs = append(s.Jobs, jobshop.JobState{ID: "J2", Location: "m1-pre"}, jobshop.JobState{ID: "J3", Location: "m1-pre"}, jobshop.JobState{ID: "J4", Location: "m1-pre"}, jobshop.JobState{ID: "J5", Location: "m1-pre"})
	err := s.Validate(inst)
	assert.Error(t, err)
}

func TestState_Validate_OperationPrecedenceViolated(t *testing.T) {
	s := baseState()
	s.Machines[0].Phase = jobshop.MachineWorking
	s.Machines[0].CurrentJobID = "J1"
	s.Machines[0].CurrentOperationID = "op2"
	s.Jobs[0].Operations = []jobshop.OperationStatus{
		{OperationID: "op1", State: jobshop.OperationIdle},
		{OperationID: "op2", State: jobshop.OperationProcessing},
	}
	s.Machines[0].Buffer.Store = []string{"J1"}
	s.Machines[0].PreBuffer.Store = nil
	s.Jobs[0].Location = "m1-buf"
	err := s.Validate(baseInstance())
	assert.Error(t, err)
}

func TestState_Validate_DoubleClaimedOperation(t *testing.T) {
	s := baseState()
	s.Machines = append(s.Machines, jobshop.MachineState{
		ID: "M2", Phase: jobshop.MachineWorking, CurrentOperationID: "op1",
		OccupiedTill: jobshop.AtTime(5),
		Buffer:       jobshop.BufferState{ID: "m2-buf", Store: []string{"J1"}},
	})
	s.Machines[0].Phase = jobshop.MachineWorking
	s.Machines[0].CurrentOperationID = "op1"
	err := s.Validate(baseInstance())
	assert.Error(t, err)
}

func TestState_Clone_IndependentSlices(t *testing.T) {
	s := baseState()
	clone := s.Clone()
	clone.Machines[0].PreBuffer.Store[0] = "changed"
	assert.Equal(t, "J1", s.Machines[0].PreBuffer.Store[0])
}

func TestOccupied_AtTimeAndWaiting(t *testing.T) {
	at := jobshop.AtTime(5)
	assert.False(t, at.IsWaiting())
	due, ok := at.Due()
	assert.True(t, ok)
	assert.Equal(t, jobshop.Time(5), due)

	wait := jobshop.Waiting(jobshop.TimeDependency{BlockingJobID: "J1", BufferID: "buf"})
	assert.True(t, wait.IsWaiting())
	_, ok = wait.Due()
	assert.False(t, ok)
}

func TestHistory_AppendAndLast(t *testing.T) {
	var h jobshop.History
	assert.Equal(t, 0, h.Len())
	_, ok := h.Last()
	assert.False(t, ok)

	h.Append(jobshop.HistoryRecord{Message: "first"})
	h.Append(jobshop.HistoryRecord{Message: "second"})
	assert.Equal(t, 2, h.Len())
	last, ok := h.Last()
	assert.True(t, ok)
	assert.Equal(t, "second", last.Message)
	assert.NotEqual(t, h.Records[0].ID, h.Records[1].ID)
}

func TestErrors_MessagesMentionComponent(t *testing.T) {
	assert.Contains(t, (&jobshop.InvalidTransitionError{ComponentID: "M1", Reason: "bad"}).Error(), "M1")
	assert.Contains(t, (&jobshop.InconsistentStateError{ComponentID: "M1", Reason: "bad"}).Error(), "M1")
	assert.Contains(t, (&jobshop.InvalidValueError{Value: "x", Reason: "bad"}).Error(), "x")
	assert.Contains(t, (&jobshop.NotImplementedError{Reason: "bad"}).Error(), "bad")
}

func TestConstantTime_Sample(t *testing.T) {
	c := jobshop.ConstantTime(7)
	assert.Equal(t, int64(7), c.Sample(nil))
}
