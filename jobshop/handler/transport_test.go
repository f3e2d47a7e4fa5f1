package handler_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/handler"
)

func transportInstance() jobshop.Instance {
	return jobshop.Instance{
		Machines: []jobshop.MachineConfig{
			{ID: "M1", PreBufferID: "m1-pre", BufferID: "m1-buf", PostBufferID: "m1-post"},
		},
		Buffers: []jobshop.BufferConfig{
			{ID: "in-buf", Capacity: 10, Role: jobshop.BufferInput, Discipline: jobshop.BufferFIFO},
			{ID: "out-buf", Capacity: 10, Role: jobshop.BufferOutput},
			{ID: "m1-pre", Capacity: 4, Discipline: jobshop.BufferFIFO},
			{ID: "m1-post", Capacity: 4, Discipline: jobshop.BufferFIFO},
		},
		Jobs: []jobshop.JobConfig{
			{ID: "J1", Operations: []jobshop.OperationConfig{{ID: "op1", JobID: "J1", MachineID: "M1"}}},
		},
		OutputBufferIDs: []string{"out-buf"},
		TravelTimes: map[jobshop.LocationPair]jobshop.TimeSource{
			{From: "in-buf", To: "in-buf"}:   jobshop.ConstantTime(2),
			{From: "in-buf", To: "M1"}:       jobshop.ConstantTime(5),
			{From: "m1-post", To: "out-buf"}: jobshop.ConstantTime(3),
		},
	}
}

func transportState() jobshop.State {
	return jobshop.State{
		Time: 0,
		Machines: []jobshop.MachineState{
			{ID: "M1", Phase: jobshop.MachineIdle,
				PreBuffer:  jobshop.BufferState{ID: "m1-pre"},
				Buffer:     jobshop.BufferState{ID: "m1-buf"},
				PostBuffer: jobshop.BufferState{ID: "m1-post"}},
		},
		Transports: []jobshop.TransportState{
			{ID: "T1", Phase: jobshop.TransportIdle, Location: "in-buf", OccupiedTill: jobshop.AtTime(0)},
		},
		Jobs: []jobshop.JobState{
			{ID: "J1", Location: "in-buf", Operations: []jobshop.OperationStatus{{OperationID: "op1", State: jobshop.OperationIdle}}},
		},
		Buffers: []jobshop.BufferState{
			{ID: "in-buf", Store: []string{"J1"}},
			{ID: "out-buf"},
		},
	}
}

func TestTransportPickup_ReadyCommitsAndSamplesTravel(t *testing.T) {
	s := transportState()
	inst := transportInstance()
	t1 := jobshop.ComponentTransition{ComponentID: "T1", Tag: jobshop.TransitionTransportPickup, JobID: "J1"}

	out, err := handler.TransportPickup(s, t1, inst, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	tr := out.Transports[0]
	assert.Equal(t, jobshop.TransportPickup, tr.Phase)
	assert.Equal(t, "J1", tr.PickupJobID)
	assert.Equal(t, jobshop.Time(2), mustDueT(t, tr.OccupiedTill))
}

func TestTransportPickup_DefersWhenNotAtHead(t *testing.T) {
	s := transportState()
	s.Buffers[0].Store = []string{"J0", "J1"}
	s.Jobs = append(s.Jobs, jobshop.JobState{ID: "J0", Location: "in-buf"})
	inst := transportInstance()
	t1 := jobshop.ComponentTransition{ComponentID: "T1", Tag: jobshop.TransitionTransportPickup, JobID: "J1"}

	out, err := handler.TransportPickup(s, t1, inst, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	tr := out.Transports[0]
	assert.Equal(t, jobshop.TransportIdle, tr.Phase, "phase stays idle while waiting on a dependency")
	assert.True(t, tr.OccupiedTill.IsWaiting())
	assert.Equal(t, "J0", tr.OccupiedTill.Wait.BlockingJobID)
}

func TestTransportLoaded_BeginsLoadedLeg(t *testing.T) {
	s := transportState()
	s.Transports[0].Phase = jobshop.TransportPickup
	s.Transports[0].PickupJobID = "J1"
	s.Transports[0].OccupiedTill = jobshop.AtTime(2)
	s.Time = 2
	inst := transportInstance()
	t1 := jobshop.ComponentTransition{ComponentID: "T1", Tag: jobshop.TransitionTransportLoaded, JobID: "J1"}

	out, err := handler.TransportLoaded(s, t1, inst, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	tr := out.Transports[0]
	assert.Equal(t, jobshop.TransportWorking, tr.Phase)
	assert.Equal(t, "J1", tr.TransportJob)
	assert.Empty(t, tr.PickupJobID)
	assert.Equal(t, "T1", out.Jobs[0].Location)
	assert.Equal(t, jobshop.Time(7), mustDueT(t, tr.OccupiedTill)) // 2 + travel(in-buf->M1)=5
	assert.Empty(t, out.Buffers[0].Store, "job removed from in-buf")
}

func TestTransportComplete_DropsAtPreBufferOfNextMachine(t *testing.T) {
	s := transportState()
	s.Transports[0].Phase = jobshop.TransportWorking
	s.Transports[0].TransportJob = "J1"
	s.Transports[0].OccupiedTill = jobshop.AtTime(7)
	s.Jobs[0].Location = "T1"
	s.Time = 7
	inst := transportInstance()
	t1 := jobshop.ComponentTransition{ComponentID: "T1", Tag: jobshop.TransitionTransportComplete, JobID: "J1"}

	out, err := handler.TransportComplete(s, t1, inst)
	require.NoError(t, err)
	tr := out.Transports[0]
	assert.Equal(t, jobshop.TransportIdle, tr.Phase)
	assert.Empty(t, tr.TransportJob)
	assert.Equal(t, "m1-pre", tr.Location)
	assert.Equal(t, []string{"J1"}, out.Machines[0].PreBuffer.Store)
	assert.Equal(t, "m1-pre", out.Jobs[0].Location)
}

func TestTransportComplete_DropsAtOutputBufferWhenDone(t *testing.T) {
	s := transportState()
	s.Transports[0].Phase = jobshop.TransportWorking
	s.Transports[0].TransportJob = "J1"
	s.Transports[0].OccupiedTill = jobshop.AtTime(7)
	s.Jobs[0].Location = "T1"
	s.Jobs[0].Operations[0].State = jobshop.OperationDone
	s.Time = 7
	inst := transportInstance()
	t1 := jobshop.ComponentTransition{ComponentID: "T1", Tag: jobshop.TransitionTransportComplete, JobID: "J1"}

	out, err := handler.TransportComplete(s, t1, inst)
	require.NoError(t, err)
	assert.Equal(t, "out-buf", out.Transports[0].Location)
	assert.Equal(t, []string{"J1"}, out.Buffers[1].Store)
	assert.Equal(t, "out-buf", out.Jobs[0].Location)
}

func TestTransportOutage_EnterAndExit(t *testing.T) {
	s := transportState()
	s.Time = 1
	enter := jobshop.ComponentTransition{ComponentID: "T1", Tag: jobshop.TransitionTransportOutageEnter}
	out, err := handler.TransportOutageEnter(s, enter, "o1", 5)
	require.NoError(t, err)
	tr := out.Transports[0]
	assert.Equal(t, jobshop.TransportOutage, tr.Phase)
	assert.Equal(t, "o1", tr.ActiveOutageID)
	assert.Equal(t, jobshop.Time(6), mustDueT(t, tr.OccupiedTill))

	out.Time = 6
	exit := jobshop.ComponentTransition{ComponentID: "T1", Tag: jobshop.TransitionTransportOutageExit}
	out, err = handler.TransportOutageExit(out, exit)
	require.NoError(t, err)
	tr = out.Transports[0]
	assert.Equal(t, jobshop.TransportIdle, tr.Phase)
	assert.Empty(t, tr.ActiveOutageID)
}

func mustDueT(t *testing.T, o jobshop.Occupied) jobshop.Time {
	due, ok := o.Due()
	require.True(t, ok)
	return due
}
