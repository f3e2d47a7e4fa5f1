package middleware_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/factory"
	"github.com/proto-lab-ro/jobshoplab/jobshop/middleware"
	"github.com/proto-lab-ro/jobshoplab/jobshop/stochastic"
)

func singleMachineInstance(opDuration int64) jobshop.Instance {
	return jobshop.Instance{
		Machines: []jobshop.MachineConfig{
			{ID: "M1", PreBufferID: "m1-pre", BufferID: "m1-buf", PostBufferID: "m1-post"},
		},
		Transports: []jobshop.TransportConfig{{ID: "T1"}},
		Buffers: []jobshop.BufferConfig{
			{ID: "in-buf", Capacity: 10, Role: jobshop.BufferInput, Discipline: jobshop.BufferFIFO},
			{ID: "out-buf", Capacity: 10, Role: jobshop.BufferOutput, Discipline: jobshop.BufferFIFO},
			{ID: "m1-pre", Capacity: 4, Discipline: jobshop.BufferFIFO},
			{ID: "m1-buf", Capacity: 1, Discipline: jobshop.BufferFIFO},
			{ID: "m1-post", Capacity: 4, Discipline: jobshop.BufferFIFO},
		},
		Jobs: []jobshop.JobConfig{
			{ID: "J1", Operations: []jobshop.OperationConfig{
				{ID: "op1", JobID: "J1", MachineID: "M1", Duration: jobshop.ConstantTime(opDuration)},
			}},
		},
		InputBufferID:   "in-buf",
		OutputBufferIDs: []string{"out-buf"},
		TravelTimes: map[jobshop.LocationPair]jobshop.TimeSource{
			{From: "in-buf", To: "in-buf"}:   jobshop.ConstantTime(2),
			{From: "in-buf", To: "M1"}:       jobshop.ConstantTime(2),
			{From: "m1-pre", To: "m1-post"}:  jobshop.ConstantTime(1),
			{From: "m1-post", To: "out-buf"}: jobshop.ConstantTime(1),
		},
	}
}

func TestReset_BuildsInitialObservationAndInfo(t *testing.T) {
	env := middleware.New(singleMachineInstance(5), middleware.DefaultConfig(), stochastic.NewSimulationKey(1), "", "", "")
	obs, info, err := env.Reset()
	require.NoError(t, err)
	raw, ok := obs.(factory.RawObservation)
	require.True(t, ok)
	assert.Equal(t, jobshop.Time(0), raw.Time)
	assert.Contains(t, info, "lower_bound")
	assert.Equal(t, jobshop.Time(0), env.State().Time)
}

func TestStep_DrivesJobToTermination(t *testing.T) {
	env := middleware.New(singleMachineInstance(5), middleware.DefaultConfig(), stochastic.NewSimulationKey(1), "", "", "")
	_, _, err := env.Reset()
	require.NoError(t, err)

	var terminated, truncated bool
	for i := 0; i < 50 && !terminated && !truncated; i++ {
		_, _, terminated, truncated, _, err = env.Step(true)
		require.NoError(t, err)
	}
	assert.True(t, terminated, "job must eventually reach the output buffer")
	assert.False(t, truncated)
	assert.Greater(t, env.History().Len(), 0)
}

func TestStep_DeadlockTruncatesWhenNoProgressIsPossible(t *testing.T) {
	inst := jobshop.Instance{
		Buffers: []jobshop.BufferConfig{{ID: "in-buf", Capacity: 5, Role: jobshop.BufferInput}},
		Jobs: []jobshop.JobConfig{
			{ID: "J1", Operations: []jobshop.OperationConfig{{ID: "op1", JobID: "J1", MachineID: "ghost", Duration: jobshop.ConstantTime(0)}}},
		},
		InputBufferID: "in-buf",
	}
	env := middleware.New(inst, middleware.DefaultConfig(), stochastic.NewSimulationKey(1), "", "", "")
	_, _, err := env.Reset()
	require.NoError(t, err)

	_, _, terminated, truncated, info, err := env.Step(true)
	require.NoError(t, err)
	assert.False(t, terminated)
	assert.True(t, truncated)
	assert.Equal(t, "deadlock", info["truncated_reason"])
}

func TestStep_JokerExhaustionTruncates(t *testing.T) {
	cfg := middleware.Config{TruncationActive: true, TruncationJoker: 0, AllowEarlyTransport: true}
	env := middleware.New(singleMachineInstance(5), cfg, stochastic.NewSimulationKey(1), "", "", "")
	_, _, err := env.Reset()
	require.NoError(t, err)

	_, _, terminated, truncated, info, err := env.Step("not-a-bool")
	require.NoError(t, err)
	assert.False(t, terminated)
	assert.True(t, truncated)
	assert.Equal(t, "joker_exhausted", info["truncated_reason"])
	assert.Contains(t, info, "invalid_action")
}

func TestStep_ActionBudgetTruncates(t *testing.T) {
	cfg := middleware.Config{AllowEarlyTransport: true, MaxActionFct: 0.01}
	env := middleware.New(singleMachineInstance(100), cfg, stochastic.NewSimulationKey(1), "", "", "")
	_, _, err := env.Reset()
	require.NoError(t, err)

	_, _, terminated, truncated, info, err := env.Step(true)
	require.NoError(t, err)
	assert.False(t, terminated)
	assert.True(t, truncated)
	assert.Equal(t, "action_budget", info["truncated_reason"])
}

func TestStep_TimeBudgetTruncates(t *testing.T) {
	cfg := middleware.Config{AllowEarlyTransport: true, MaxTimeFct: 0.0001}
	env := middleware.New(singleMachineInstance(1000), cfg, stochastic.NewSimulationKey(1), "", "", "")
	_, _, err := env.Reset()
	require.NoError(t, err)

	var terminated, truncated bool
	var info map[string]any
	for i := 0; i < 10 && !terminated && !truncated; i++ {
		_, _, terminated, truncated, info, err = env.Step(true)
		require.NoError(t, err)
	}
	assert.True(t, truncated)
	assert.Equal(t, "time_budget", info["truncated_reason"])
}
