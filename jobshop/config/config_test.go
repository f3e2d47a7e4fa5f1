package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/config"
	"github.com/proto-lab-ro/jobshoplab/jobshop/stochastic"
)

func TestLoad_FullRoundTrip(t *testing.T) {
	doc := `
machines:
  - id: M1
    pre_buffer: m1-pre
    buffer: m1-buf
    post_buffer: m1-post
    setup_times:
      - from: toolA
        to: toolB
        duration: 4
transports:
  - id: T1
jobs:
  - id: J1
    operations:
      - id: op1
        machine: M1
        tool: toolB
        duration: 5
buffers:
  - id: in-buf
    role: INPUT
    capacity: 10
  - id: out-buf
    role: OUTPUT
    capacity: 10
travel_times:
  - from: in-buf
    to: M1
    duration: 2
`
	inst, err := config.Load([]byte(doc))
	require.NoError(t, err)

	require.Len(t, inst.Machines, 1)
	mc := inst.Machines[0]
	assert.Equal(t, "M1", mc.ID)
	assert.Equal(t, "m1-pre", mc.PreBufferID)
	assert.Equal(t, int64(4), mc.SetupTimes[jobshop.ToolPair{From: "toolA", To: "toolB"}])

	_, ok := inst.FindBufferConfig("m1-pre")
	assert.True(t, ok, "machine's declared buffers must be implicitly created")
	_, ok = inst.FindBufferConfig("m1-buf")
	assert.True(t, ok)

	require.Len(t, inst.Jobs, 1)
	require.Len(t, inst.Jobs[0].Operations, 1)
	assert.Equal(t, int64(5), inst.Jobs[0].Operations[0].Duration.Sample(nil))

	assert.Equal(t, "in-buf", inst.InputBufferID)
	assert.Equal(t, []string{"out-buf"}, inst.OutputBufferIDs)

	ts, ok := inst.TravelTime("in-buf", "M1")
	require.True(t, ok)
	assert.Equal(t, int64(2), ts.Sample(nil))
}

func TestLoad_ImplicitBufferCapacities(t *testing.T) {
	doc := `
machines:
  - id: M1
    pre_buffer: m1-pre
    buffer: m1-buf
    post_buffer: m1-post
buffers:
  - id: in-buf
    role: INPUT
  - id: out-buf
    role: OUTPUT
`
	inst, err := config.Load([]byte(doc))
	require.NoError(t, err)

	pre, _ := inst.FindBufferConfig("m1-pre")
	assert.Equal(t, 64, pre.Capacity, "pre/post buffers default to a generous capacity")
	internal, _ := inst.FindBufferConfig("m1-buf")
	assert.Equal(t, 1, internal.Capacity, "a machine's internal buffer holds exactly one job")
}

func TestLoad_ReservedBufferNameAliasing(t *testing.T) {
	doc := `
buffers:
  - id: in-buf
  - id: output-buffer
`
	inst, err := config.Load([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "in-buf", inst.InputBufferID)
	assert.Equal(t, []string{"output-buffer"}, inst.OutputBufferIDs)
}

func TestLoad_ExplicitRoleOverridesAliasing(t *testing.T) {
	doc := `
buffers:
  - id: staging
    role: INPUT
  - id: out-buf
    role: OUTPUT
`
	inst, err := config.Load([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "staging", inst.InputBufferID)
}

func TestLoad_MissingInputOutputIsError(t *testing.T) {
	doc := `
buffers:
  - id: nothing-special
`
	_, err := config.Load([]byte(doc))
	assert.Error(t, err)
}

func TestLoad_TimeSourceScalarAndDistributions(t *testing.T) {
	doc := `
jobs:
  - id: J1
    operations:
      - id: op1
        machine: M1
        duration: 3
      - id: op2
        machine: M1
        duration:
          dist: normal
          mean: 5
          stddev: 1
      - id: op3
        machine: M1
        duration:
          dist: exponential
          rate: 0.5
      - id: op4
        machine: M1
        duration:
          dist: uniform
          min: 1
          max: 3
buffers:
  - id: in-buf
    role: INPUT
  - id: out-buf
    role: OUTPUT
`
	inst, err := config.Load([]byte(doc))
	require.NoError(t, err)
	ops := inst.Jobs[0].Operations
	assert.IsType(t, stochastic.Deterministic(0), ops[0].Duration)
	assert.IsType(t, stochastic.Normal{}, ops[1].Duration)
	assert.IsType(t, stochastic.Exponential{}, ops[2].Duration)
	assert.IsType(t, stochastic.Uniform{}, ops[3].Duration)
}

func TestLoad_UnknownDistributionIsError(t *testing.T) {
	doc := `
jobs:
  - id: J1
    operations:
      - id: op1
        machine: M1
        duration:
          dist: triangular
buffers:
  - id: in-buf
    role: INPUT
  - id: out-buf
    role: OUTPUT
`
	_, err := config.Load([]byte(doc))
	assert.Error(t, err)
}

func TestLoad_MalformedYAMLIsError(t *testing.T) {
	_, err := config.Load([]byte("not: [valid"))
	assert.Error(t, err)
}
