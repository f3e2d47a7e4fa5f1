// Package config loads the validated jobshop.Instance value the core
// consumes (§6) from a YAML document. The textual instance DSL and its
// compiler pipeline are out of scope; this package only covers the flat
// schema that maps directly onto jobshop.Instance's fields.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
)

type yamlOutage struct {
	ID        string         `yaml:"id"`
	Type      string         `yaml:"type"`
	Frequency timeSourceSpec `yaml:"frequency"`
	Duration  timeSourceSpec `yaml:"duration"`
}

type yamlOperation struct {
	ID        string         `yaml:"id"`
	MachineID string         `yaml:"machine"`
	ToolID    string         `yaml:"tool"`
	Duration  timeSourceSpec `yaml:"duration"`
}

type yamlJob struct {
	ID         string          `yaml:"id"`
	Operations []yamlOperation `yaml:"operations"`
}

type yamlBuffer struct {
	ID         string `yaml:"id"`
	Discipline string `yaml:"discipline"`
	Capacity   int    `yaml:"capacity"`
	Role       string `yaml:"role"`
	Parent     string `yaml:"parent"`
}

type yamlSetupTime struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Duration int64  `yaml:"duration"`
}

type yamlMachine struct {
	ID         string          `yaml:"id"`
	PreBuffer  string          `yaml:"pre_buffer"`
	Buffer     string          `yaml:"buffer"`
	PostBuffer string          `yaml:"post_buffer"`
	SetupTimes []yamlSetupTime `yaml:"setup_times"`
	Outages    []yamlOutage    `yaml:"outages"`
}

type yamlTransport struct {
	ID      string       `yaml:"id"`
	Outages []yamlOutage `yaml:"outages"`
}

type yamlTravelTime struct {
	From     string         `yaml:"from"`
	To       string         `yaml:"to"`
	Duration timeSourceSpec `yaml:"duration"`
}

type yamlInstance struct {
	Machines    []yamlMachine   `yaml:"machines"`
	Transports  []yamlTransport `yaml:"transports"`
	Jobs        []yamlJob       `yaml:"jobs"`
	Buffers     []yamlBuffer    `yaml:"buffers"`
	TravelTimes []yamlTravelTime `yaml:"travel_times"`
}

// Load parses a YAML document into a validated jobshop.Instance.
func Load(data []byte) (jobshop.Instance, error) {
	var raw yamlInstance
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return jobshop.Instance{}, fmt.Errorf("parsing instance: %w", err)
	}
	return build(raw)
}

func build(raw yamlInstance) (jobshop.Instance, error) {
	inst := jobshop.Instance{}

	buffers, err := buildBuffers(raw.Buffers)
	if err != nil {
		return jobshop.Instance{}, err
	}
	inst.Buffers = buffers

	for _, m := range raw.Machines {
		mc := jobshop.MachineConfig{
			ID:           m.ID,
			PreBufferID:  m.PreBuffer,
			BufferID:     m.Buffer,
			PostBufferID: m.PostBuffer,
			SetupTimes:   make(map[jobshop.ToolPair]int64, len(m.SetupTimes)),
		}
		for _, st := range m.SetupTimes {
			mc.SetupTimes[jobshop.ToolPair{From: st.From, To: st.To}] = st.Duration
		}
		outages, err := buildOutages(m.Outages)
		if err != nil {
			return jobshop.Instance{}, err
		}
		mc.Outages = outages
		inst.Machines = append(inst.Machines, mc)

		// The owned pre/internal/post buffers are implicit in the
		// instance's buffer flow graph even when not separately declared
		// under `buffers:`.
		for _, id := range []string{m.PreBuffer, m.Buffer, m.PostBuffer} {
			if id == "" {
				continue
			}
			if _, ok := inst.FindBufferConfig(id); !ok {
				capacity := 1
				if id == m.PreBuffer || id == m.PostBuffer {
					capacity = 64
				}
				inst.Buffers = append(inst.Buffers, jobshop.BufferConfig{ID: id, Discipline: jobshop.BufferFIFO, Capacity: capacity, Role: jobshop.BufferComponent, Parent: m.ID})
			}
		}
	}

	for _, t := range raw.Transports {
		outages, err := buildOutages(t.Outages)
		if err != nil {
			return jobshop.Instance{}, err
		}
		inst.Transports = append(inst.Transports, jobshop.TransportConfig{ID: t.ID, Outages: outages})
	}

	for _, j := range raw.Jobs {
		jc := jobshop.JobConfig{ID: j.ID}
		for _, op := range j.Operations {
			dur, err := op.Duration.resolve()
			if err != nil {
				return jobshop.Instance{}, err
			}
			jc.Operations = append(jc.Operations, jobshop.OperationConfig{
				ID:        op.ID,
				JobID:     j.ID,
				MachineID: op.MachineID,
				ToolID:    op.ToolID,
				Duration:  dur,
			})
		}
		inst.Jobs = append(inst.Jobs, jc)
	}

	inst.TravelTimes = make(map[jobshop.LocationPair]jobshop.TimeSource, len(raw.TravelTimes))
	for _, tt := range raw.TravelTimes {
		dur, err := tt.Duration.resolve()
		if err != nil {
			return jobshop.Instance{}, err
		}
		inst.TravelTimes[jobshop.LocationPair{From: tt.From, To: tt.To}] = dur
	}

	if err := resolveReservedBuffers(&inst); err != nil {
		return jobshop.Instance{}, err
	}
	return inst, nil
}

func buildBuffers(raw []yamlBuffer) ([]jobshop.BufferConfig, error) {
	out := make([]jobshop.BufferConfig, 0, len(raw))
	for _, b := range raw {
		disc := jobshop.BufferDiscipline(b.Discipline)
		if disc == "" {
			disc = jobshop.BufferFIFO
		}
		role := jobshop.BufferRole(b.Role)
		if role == "" {
			role = jobshop.BufferComponent
		}
		capacity := b.Capacity
		if capacity <= 0 {
			capacity = 1
		}
		out = append(out, jobshop.BufferConfig{ID: b.ID, Discipline: disc, Capacity: capacity, Role: role, Parent: b.Parent})
	}
	return out, nil
}

func buildOutages(raw []yamlOutage) ([]jobshop.OutageConfig, error) {
	out := make([]jobshop.OutageConfig, 0, len(raw))
	for _, o := range raw {
		freq, err := o.Frequency.resolve()
		if err != nil {
			return nil, err
		}
		dur, err := o.Duration.resolve()
		if err != nil {
			return nil, err
		}
		out = append(out, jobshop.OutageConfig{ID: o.ID, Type: jobshop.OutageType(o.Type), Frequency: freq, Duration: dur})
	}
	return out, nil
}
