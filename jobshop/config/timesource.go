package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/stochastic"
)

// timeSourceSpec decodes either a bare integer ("3") or a distribution
// mapping ("{dist: normal, mean: 5, stddev: 1}") into a jobshop.TimeSource.
// Sampling primitives themselves are out of scope (spec §1); this is just
// the YAML-to-TimeSource glue the core's Instance value needs.
type timeSourceSpec struct {
	deterministic int64
	isDist        bool
	dist          string
	mean, stdDev  float64
	rate          float64
	min, max      float64
}

func (t *timeSourceSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v int64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("time source: %w", err)
		}
		t.deterministic = v
		return nil
	}

	var raw struct {
		Dist   string  `yaml:"dist"`
		Mean   float64 `yaml:"mean"`
		StdDev float64 `yaml:"stddev"`
		Rate   float64 `yaml:"rate"`
		Min    float64 `yaml:"min"`
		Max    float64 `yaml:"max"`
	}
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("time source: %w", err)
	}
	t.isDist = true
	t.dist = raw.Dist
	t.mean, t.stdDev, t.rate, t.min, t.max = raw.Mean, raw.StdDev, raw.Rate, raw.Min, raw.Max
	return nil
}

func (t timeSourceSpec) resolve() (jobshop.TimeSource, error) {
	if !t.isDist {
		return stochastic.Deterministic(t.deterministic), nil
	}
	switch t.dist {
	case "normal":
		return stochastic.Normal{Mean: t.mean, StdDev: t.stdDev}, nil
	case "exponential":
		return stochastic.Exponential{Rate: t.rate}, nil
	case "uniform":
		return stochastic.Uniform{Min: t.min, Max: t.max}, nil
	default:
		return nil, &jobshop.InvalidValueError{Value: t.dist, Reason: "unknown time source distribution"}
	}
}
