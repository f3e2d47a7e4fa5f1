package factory

import "github.com/proto-lab-ro/jobshoplab/jobshop"

// RawObservation is RawObservationBuilder's pre-declared shape: the
// dynamic fields a learner would featurize, already flattened away from
// jobshop.State's internal container layout.
type RawObservation struct {
	Time            jobshop.Time
	MachinePhases   map[string]jobshop.MachinePhase
	TransportPhases map[string]jobshop.TransportPhase
	JobLocations    map[string]string
	PendingOutages  int
}

// RawObservationBuilder exposes the state's dynamic fields with no
// featurization: a starting point for callers who want to do their own
// encoding.
type RawObservationBuilder struct{}

func (RawObservationBuilder) Build(s jobshop.State, inst jobshop.Instance) any {
	obs := RawObservation{
		Time:            s.Time,
		MachinePhases:   make(map[string]jobshop.MachinePhase, len(s.Machines)),
		TransportPhases: make(map[string]jobshop.TransportPhase, len(s.Transports)),
		JobLocations:    make(map[string]string, len(s.Jobs)),
		PendingOutages:  len(s.PendingOutages),
	}
	for _, m := range s.Machines {
		obs.MachinePhases[m.ID] = m.Phase
	}
	for _, t := range s.Transports {
		obs.TransportPhases[t.ID] = t.Phase
	}
	for _, j := range s.Jobs {
		obs.JobLocations[j.ID] = j.Location
	}
	return obs
}
