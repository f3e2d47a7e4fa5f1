// Package timemachine computes §4.8 step 1 (next-event time), arms and
// resamples §4.7 outage schedules, looks up §4.7 setup durations, and
// resolves §4.6 TimeDependencies (R1/R2).
package timemachine

import (
	"github.com/proto-lab-ro/jobshoplab/jobshop"
)

// NextEventTime computes the time the engine should advance its clock to:
// the earliest concrete occupied_till or pending outage due time that lies
// strictly after the current time, or the current time itself when there is
// none (so the result is never before now). Due times at or before now do
// not hold the clock back.
func NextEventTime(state jobshop.State) jobshop.Time {
	next := state.Time
	found := false

	consider := func(t jobshop.Time) {
		if t > state.Time && (!found || t < next) {
			next = t
			found = true
		}
	}

	for _, m := range state.Machines {
		if t, ok := m.OccupiedTill.Due(); ok && t >= state.Time {
			consider(t)
		}
	}
	for _, t := range state.Transports {
		if due, ok := t.OccupiedTill.Due(); ok && due >= state.Time {
			consider(due)
		}
	}
	for _, po := range state.PendingOutages {
		if po.DueAt >= state.Time {
			consider(po.DueAt)
		}
	}
	return next
}

// DueOutages returns the pending outages whose DueAt has been reached by
// state.Time, in stable (arrival) order — the order they appear in
// state.PendingOutages, which the engine only ever appends to. Overlapping
// outages due at the same time therefore serialize in arrival order.
func DueOutages(state jobshop.State) []jobshop.PendingOutage {
	var due []jobshop.PendingOutage
	for _, po := range state.PendingOutages {
		if po.DueAt <= state.Time {
			due = append(due, po)
		}
	}
	return due
}
