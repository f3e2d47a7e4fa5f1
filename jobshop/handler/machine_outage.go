package handler

import (
	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

// MachineOutageEnter implements any phase -> OUTAGE. Per §4.7, outages that
// arrive during WORKING/SETUP pause the underlying work: the resumed
// occupied_till is computed now (old occupied_till + duration) and
// restored verbatim on exit, so P11 holds exactly regardless of how many
// ticks of work remained when the outage hit.
func MachineOutageEnter(s jobshop.State, t jobshop.ComponentTransition, outageID string, duration int64) (jobshop.State, error) {
	out := s.Clone()
	mi := util.FindMachine(out, t.ComponentID)
	m := &out.Machines[mi]

	m.PhaseBeforeOutage = m.Phase
	switch m.Phase {
	case jobshop.MachineIdle:
		m.ResumeOccupiedTill = jobshop.AtTime(out.Time)
	default: // Setup or Working
		due, _ := m.OccupiedTill.Due()
		m.ResumeOccupiedTill = jobshop.AtTime(due + jobshop.Time(duration))
	}
	m.Phase = jobshop.MachineOutage
	m.ActiveOutageID = outageID
	m.OccupiedTill = jobshop.AtTime(out.Time + jobshop.Time(duration))
	return out, nil
}

// MachineOutageExit implements OUTAGE -> the phase the machine was in
// before the outage, restoring the resumed occupied_till computed at
// entry.
func MachineOutageExit(s jobshop.State, t jobshop.ComponentTransition) (jobshop.State, error) {
	out := s.Clone()
	mi := util.FindMachine(out, t.ComponentID)
	m := &out.Machines[mi]

	m.Phase = m.PhaseBeforeOutage
	m.OccupiedTill = m.ResumeOccupiedTill
	m.PhaseBeforeOutage = ""
	m.ResumeOccupiedTill = jobshop.Occupied{}
	m.ActiveOutageID = ""
	return out, nil
}
