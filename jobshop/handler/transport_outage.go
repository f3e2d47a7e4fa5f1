package handler

import (
	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

// TransportOutageEnter implements IDLE -> OUTAGE. Per spec.md §4.1,
// transports only cycle OUTAGE from/to IDLE (unlike machines, whose
// OUTAGE is symmetric with SETUP and WORKING too); there is no work to
// pause, so no resume bookkeeping is needed.
func TransportOutageEnter(s jobshop.State, t jobshop.ComponentTransition, outageID string, duration int64) (jobshop.State, error) {
	out := s.Clone()
	ti := util.FindTransport(out, t.ComponentID)
	tr := &out.Transports[ti]
	tr.Phase = jobshop.TransportOutage
	tr.ActiveOutageID = outageID
	tr.OccupiedTill = jobshop.AtTime(out.Time + jobshop.Time(duration))
	return out, nil
}

// TransportOutageExit implements OUTAGE -> IDLE.
func TransportOutageExit(s jobshop.State, t jobshop.ComponentTransition) (jobshop.State, error) {
	out := s.Clone()
	ti := util.FindTransport(out, t.ComponentID)
	tr := &out.Transports[ti]
	tr.Phase = jobshop.TransportIdle
	tr.ActiveOutageID = ""
	tr.OccupiedTill = jobshop.AtTime(out.Time)
	return out, nil
}
