// Package engine implements §4.2's possible-transitions generator and
// §4.8's internal tick: advance the clock, resolve time dependencies,
// fire due outages and completions, apply at most one agent-chosen start,
// and validate. Recording the tick as history is left to the caller
// (jobshop/middleware appends the returned Result as a HistoryRecord).
package engine

import (
	"sort"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/timemachine"
	"github.com/proto-lab-ro/jobshoplab/jobshop/transport"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

// GenerateStarts enumerates §4.2's machine-start and transport-pickup
// candidates: the action space an ActionInterpreter chooses from. Results
// are sorted by component id for a stable presentation order. A machine
// start is tagged TransitionMachineSkipToWorking when its setup duration is
// zero and TransitionMachineSetup otherwise.
//
// allowEarlyTransport gates transport candidates per §6/P9: when false, a
// transport-pickup candidate is offered only for a job sitting at the
// head-of-queue position of a post-buffer — never mid-processing, and
// never while merely waiting in an input or component buffer.
func GenerateStarts(s jobshop.State, inst jobshop.Instance, allowEarlyTransport bool) []jobshop.ComponentTransition {
	var out []jobshop.ComponentTransition

	for _, m := range s.Machines {
		if m.Phase != jobshop.MachineIdle {
			continue
		}
		mc, ok := inst.FindMachineConfig(m.ID)
		if !ok {
			continue
		}
		bufCfg, ok := inst.FindBufferConfig(mc.PreBufferID)
		if !ok {
			continue
		}
		headJobID, ok := util.HeadOfQueue(m.PreBuffer.Store, bufCfg.Discipline)
		if !ok {
			continue
		}
		ji := util.FindJob(s, headJobID)
		if ji < 0 {
			continue
		}
		job := s.Jobs[ji]
		jc, ok := inst.FindJobConfig(job.ID)
		if !ok {
			continue
		}
		nextOp, _, ok := util.NextIdleOperation(job, jc)
		if !ok || nextOp.MachineID != m.ID {
			continue
		}
		tag := jobshop.TransitionMachineSetup
		if timemachine.SetupDuration(mc, m.CurrentTool, nextOp.ToolID) == 0 {
			tag = jobshop.TransitionMachineSkipToWorking
		}
		out = append(out, jobshop.ComponentTransition{ComponentID: m.ID, Tag: tag, JobID: job.ID})
	}

	for _, tr := range s.Transports {
		if tr.Phase != jobshop.TransportIdle || tr.OccupiedTill.IsWaiting() {
			continue
		}
		for _, job := range s.Jobs {
			jc, ok := inst.FindJobConfig(job.ID)
			if !ok {
				continue
			}
			eligible, err := transport.IsTransportable(job, jc, inst)
			if err != nil || !eligible {
				continue
			}
			if !isEligibleForPickup(s, inst, job, allowEarlyTransport) {
				continue
			}
			out = append(out, jobshop.ComponentTransition{ComponentID: tr.ID, Tag: jobshop.TransitionTransportPickup, JobID: job.ID})
		}
	}

	sortByComponentID(out)
	return out
}

// isEligibleForPickup implements the P9 filter: a job is pickup-eligible
// under allowEarlyTransport=false only when it sits at the head-of-queue
// position of a post-buffer.
func isEligibleForPickup(s jobshop.State, inst jobshop.Instance, job jobshop.JobState, allowEarlyTransport bool) bool {
	if allowEarlyTransport {
		return true
	}
	loc, ok := util.FindAnyBuffer(s, job.Location)
	if !ok || loc.MachineIdx < 0 || loc.Slot != util.SlotPost {
		return false
	}
	bufCfg, ok := inst.FindBufferConfig(job.Location)
	if !ok {
		return false
	}
	return util.IsAtHead(util.BufferStateAt(s, loc).Store, bufCfg.Discipline, job.ID)
}

// GenerateCompletions enumerates §4.2's machine/transport completions and
// outage exits: every component whose occupied_till is due and whose
// current phase has a defined successor. Results are sorted by component
// id; Step applies every one of them (unlike starts, completions are not
// limited to one per tick).
func GenerateCompletions(s jobshop.State) []jobshop.ComponentTransition {
	var out []jobshop.ComponentTransition

	for _, m := range s.Machines {
		due, ok := m.OccupiedTill.Due()
		if !ok || due > s.Time {
			continue
		}
		switch m.Phase {
		case jobshop.MachineSetup:
			out = append(out, jobshop.ComponentTransition{ComponentID: m.ID, Tag: jobshop.TransitionMachineStartWorking, JobID: m.CurrentJobID})
		case jobshop.MachineWorking:
			out = append(out, jobshop.ComponentTransition{ComponentID: m.ID, Tag: jobshop.TransitionMachineComplete, JobID: m.CurrentJobID})
		case jobshop.MachineOutage:
			out = append(out, jobshop.ComponentTransition{ComponentID: m.ID, Tag: jobshop.TransitionMachineOutageExit})
		}
	}

	for _, tr := range s.Transports {
		due, ok := tr.OccupiedTill.Due()
		if !ok || due > s.Time {
			continue
		}
		switch tr.Phase {
		case jobshop.TransportPickup:
			out = append(out, jobshop.ComponentTransition{ComponentID: tr.ID, Tag: jobshop.TransitionTransportLoaded, JobID: tr.PickupJobID})
		case jobshop.TransportWorking:
			out = append(out, jobshop.ComponentTransition{ComponentID: tr.ID, Tag: jobshop.TransitionTransportComplete, JobID: tr.TransportJob})
		case jobshop.TransportOutage:
			out = append(out, jobshop.ComponentTransition{ComponentID: tr.ID, Tag: jobshop.TransitionTransportOutageExit})
		}
	}

	sortByComponentID(out)
	return out
}

func sortByComponentID(ts []jobshop.ComponentTransition) {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].ComponentID < ts[j].ComponentID })
}
