package timemachine

import (
	"math/rand"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
)

// ArmOutage samples a fresh due time and duration for one outage schedule
// and returns the resulting PendingOutage. Called both at simulation start
// (InitialPendingOutages) and every time a component exits OUTAGE
// (the engine's rearmOutage), per §4.7 "On exit, resample the next outage."
func ArmOutage(componentID string, cfg jobshop.OutageConfig, now jobshop.Time, rng *rand.Rand) jobshop.PendingOutage {
	freq := cfg.Frequency.Sample(rng)
	dur := cfg.Duration.Sample(rng)
	return jobshop.PendingOutage{
		ComponentID: componentID,
		OutageID:    cfg.ID,
		Type:        cfg.Type,
		DueAt:       now + jobshop.Time(freq),
		Duration:    dur,
	}
}

// InitialPendingOutages arms every outage schedule declared on every
// machine and transport in inst, to be used when constructing the
// simulation's initial State.
func InitialPendingOutages(inst jobshop.Instance, now jobshop.Time, rng *rand.Rand) []jobshop.PendingOutage {
	var out []jobshop.PendingOutage
	for _, m := range inst.Machines {
		for _, o := range m.Outages {
			out = append(out, ArmOutage(m.ID, o, now, rng))
		}
	}
	for _, t := range inst.Transports {
		for _, o := range t.Outages {
			out = append(out, ArmOutage(t.ID, o, now, rng))
		}
	}
	return out
}

// FindOutageConfig looks up the OutageConfig named by componentID+outageID
// across both machine and transport outage schedules.
func FindOutageConfig(inst jobshop.Instance, componentID, outageID string) (jobshop.OutageConfig, bool) {
	if mc, ok := inst.FindMachineConfig(componentID); ok {
		for _, o := range mc.Outages {
			if o.ID == outageID {
				return o, true
			}
		}
	}
	if tc, ok := inst.FindTransportConfig(componentID); ok {
		for _, o := range tc.Outages {
			if o.ID == outageID {
				return o, true
			}
		}
	}
	return jobshop.OutageConfig{}, false
}

// SetupDuration looks up the setup time for a machine entering WORKING on
// toTool coming from fromTool (§4.7). When fromTool == toTool, setup is
// zero regardless of what the matrix says: a non-zero self-to-self entry
// is accepted, not rejected, but it is never consulted.
func SetupDuration(mc jobshop.MachineConfig, fromTool, toTool string) int64 {
	if fromTool == toTool {
		return 0
	}
	return mc.SetupTimes[jobshop.ToolPair{From: fromTool, To: toTool}]
}
