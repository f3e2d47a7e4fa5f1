package util

import (
	"math/rand"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
)

// LowerBound computes a classical job-shop lower bound: the larger of
//   - the longest per-job critical path (sum of that job's operation
//     durations), and
//   - the busiest per-machine load (sum of durations of operations
//     targeting that machine),
//
// sampled once via rng for stochastic TimeSources. Used by
// jobshop/middleware to compute the §6 max_time_fct truncation
// threshold; it is a bound on an optimal schedule, not a guarantee this
// engine will reach it (spec.md §1 Non-goals: "producing optimal
// schedules").
func LowerBound(inst jobshop.Instance, rng *rand.Rand) jobshop.Time {
	var best int64

	perMachine := make(map[string]int64)
	for _, job := range inst.Jobs {
		var jobTotal int64
		for _, op := range job.Operations {
			d := op.Duration.Sample(rng)
			jobTotal += d
			perMachine[op.MachineID] += d
		}
		if jobTotal > best {
			best = jobTotal
		}
	}
	for _, total := range perMachine {
		if total > best {
			best = total
		}
	}
	return jobshop.Time(best)
}

// TotalOperations counts every operation across every job in the instance,
// used by jobshop/middleware for the §6 max_action_fct threshold.
func TotalOperations(inst jobshop.Instance) int {
	n := 0
	for _, job := range inst.Jobs {
		n += len(job.Operations)
	}
	return n
}
