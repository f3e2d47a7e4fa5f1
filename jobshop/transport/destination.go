package transport

import (
	"math/rand"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/util"
)

// Destination implements §4.5: where a transport's loaded leg for job ends.
// If the job has no IDLE operation remaining, the destination is the
// first OUTPUT-role buffer id; otherwise it is the machine id of the
// job's next IDLE operation.
func Destination(job jobshop.JobState, cfg jobshop.JobConfig, inst jobshop.Instance) (string, error) {
	if util.AllOperationsDone(job) {
		if len(inst.OutputBufferIDs) == 0 {
			return "", &jobshop.InvalidValueError{Value: job.ID, Reason: "instance has no OUTPUT-role buffer"}
		}
		return inst.OutputBufferIDs[0], nil
	}
	nextOp, _, ok := util.NextIdleOperation(job, cfg)
	if !ok {
		return "", &jobshop.InconsistentStateError{ComponentID: job.ID, Reason: "no idle operation and not all-done"}
	}
	return nextOp.MachineID, nil
}

// TravelTime samples the travel-time source for (from, to) once, at the
// moment the leg begins (§4.5 "for stochastic matrices the duration is
// sampled once at the moment the leg begins").
func TravelTime(inst jobshop.Instance, from, to string, rng *rand.Rand) (int64, error) {
	ts, ok := inst.TravelTime(from, to)
	if !ok {
		return 0, &jobshop.InvalidValueError{Value: jobshop.LocationPair{From: from, To: to}, Reason: "no travel time entry"}
	}
	return ts.Sample(rng), nil
}
