package util

import "github.com/proto-lab-ro/jobshoplab/jobshop"

// NextIdleOperation returns the operation config and status of the first
// IDLE operation in job order, and whether one exists. Operations within a
// job are totally ordered (§3); this is always operations[len(done):][0].
func NextIdleOperation(job jobshop.JobState, cfg jobshop.JobConfig) (jobshop.OperationConfig, jobshop.OperationStatus, bool) {
	for i, st := range job.Operations {
		if st.State == jobshop.OperationIdle {
			return cfg.Operations[i], st, true
		}
		if st.State != jobshop.OperationDone {
			// Processing: not idle, and not the job's next idle op.
			return jobshop.OperationConfig{}, jobshop.OperationStatus{}, false
		}
	}
	return jobshop.OperationConfig{}, jobshop.OperationStatus{}, false
}

// AllOperationsDone reports whether every operation of job is DONE.
func AllOperationsDone(job jobshop.JobState) bool {
	for _, st := range job.Operations {
		if st.State != jobshop.OperationDone {
			return false
		}
	}
	return true
}

// OperationIndex returns the position of operationID within job.Operations, or -1.
func OperationIndex(job jobshop.JobState, operationID string) int {
	for i, st := range job.Operations {
		if st.OperationID == operationID {
			return i
		}
	}
	return -1
}
