package util

import "github.com/proto-lab-ro/jobshoplab/jobshop"

// HeadOfQueue returns the job id at the pickupable head position of a
// buffer under the given discipline (§4.6), and whether the buffer is
// non-empty. FLEX treats every position as the head, so the front slot is
// reported for convenience but callers should use IsAtHead to test any
// specific job.
func HeadOfQueue(store []string, discipline jobshop.BufferDiscipline) (string, bool) {
	if len(store) == 0 {
		return "", false
	}
	switch discipline {
	case jobshop.BufferLIFO:
		return store[len(store)-1], true
	case jobshop.BufferDummy:
		return store[0], true
	case jobshop.BufferFLEX:
		return store[0], true
	default: // FIFO
		return store[0], true
	}
}

// IsAtHead reports whether jobID occupies the head-of-queue position of
// store under discipline. FLEX buffers report any contained job id as
// head-eligible (§4.6 "any position").
func IsAtHead(store []string, discipline jobshop.BufferDiscipline, jobID string) bool {
	if discipline == jobshop.BufferFLEX {
		return Contains(store, jobID)
	}
	head, ok := HeadOfQueue(store, discipline)
	return ok && head == jobID
}

// Contains reports whether store contains jobID.
func Contains(store []string, jobID string) bool {
	for _, id := range store {
		if id == jobID {
			return true
		}
	}
	return false
}

// RemoveJob returns a copy of store with the first occurrence of jobID
// removed.
func RemoveJob(store []string, jobID string) []string {
	out := make([]string, 0, len(store))
	removed := false
	for _, id := range store {
		if !removed && id == jobID {
			removed = true
			continue
		}
		out = append(out, id)
	}
	return out
}

// AppendJob returns a copy of store with jobID appended at the back.
// Buffers always append on entry; it is the discipline's HeadOfQueue logic
// that determines which position becomes pickupable, not insertion order.
func AppendJob(store []string, jobID string) []string {
	out := make([]string, len(store), len(store)+1)
	copy(out, store)
	return append(out, jobID)
}
