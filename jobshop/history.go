package jobshop

import "github.com/google/uuid"

// HistoryRecord is one append-only entry: the state before and after one
// engine tick, the transition(s) chosen, and a human-readable message.
// History is never consulted by the engine for correctness (§3); it exists
// for rendering and debugging.
type HistoryRecord struct {
	ID                uuid.UUID
	OldState          State
	ChosenTransitions []ComponentTransition
	NewState          State
	Message           string

	// SubStates is a best-effort list of intermediate State snapshots
	// taken after each outage/completion/dependency transition applied
	// during the tick, for the `debug` render mode only. Nothing in the
	// engine or any invariant check ever reads it back; it may be nil.
	SubStates []State
}

// History is the append-only sequence of HistoryRecord values (§3).
type History struct {
	Records []HistoryRecord
}

// Append adds a new record to the end of the history.
func (h *History) Append(r HistoryRecord) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	h.Records = append(h.Records, r)
}

// Last returns the most recent record, or false if history is empty.
func (h *History) Last() (HistoryRecord, bool) {
	if len(h.Records) == 0 {
		return HistoryRecord{}, false
	}
	return h.Records[len(h.Records)-1], true
}

// Len returns the number of recorded ticks.
func (h *History) Len() int {
	return len(h.Records)
}
