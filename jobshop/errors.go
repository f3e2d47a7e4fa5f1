package jobshop

import "fmt"

// InvalidTransitionError is a non-fatal validator rejection (§7). The
// offending transition is discarded from the current tick; the engine
// re-derives the possible set.
type InvalidTransitionError struct {
	Reason      string
	ComponentID string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition on %s: %s", e.ComponentID, e.Reason)
}

// InconsistentStateError signals an internal invariant violation: a defect
// in the engine itself, fatal for the run (§7).
type InconsistentStateError struct {
	Reason      string
	ComponentID string
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("inconsistent state (%s): %s", e.ComponentID, e.Reason)
}

// InvalidValueError signals malformed input to a utility, e.g. an id that
// is not present (§7).
type InvalidValueError struct {
	Reason string
	Value  any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %v: %s", e.Value, e.Reason)
}

// NotImplementedError signals a duration or transition variant not yet
// supported; fatal for that run (§7).
type NotImplementedError struct {
	Reason string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Reason)
}
