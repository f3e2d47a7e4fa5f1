// Package middleware implements §4.10: the external agent-loop contract
// (reset/step/render) wrapping the engine's internal tick, including
// §6's truncation-joker, time-budget, and action-budget accounting.
package middleware

// Config holds the §6 configuration options the core itself interprets.
type Config struct {
	// TruncationJoker is the number of invalid actions tolerated before
	// truncation, once TruncationActive is true.
	TruncationJoker int
	// TruncationActive gates whether invalid actions ever truncate.
	TruncationActive bool
	// MaxTimeFct truncates once elapsed time exceeds MaxTimeFct times the
	// instance's lower bound. Zero disables the check.
	MaxTimeFct float64
	// MaxActionFct truncates once the action count exceeds MaxActionFct
	// times the instance's total operation count. Zero disables the check.
	MaxActionFct float64
	// AllowEarlyTransport, when false, restricts transport-pickup
	// candidates to jobs at a post-buffer's head-of-queue position (P9).
	AllowEarlyTransport bool
}

// DefaultConfig mirrors a permissive, non-truncating setup: no joker
// budget enforced, no time or action ceiling, early transport allowed.
func DefaultConfig() Config {
	return Config{AllowEarlyTransport: true}
}
