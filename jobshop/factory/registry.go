package factory

import "fmt"

// NewActionInterpreter constructs an ActionInterpreter by name. Valid
// names: "" and "binary" (default). Panics on unrecognized names, mirroring
// how the rest of this codebase resolves string-keyed configuration at
// startup rather than at request time.
func NewActionInterpreter(name string) ActionInterpreter {
	switch name {
	case "", "binary":
		return BinaryDecisionInterpreter{}
	default:
		panic(fmt.Sprintf("unknown action interpreter %q", name))
	}
}

// NewObservationBuilder constructs an ObservationBuilder by name. Valid
// names: "" and "raw" (default).
func NewObservationBuilder(name string) ObservationBuilder {
	switch name {
	case "", "raw":
		return RawObservationBuilder{}
	default:
		panic(fmt.Sprintf("unknown observation builder %q", name))
	}
}

// NewRewardScorer constructs a RewardScorer by name. Valid names: "" and
// "makespan" (default).
func NewRewardScorer(name string) RewardScorer {
	switch name {
	case "", "makespan":
		return MakespanRewardScorer{}
	default:
		panic(fmt.Sprintf("unknown reward scorer %q", name))
	}
}
