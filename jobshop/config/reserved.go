package config

import "github.com/proto-lab-ro/jobshoplab/jobshop"

var reservedInputNames = map[string]bool{
	"in-buf": true, "input": true, "input-buffer": true,
}

var reservedOutputNames = map[string]bool{
	"out-buf": true, "output": true, "output-buffer": true,
}

// resolveReservedBuffers implements §6: when no buffer explicitly
// declares role INPUT/OUTPUT, a buffer whose id matches one of the
// reserved names (or an alias) is promoted to that role. It also
// populates inst.InputBufferID and inst.OutputBufferIDs from whichever
// buffers end up holding those roles, explicit or aliased.
func resolveReservedBuffers(inst *jobshop.Instance) error {
	var inputID string
	var outputIDs []string

	for _, b := range inst.Buffers {
		if b.Role == jobshop.BufferInput {
			inputID = b.ID
		}
		if b.Role == jobshop.BufferOutput {
			outputIDs = append(outputIDs, b.ID)
		}
	}

	for i, b := range inst.Buffers {
		if inputID == "" && reservedInputNames[b.ID] {
			inst.Buffers[i].Role = jobshop.BufferInput
			inputID = b.ID
		}
		if len(outputIDs) == 0 && reservedOutputNames[b.ID] {
			inst.Buffers[i].Role = jobshop.BufferOutput
			outputIDs = append(outputIDs, b.ID)
		}
	}

	if inputID == "" {
		return &jobshop.InvalidValueError{Value: "input buffer", Reason: "no INPUT-role buffer declared or resolvable from a reserved name"}
	}
	if len(outputIDs) == 0 {
		return &jobshop.InvalidValueError{Value: "output buffer", Reason: "no OUTPUT-role buffer declared or resolvable from a reserved name"}
	}

	inst.InputBufferID = inputID
	inst.OutputBufferIDs = outputIDs
	return nil
}
