package jobshop

// ToolPair indexes a machine's setup-time table by (from_tool, to_tool).
type ToolPair struct {
	From string
	To   string
}

// LocationPair indexes the instance-wide travel-time matrix by
// (from_location, to_location).
type LocationPair struct {
	From string
	To   string
}

// OutageConfig is one outage schedule attached to a machine or transport.
// The `Type` tag is informational only (§4.7) and never consulted by the
// engine for correctness.
type OutageConfig struct {
	ID       string
	Type     OutageType
	Frequency TimeSource
	Duration  TimeSource
}

// OperationConfig is the static definition of one operation: which machine
// it targets, which tool it needs, and how long it takes.
type OperationConfig struct {
	ID        string
	JobID     string
	MachineID string
	ToolID    string // optional, "" if the operation has no tool requirement
	Duration  TimeSource
}

// JobConfig is the static, totally-ordered operation sequence for one job.
type JobConfig struct {
	ID         string
	Operations []OperationConfig
}

// BufferConfig is the static definition of one buffer.
type BufferConfig struct {
	ID         string
	Discipline BufferDiscipline
	Capacity   int
	Role       BufferRole
	Parent     string // optional machine/transport id that owns this buffer
}

// MachineConfig is the static definition of one machine: its owned buffer
// ids, setup-time table, and outage schedules.
type MachineConfig struct {
	ID            string
	PreBufferID   string
	BufferID      string
	PostBufferID  string
	SetupTimes    map[ToolPair]int64
	Outages       []OutageConfig
}

// TransportConfig is the static definition of one transport (AGV).
type TransportConfig struct {
	ID      string
	Outages []OutageConfig
}

// Instance is the validated, static configuration a State evolves against.
// Producing one from the textual DSL is out of scope (spec.md §1); this
// value is what the core actually consumes (spec.md §6).
type Instance struct {
	Machines   []MachineConfig
	Transports []TransportConfig
	Jobs       []JobConfig
	Buffers    []BufferConfig
	TravelTimes map[LocationPair]TimeSource

	// InputBufferID and OutputBufferIDs resolve the reserved location
	// names (`in-buf`/`input`/`input-buffer`, `out-buf`/`output`/
	// `output-buffer`) to concrete buffer ids at load time (§6).
	InputBufferID   string
	OutputBufferIDs []string
}

// FindJobConfig returns the static job definition for id, or false.
func (inst Instance) FindJobConfig(id string) (JobConfig, bool) {
	for _, j := range inst.Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return JobConfig{}, false
}

// FindMachineConfig returns the static machine definition for id, or false.
func (inst Instance) FindMachineConfig(id string) (MachineConfig, bool) {
	for _, m := range inst.Machines {
		if m.ID == id {
			return m, true
		}
	}
	return MachineConfig{}, false
}

// FindTransportConfig returns the static transport definition for id, or false.
func (inst Instance) FindTransportConfig(id string) (TransportConfig, bool) {
	for _, t := range inst.Transports {
		if t.ID == id {
			return t, true
		}
	}
	return TransportConfig{}, false
}

// FindBufferConfig returns the static buffer definition for id, or false.
func (inst Instance) FindBufferConfig(id string) (BufferConfig, bool) {
	for _, b := range inst.Buffers {
		if b.ID == id {
			return b, true
		}
	}
	return BufferConfig{}, false
}

// IsOutputBuffer reports whether id names an OUTPUT-role buffer.
func (inst Instance) IsOutputBuffer(id string) bool {
	for _, b := range inst.OutputBufferIDs {
		if b == id {
			return true
		}
	}
	return false
}

// TravelTime looks up the travel-time source for (from, to). Returns false
// if the pair is not in the matrix.
func (inst Instance) TravelTime(from, to string) (TimeSource, bool) {
	ts, ok := inst.TravelTimes[LocationPair{From: from, To: to}]
	return ts, ok
}
