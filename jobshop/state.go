package jobshop

// OperationStatus is the dynamic lifecycle state of one operation,
// keyed by the OperationConfig.ID it corresponds to.
type OperationStatus struct {
	OperationID string
	State       OperationState
}

// JobState is the dynamic state of one job: a per-operation status tuple
// and the single location (buffer, machine, or transport id) currently
// holding it (§3 "exactly one location at any instant").
type JobState struct {
	ID         string
	Operations []OperationStatus
	Location   string
}

// BufferState is the dynamic contents of one buffer, keyed by the
// BufferConfig.ID it corresponds to.
type BufferState struct {
	ID    string
	Store []string // ordered job ids
}

// Status computes the buffer's derived occupancy status from len(Store)
// vs the static capacity.
func (b BufferState) Status(capacity int) BufferStatus {
	switch {
	case len(b.Store) == 0:
		return BufferEmpty
	case len(b.Store) >= capacity:
		return BufferFull
	default:
		return BufferNotEmpty
	}
}

// PendingOutage is an armed-but-not-yet-fired outage timer for one
// component, keyed by the OutageConfig.ID on that component. Once DueAt is
// reached, timemachine.DueOutages lists it and the engine applies it,
// entering OUTAGE for Duration ticks if the component's validator accepts
// the entry; a rejected entry stays pending.
type PendingOutage struct {
	ComponentID string
	OutageID    string
	Type        OutageType
	DueAt       Time
	Duration    int64
}

// MachineState is the dynamic state of one machine, keyed by the
// MachineConfig.ID it corresponds to.
type MachineState struct {
	ID                 string
	Phase              MachinePhase
	CurrentJobID        string // "" if none
	CurrentOperationID  string // "" if none
	CurrentTool        string
	OccupiedTill       Occupied
	PreBuffer          BufferState
	Buffer             BufferState
	PostBuffer         BufferState

	// PhaseBeforeOutage and ResumeOccupiedTill are valid only while
	// Phase == MachineOutage: they record what to restore on outage exit
	// (§4.7 "Outages... pause the underlying work").
	PhaseBeforeOutage  MachinePhase
	ResumeOccupiedTill Occupied

	// ActiveOutageID names the OutageConfig currently running, valid only
	// while Phase == MachineOutage. The engine reads it at exit to
	// resample and rearm that same schedule (§4.7 "on exit, resample").
	ActiveOutageID string
}

// TransportState is the dynamic state of one transport (AGV), keyed by the
// TransportConfig.ID it corresponds to.
type TransportState struct {
	ID           string
	Phase        TransportPhase
	Location     string
	TransportJob string // "" if none; set once the PICKUP leg completes
	OccupiedTill Occupied

	// PickupJobID is the job committed to during the PICKUP leg, before
	// TransportJob is set (§4.6: "PICKUP is the leg to fetch the job").
	PickupJobID string

	// ActiveOutageID names the OutageConfig currently running, valid only
	// while Phase == TransportOutage.
	ActiveOutageID string
}

// State is the full immutable simulation state value (§3). Every
// transition produces a new State; the previous one is retained only in
// the append-only History.
type State struct {
	Time           Time
	Machines       []MachineState
	Transports     []TransportState
	Jobs           []JobState
	Buffers        []BufferState
	PendingOutages []PendingOutage
}

// Clone returns a deep copy of s, safe to mutate independently. Handlers
// use this as their starting point ("struct-copy-and-replace", §9) rather
// than mutating s in place.
func (s State) Clone() State {
	out := State{
		Time:           s.Time,
		Machines:       make([]MachineState, len(s.Machines)),
		Transports:     make([]TransportState, len(s.Transports)),
		Jobs:           make([]JobState, len(s.Jobs)),
		Buffers:        make([]BufferState, len(s.Buffers)),
		PendingOutages: make([]PendingOutage, len(s.PendingOutages)),
	}
	for i, m := range s.Machines {
		out.Machines[i] = m
		out.Machines[i].PreBuffer.Store = append([]string(nil), m.PreBuffer.Store...)
		out.Machines[i].Buffer.Store = append([]string(nil), m.Buffer.Store...)
		out.Machines[i].PostBuffer.Store = append([]string(nil), m.PostBuffer.Store...)
	}
	copy(out.Transports, s.Transports)
	for i, j := range s.Jobs {
		out.Jobs[i] = j
		out.Jobs[i].Operations = append([]OperationStatus(nil), j.Operations...)
	}
	for i, b := range s.Buffers {
		out.Buffers[i] = b
		out.Buffers[i].Store = append([]string(nil), b.Store...)
	}
	copy(out.PendingOutages, s.PendingOutages)
	return out
}
