package jobshop

// OperationState is the lifecycle state of a single operation within a job.
type OperationState string

const (
	OperationIdle       OperationState = "Idle"
	OperationProcessing OperationState = "Processing"
	OperationDone       OperationState = "Done"
)

// MachinePhase is the lifecycle state of a Machine.
type MachinePhase string

const (
	MachineIdle    MachinePhase = "Idle"
	MachineSetup   MachinePhase = "Setup"
	MachineWorking MachinePhase = "Working"
	MachineOutage  MachinePhase = "Outage"
)

// TransportPhase is the lifecycle state of a Transport (AGV).
type TransportPhase string

const (
	TransportIdle    TransportPhase = "Idle"
	TransportPickup  TransportPhase = "Pickup"
	TransportWorking TransportPhase = "Working"
	TransportOutage  TransportPhase = "Outage"
)

// BufferDiscipline is the ordering discipline a Buffer enforces on pickup.
type BufferDiscipline string

const (
	BufferFIFO  BufferDiscipline = "FIFO"
	BufferLIFO  BufferDiscipline = "LIFO"
	BufferFLEX  BufferDiscipline = "FLEX"
	BufferDummy BufferDiscipline = "DUMMY"
)

// BufferRole classifies a Buffer's place in the job flow.
type BufferRole string

const (
	BufferInput       BufferRole = "INPUT"
	BufferOutput      BufferRole = "OUTPUT"
	BufferComponent   BufferRole = "COMPONENT"
	BufferCompensation BufferRole = "COMPENSATION"
)

// BufferStatus is the derived occupancy status of a Buffer, computed from
// len(store) vs capacity rather than stored redundantly.
type BufferStatus string

const (
	BufferEmpty    BufferStatus = "Empty"
	BufferNotEmpty BufferStatus = "NotEmpty"
	BufferFull     BufferStatus = "Full"
)

// OutageType is an informational tag with no mechanical effect (§4.7).
type OutageType string

const (
	OutageMaintenance OutageType = "MAINTENANCE"
	OutageFail        OutageType = "FAIL"
	OutageRecharge    OutageType = "RECHARGE"
)

// TransitionTag names one legal tag-to-tag edge from §4.1.
type TransitionTag string

const (
	TransitionMachineSetup        TransitionTag = "machine:idle->setup"
	TransitionMachineStartWorking TransitionTag = "machine:setup->working"
	TransitionMachineSkipToWorking TransitionTag = "machine:idle->working"
	TransitionMachineComplete     TransitionTag = "machine:working->idle"
	TransitionMachineOutageEnter  TransitionTag = "machine:*->outage"
	TransitionMachineOutageExit   TransitionTag = "machine:outage->idle"

	TransitionTransportPickup    TransitionTag = "transport:idle->pickup"
	TransitionTransportLoaded    TransitionTag = "transport:pickup->working"
	TransitionTransportComplete  TransitionTag = "transport:working->idle"
	TransitionTransportOutageEnter TransitionTag = "transport:*->outage"
	TransitionTransportOutageExit  TransitionTag = "transport:outage->idle"
)
