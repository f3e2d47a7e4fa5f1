// Package util provides pure helpers shared by handler, validate,
// transport, timemachine and engine: lookup by id, buffer ordering,
// operation progression, and lower-bound computation.
package util

import "github.com/proto-lab-ro/jobshoplab/jobshop"

// FindMachine returns the index of the machine with id in s.Machines, or -1.
func FindMachine(s jobshop.State, id string) int {
	for i, m := range s.Machines {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// FindTransport returns the index of the transport with id in s.Transports, or -1.
func FindTransport(s jobshop.State, id string) int {
	for i, t := range s.Transports {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// FindJob returns the index of the job with id in s.Jobs, or -1.
func FindJob(s jobshop.State, id string) int {
	for i, j := range s.Jobs {
		if j.ID == id {
			return i
		}
	}
	return -1
}

// FindBuffer returns the index of the standalone buffer with id in
// s.Buffers, or -1. It does not search machine-owned buffers; use
// FindAnyBuffer for that.
func FindBuffer(s jobshop.State, id string) int {
	for i, b := range s.Buffers {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// BufferLocation identifies where an owned BufferState lives: either a
// standalone entry in State.Buffers, or one of a machine's three slots.
type BufferLocation struct {
	MachineIdx int // -1 if this is a standalone buffer
	Slot       MachineSlot
	BufferIdx  int // index into State.Buffers, valid only when MachineIdx == -1
}

// MachineSlot names one of a machine's three owned buffer slots.
type MachineSlot int

const (
	SlotNone MachineSlot = iota
	SlotPre
	SlotInternal
	SlotPost
)

// FindAnyBuffer locates buffer id anywhere in the state: standalone or
// owned by a machine. Returns false if not found.
func FindAnyBuffer(s jobshop.State, id string) (BufferLocation, bool) {
	if i := FindBuffer(s, id); i >= 0 {
		return BufferLocation{MachineIdx: -1, BufferIdx: i}, true
	}
	for mi, m := range s.Machines {
		switch id {
		case m.PreBuffer.ID:
			return BufferLocation{MachineIdx: mi, Slot: SlotPre}, true
		case m.Buffer.ID:
			return BufferLocation{MachineIdx: mi, Slot: SlotInternal}, true
		case m.PostBuffer.ID:
			return BufferLocation{MachineIdx: mi, Slot: SlotPost}, true
		}
	}
	return BufferLocation{}, false
}

// BufferStateAt dereferences a BufferLocation against s.
func BufferStateAt(s jobshop.State, loc BufferLocation) jobshop.BufferState {
	if loc.MachineIdx == -1 {
		return s.Buffers[loc.BufferIdx]
	}
	m := s.Machines[loc.MachineIdx]
	switch loc.Slot {
	case SlotPre:
		return m.PreBuffer
	case SlotPost:
		return m.PostBuffer
	default:
		return m.Buffer
	}
}
