// Package proc defines the scheduler's process table: the fixed array of
// process slots that every other kernel component (stack manager, critical
// section guard, strategies, preemption core) reads or mutates.
package proc

import "fmt"

// State is the lifecycle state of a process slot.
type State uint8

const (
	// Unused marks a slot that has never been exec'd, or whose program
	// entry and other fields must not be read.
	Unused State = iota
	// Ready marks a slot eligible for selection by a strategy.
	Ready
	// Running marks the single slot currently owning the CPU.
	Running
	// Blocked is reserved for a later revision; this core never produces it.
	Blocked
)

func (s State) String() string {
	switch s {
	case Unused:
		return "UNUSED"
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Blocked:
		return "BLOCKED"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// PID is the index of a process slot. Slot 0 is always the idle process.
type PID int

// Invalid is returned by Exec when no slot is available or the program is nil.
const Invalid PID = -1

// Program is a zero-argument entry function that, on real hardware, never
// returns. The simulated CPU (internal/sched) runs it cooperatively between
// ticks; see sched.Run for how it is called.
type Program func()

// Slot is one entry of the process table.
type Slot struct {
	Name     string // diagnostic label only; never consulted by scheduling logic
	Program  Program
	Priority uint8
	State    State

	// StackPointer is the offset, within this slot's stack region, of the
	// top of the last saved context. StackBase is the offset of the
	// region's initial top (where a freshly seeded stack starts).
	StackBase    int
	StackPointer int
	Checksum     byte
}

// Table is the fixed-size process table. The maximum process count is
// len(Slots); slot index doubles as PID.
type Table struct {
	Slots []Slot
}

// NewTable allocates a table with exactly n slots, all Unused.
func NewTable(n int) *Table {
	return &Table{Slots: make([]Slot, n)}
}

// Len returns the fixed process-table size.
func (t *Table) Len() int { return len(t.Slots) }

// Get returns the slot at pid. Callers must not read fields of an Unused
// slot other than State.
func (t *Table) Get(pid PID) *Slot { return &t.Slots[pid] }

// Selectable reports whether pid is READY and, by definition, not the idle
// slot (PID 0), unless idle is the only READY slot in the table, in which
// case idle itself counts as selectable.
func (t *Table) Selectable(pid PID) bool {
	if t.Slots[pid].State != Ready {
		return false
	}
	if pid != 0 {
		return true
	}
	return !t.anyNonIdleReady()
}

func (t *Table) anyNonIdleReady() bool {
	for i := 1; i < len(t.Slots); i++ {
		if t.Slots[i].State == Ready {
			return true
		}
	}
	return false
}
