package sched

import (
	"errors"
	"sync"

	"mazsched/internal/critical"
	"mazsched/internal/hw"
	"mazsched/internal/klog"
	"mazsched/internal/proc"
	"mazsched/internal/stack"
)

// Errors recoverable callers of Exec must handle explicitly.
var (
	ErrSlotExhausted = errors.New("exec: no unused process slot")
	ErrNilProgram    = errors.New("exec: program must not be nil")
)

// DefaultPriority is used for the idle process and every autostart entry.
const DefaultPriority = 1

// Scheduler is the process-wide scheduler singleton: process table, stack
// arena, critical-section guard, strategy registry and the currently
// running pid. mu guards table and bookkeeping mutations against concurrent
// callers in this Go process.
type Scheduler struct {
	mu sync.Mutex

	table    *proc.Table
	arena    *stack.Arena
	cs       *critical.Section
	irq      *hw.InterruptController
	registry *Registry

	currentPID proc.PID
	strategy   Kind

	log *klog.Logger
}

// New builds a scheduler for a table of numSlots slots, each with a stack
// region of stackBytes bytes, using seed to make the Random strategy
// reproducible.
func New(numSlots, stackBytes int, seed int64, log *klog.Logger) *Scheduler {
	irq := hw.NewInterruptController()
	return &Scheduler{
		table:    proc.NewTable(numSlots),
		arena:    stack.NewArena(numSlots, stackBytes),
		cs:       critical.New(irq),
		irq:      irq,
		registry: NewRegistry(numSlots, seed),
		strategy: Even,
		log:      log,
	}
}

// Table exposes the process table for read-only inspection (CLI, tests).
func (s *Scheduler) Table() *proc.Table { return s.table }

// Arena exposes the stack arena for tests that need to simulate corruption.
func (s *Scheduler) Arena() *stack.Arena { return s.arena }

// Interrupts exposes the simulated interrupt controller.
func (s *Scheduler) Interrupts() *hw.InterruptController { return s.irq }

// CurrentPID returns the slot currently RUNNING.
func (s *Scheduler) CurrentPID() proc.PID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPID
}

// EnterCritical masks the scheduler timer, nesting safely.
func (s *Scheduler) EnterCritical() { s.cs.Enter() }

// LeaveCritical unmasks the scheduler timer once nesting unwinds to zero.
func (s *Scheduler) LeaveCritical() { s.cs.Leave() }

// CriticalDepth reports the current nesting depth, for tests and the CLI
// inspect path.
func (s *Scheduler) CriticalDepth() uint8 { return s.cs.Count() }

// SetStrategy installs kind as the active strategy and resets its private
// state.
func (s *Scheduler) SetStrategy(kind Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strategy = kind
	s.registry.Lookup(kind).Reset()
}

// GetStrategy returns the active strategy tag.
func (s *Scheduler) GetStrategy() Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strategy
}

// Exec creates a new process: scans for the first UNUSED slot in ascending
// index order, seeds its stack so the first restore lands at program's
// entry point, and marks it READY. Returns proc.Invalid without mutating
// the table if no slot is free or program is nil.
func (s *Scheduler) Exec(program proc.Program, priority uint8, name string) (proc.PID, error) {
	s.EnterCritical()
	defer s.LeaveCritical()

	if program == nil {
		return proc.Invalid, ErrNilProgram
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < s.table.Len(); i++ {
		pid := proc.PID(i)
		slot := s.table.Get(pid)
		if slot.State != proc.Unused {
			continue
		}

		sp, checksum := s.arena.Seed(i, entryToken)
		slot.Name = name
		slot.Program = program
		slot.Priority = priority
		slot.State = proc.Ready
		slot.StackBase = s.arena.PerSlot()
		slot.StackPointer = sp
		slot.Checksum = checksum

		return pid, nil
	}

	return proc.Invalid, ErrSlotExhausted
}

// entryToken is the seeded "entry address" placeholder. The simulated CPU
// invokes a slot's Program closure directly, so this value is diagnostic
// filler occupying the same two bytes a real target would use for its
// entry point.
const entryToken uint16 = 0xBEEF
