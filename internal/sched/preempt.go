package sched

import (
	"fmt"

	"mazsched/internal/bitfield"
	"mazsched/internal/hw"
	"mazsched/internal/proc"
)

// Tick runs one invocation of the preemption core: saves the running
// process, picks the next one, restores it. It is not reentrant; callers
// (the simulated timer driver sched.Run, or a test) must serialize
// calls to it themselves, the same way real hardware serializes
// interrupts. input and display may be nil, in which case step 7 (the
// task-manager sidecar) is skipped. While the scheduler timer is masked or
// interrupts are globally disabled the tick is not delivered: Tick returns
// without switching and the running process keeps the CPU.
func (s *Scheduler) Tick(input hw.InputDevice, display hw.Display) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.irq.Preemptible() {
		return
	}

	current := s.currentPID
	currentSlot := s.table.Get(current)

	// 1. Save the register context. Simulated no-op; the context region
	// was already seeded at the last switch-in.
	sp := currentSlot.StackPointer
	currentSlot.StackPointer = sp // 2. record current SP (already current)

	// 3. Switch to the ISR stack for housekeeping. Implicit: strategies and
	// the checksum check below never touch process stack memory.

	// 4. Verify the checksum.
	want := currentSlot.Checksum
	got := s.arena.Checksum(int(current), sp)
	if got != want {
		s.log.Fatal(fmt.Sprintf("Stack overflow detected: pid=%d want=%#x got=%#x", current, want, got))
		return
	}

	// 5. Mark current slot READY.
	currentSlot.State = proc.Ready

	// 6. Invoke the active strategy.
	next := s.registry.Lookup(s.strategy).Select(s.table, current)

	// 7. Peripheral sidecar: task-manager chord.
	if input != nil && input.Read()&hw.TaskManagerChord == hw.TaskManagerChord {
		input.WaitForRelease()
		if display != nil {
			display.Render(s.overlayLines(next))
		}
	}

	// 8. Mark chosen slot RUNNING, "restore" its stack pointer, recompute
	// and store its checksum.
	nextSlot := s.table.Get(next)
	nextSlot.State = proc.Running
	nextSlot.Checksum = s.arena.Checksum(int(next), nextSlot.StackPointer)

	s.currentPID = next

	if desc, err := bitfield.Pack(s.table.Describe(next)); err == nil {
		s.log.Debugf("tick: selected=%d descriptor=%#x", next, desc)
	}

	// 9. Restore the register context. Simulated no-op; hardware's
	// return-from-interrupt is this function simply returning to its
	// caller, which re-arms preemption the same instant control resumes.
}

// Overlay renders the current process table the way the task-manager
// sidecar would, without requiring a tick. Basis for the CLI's read-only
// `inspect` subcommand.
func (s *Scheduler) Overlay() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlayLines(s.currentPID)
}

func (s *Scheduler) overlayLines(next proc.PID) []string {
	lines := make([]string, 0, s.table.Len()+1)
	lines = append(lines, "PID  NAME            PRI  STATE    CHECKSUM")
	for i := 0; i < s.table.Len(); i++ {
		pid := proc.PID(i)
		slot := s.table.Get(pid)
		if slot.State == proc.Unused {
			continue
		}
		marker := "  "
		if pid == next {
			marker = "->"
		}
		lines = append(lines, fmt.Sprintf("%s%-4d %-15s %-4d %-8s %#02x",
			marker, pid, slot.Name, slot.Priority, slot.State, slot.Checksum))
	}
	return lines
}
