package sched

import (
	"fmt"

	"mazsched/internal/proc"
)

// AutostartEntry names one program in the autostart list, loaded from
// bootcfg or supplied directly by a test.
type AutostartEntry struct {
	Name    string
	Program proc.Program
}

// InitScheduler exec's idle into slot 0, asserting that invariant before
// creating anything else, then exec's every autostart entry in order, all
// at DefaultPriority.
func (s *Scheduler) InitScheduler(idle proc.Program, autostart []AutostartEntry) error {
	pid, err := s.Exec(idle, DefaultPriority, "idle")
	if err != nil {
		return fmt.Errorf("init_scheduler: idle: %w", err)
	}
	if pid != 0 {
		// Construction-time invariant: idle must land in slot 0. Exec only
		// fails this if slot 0 was already occupied, which cannot happen
		// on a scheduler that has just been constructed.
		return fmt.Errorf("init_scheduler: idle landed in slot %d, want 0", pid)
	}

	for _, entry := range autostart {
		if _, err := s.Exec(entry.Program, DefaultPriority, entry.Name); err != nil {
			return fmt.Errorf("init_scheduler: autostart %q: %w", entry.Name, err)
		}
	}
	return nil
}

// StartScheduler hands control to slot 0 (idle): marks it RUNNING and sets
// the current pid to 0. From this call onward the scheduler is
// multitasking; the caller is expected to begin driving Tick on a timer.
func (s *Scheduler) StartScheduler() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPID = 0
	s.table.Get(0).State = proc.Running
}
