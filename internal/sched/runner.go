package sched

import (
	"time"

	"mazsched/internal/hw"
	"mazsched/internal/proc"
)

// Run drives the simulated CPU for exactly ticks timer periods: each period
// it fires Tick, then runs the newly-RUNNING slot's program once. It
// returns the sequence of pids selected by each tick, in order, the data
// every scheduling scenario is checked against.
//
// Run is a harness convenience, not part of the scheduler core's API
// surface; tests that want fine control call Tick directly instead.
func Run(s *Scheduler, period time.Duration, ticks int, input hw.InputDevice, display hw.Display) []proc.PID {
	selections := make([]proc.PID, 0, ticks)
	for i := 0; i < ticks; i++ {
		if period > 0 {
			time.Sleep(period)
		}
		s.Tick(input, display)
		pid := s.CurrentPID()
		selections = append(selections, pid)

		if prog := s.Table().Get(pid).Program; prog != nil {
			prog()
		}
	}
	return selections
}
