// Package sched implements the pluggable scheduling strategies and the
// preemption core that dispatches through them.
package sched

import "mazsched/internal/proc"

// Kind names a selectable strategy implementation.
type Kind uint8

const (
	Even Kind = iota
	Random
	RunToCompletion
	RoundRobin
	InactiveAging
)

func (k Kind) String() string {
	switch k {
	case Even:
		return "EVEN"
	case Random:
		return "RANDOM"
	case RunToCompletion:
		return "RUN_TO_COMPLETION"
	case RoundRobin:
		return "ROUND_ROBIN"
	case InactiveAging:
		return "INACTIVE_AGING"
	default:
		return "EVEN" // unknown tag falls back to Even's name too
	}
}

// Strategy is a pluggable selection algorithm. Select must be deterministic
// given the table, current pid, and the strategy's private state (Random
// excepted, whose nondeterminism is its contract). Strategies must never
// call back into the scheduler, allocate on the hot path, or block.
type Strategy interface {
	Select(t *proc.Table, current proc.PID) proc.PID
	// Reset clears the strategy's private state. Called by
	// Scheduler.SetStrategy whenever this strategy is (re)installed as the
	// active one.
	Reset()
}

// evenNext scans cyclically from current+1 (mod N) for the first
// selectable slot. Shared by Even, RunToCompletion and RoundRobin's
// fallback path.
func evenNext(t *proc.Table, current proc.PID) proc.PID {
	n := proc.PID(t.Len())
	for i := proc.PID(1); i <= n; i++ {
		pid := (current + i) % n
		if t.Selectable(pid) {
			return pid
		}
	}
	// No selectable slot at all means the table has no READY slots,
	// including idle. exec() guarantees idle is always present and
	// READY/RUNNING, so this path is unreachable in a well-formed table.
	return 0
}

func priorityOrOne(t *proc.Table, pid proc.PID) uint8 {
	p := t.Get(pid).Priority
	if p == 0 {
		return 1
	}
	return p
}
