// Package programs supplies the small set of demo program entry points the
// CLI harness and tests autostart. A program is a zero-argument function
// that, on real hardware, never returns; the simulated CPU (internal/sched
// Run) calls it once per scheduling quantum instead, so these do one unit
// of work and return rather than looping forever.
package programs

import "sync/atomic"

// Idle is PID 0's program. Real hardware would spin here forever between
// interrupts; the simulation's equivalent is simply doing nothing.
func Idle() {}

// Counter is a program that increments an internal counter by one
// each time it runs, and exposes the running total via Value. Useful for
// asserting how many quanta a strategy actually granted a process.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a fresh Counter.
func NewCounter() *Counter { return &Counter{} }

// Run is the program entry point: bump the counter once.
func (c *Counter) Run() { c.n.Add(1) }

// Value returns the number of times Run has executed so far.
func (c *Counter) Value() int64 { return c.n.Load() }
