// Package hw models the external hardware collaborators the scheduler core
// treats as out of scope: the interrupt controller, the input device, and
// the task-manager display. Real firmware would back these with MMIO
// register drivers talking directly to a UART or timer-compare register; this
// module backs them with plain-Go simulations so the scheduler core can run
// and be tested as an ordinary process.
package hw

import "sync"

// TaskManagerChord is the input bitmask that opens the task-manager overlay.
// Hardware-specific; treated here as a configuration constant rather than a
// runtime setting, since real firmware would fix it at build time too.
const TaskManagerChord = 0b00001000 | 0b00000001

// InterruptController implements critical.Interrupts plus the two extra
// bits the preemption core needs: whether the scheduler timer is currently
// masked, and a way to tell ticks apart from masked ticks in tests.
type InterruptController struct {
	mu            sync.Mutex
	globalEnabled bool
	schedulerMask bool // true = scheduler timer interrupt source is masked
}

// NewInterruptController returns a controller with interrupts globally
// enabled and the scheduler timer unmasked, matching post-boot hardware
// state.
func NewInterruptController() *InterruptController {
	return &InterruptController{globalEnabled: true, schedulerMask: false}
}

func (c *InterruptController) GlobalEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.globalEnabled
}

func (c *InterruptController) SetGlobalEnabled(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.globalEnabled = v
}

func (c *InterruptController) MaskScheduler() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schedulerMask = true
}

func (c *InterruptController) UnmaskScheduler() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schedulerMask = false
}

// SchedulerMasked reports whether the scheduler timer interrupt source is
// currently masked. Preemption is possible only when this is false AND
// GlobalEnabled is true.
func (c *InterruptController) SchedulerMasked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.schedulerMask
}

// Preemptible reports whether a tick delivered right now would actually run
// the preemption core, at the one point where it may safely suspend.
func (c *InterruptController) Preemptible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.globalEnabled && !c.schedulerMask
}

// InputDevice is the button/chord reader the preemption core polls during
// step 7 of the ISR sequence.
type InputDevice interface {
	// Read returns the currently held chord as a bitmask.
	Read() uint8
	// WaitForRelease blocks until the chord is released (in real hardware;
	// the simulation returns at once after clearing the held chord).
	WaitForRelease()
}

// SimulatedInput is a test-and-harness-friendly InputDevice: the chord is
// just a field the caller pokes directly.
type SimulatedInput struct {
	mu    sync.Mutex
	chord uint8
}

func (s *SimulatedInput) Read() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chord
}

func (s *SimulatedInput) WaitForRelease() {
	s.mu.Lock()
	s.chord = 0
	s.mu.Unlock()
}

// Press sets the held chord, for tests and the CLI harness.
func (s *SimulatedInput) Press(chord uint8) {
	s.mu.Lock()
	s.chord = chord
	s.mu.Unlock()
}

// Display is the task-manager overlay surface. Rendering is format-only in
// this module; there is no physical framebuffer to drive.
type Display interface {
	Render(lines []string)
}
