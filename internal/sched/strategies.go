package sched

import (
	"math/rand"

	"mazsched/internal/proc"
)

// evenStrategy guarantees uniform round visitation: starting just past the
// currently running slot, the first selectable slot wins.
type evenStrategy struct{}

func (evenStrategy) Select(t *proc.Table, current proc.PID) proc.PID {
	return evenNext(t, current)
}

func (evenStrategy) Reset() {}

// randomStrategy picks uniformly among selectable slots using a rejection-
// free scheme: compact the selectable pids into a stack-backed list, then
// index it. Tables of more than 16 slots spill that list to the heap. Its PRNG is seeded at construction so behavior is reproducible for
// testing under a fixed seed.
type randomStrategy struct {
	rng  *rand.Rand
	seed int64
}

func newRandomStrategy(seed int64) *randomStrategy {
	return &randomStrategy{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

func (r *randomStrategy) Select(t *proc.Table, current proc.PID) proc.PID {
	var buf [16]proc.PID
	candidates := buf[:0]
	for pid := proc.PID(0); pid < proc.PID(t.Len()); pid++ {
		if t.Selectable(pid) {
			candidates = append(candidates, pid)
		}
	}
	if len(candidates) == 0 {
		return 0
	}
	return candidates[r.rng.Intn(len(candidates))]
}

// Reset re-seeds the PRNG from the construction seed, so installing Random
// again after another strategy reproduces the same selection sequence.
func (r *randomStrategy) Reset() {
	r.rng = rand.New(rand.NewSource(r.seed))
}

// runToCompletionStrategy keeps the running slot as long as it remains
// selectable. Processes never signal their own completion in this
// revision, so in practice this strategy never advances once a process
// starts running unless something external (not modeled here) makes that
// slot non-selectable.
type runToCompletionStrategy struct{}

func (runToCompletionStrategy) Select(t *proc.Table, current proc.PID) proc.PID {
	if t.Selectable(current) {
		return current
	}
	return evenNext(t, current)
}

func (runToCompletionStrategy) Reset() {}

// roundRobinStrategy hands the running slot a quantum sized by its own
// priority (0 treated as 1) and only rotates once the quantum is spent.
// The first Select call after Reset grants the already-running process a
// fresh quantum rather than rotating past it immediately.
type roundRobinStrategy struct {
	initialized bool
	current     proc.PID
	remaining   uint8
}

func (r *roundRobinStrategy) Select(t *proc.Table, current proc.PID) proc.PID {
	switch {
	case !r.initialized:
		r.initialized = true
		r.current = current
		r.remaining = priorityOrOne(t, current)
	case r.remaining == 0 || !t.Selectable(r.current):
		next := evenNext(t, r.current)
		r.current = next
		r.remaining = priorityOrOne(t, next)
	}
	r.remaining--
	return r.current
}

func (r *roundRobinStrategy) Reset() {
	r.initialized = false
	r.current = 0
	r.remaining = 0
}

// inactiveAgingStrategy ages every selectable slot by its priority on every
// call, then hands the CPU to whichever slot has waited (and is favoured)
// the most, resetting that slot's age to zero. Ties go to the higher
// priority, then the smaller PID.
type inactiveAgingStrategy struct {
	age []int
}

func newInactiveAgingStrategy(numSlots int) *inactiveAgingStrategy {
	return &inactiveAgingStrategy{age: make([]int, numSlots)}
}

func (a *inactiveAgingStrategy) Select(t *proc.Table, current proc.PID) proc.PID {
	best := proc.PID(-1)
	var bestAge int
	var bestPriority uint8

	for pid := proc.PID(0); pid < proc.PID(t.Len()); pid++ {
		if !t.Selectable(pid) {
			continue
		}
		pr := t.Get(pid).Priority
		a.age[pid] += int(pr)

		switch {
		case best == -1:
			best, bestAge, bestPriority = pid, a.age[pid], pr
		case a.age[pid] > bestAge:
			best, bestAge, bestPriority = pid, a.age[pid], pr
		case a.age[pid] == bestAge && pr > bestPriority:
			best, bestAge, bestPriority = pid, a.age[pid], pr
		}
	}

	if best == -1 {
		return 0
	}
	a.age[best] = 0
	return best
}

func (a *inactiveAgingStrategy) Reset() {
	for i := range a.age {
		a.age[i] = 0
	}
}
