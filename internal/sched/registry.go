package sched

// Registry is the pure factory mapping a strategy tag to its Strategy
// implementation. All five variants are known at build time, so a plain
// map suffices; no virtual dispatch table is needed.
type Registry struct {
	strategies map[Kind]Strategy
}

// NewRegistry builds a registry sized for a table with numSlots slots,
// seeding the Random strategy's PRNG with seed so its sequence is
// reproducible in tests.
func NewRegistry(numSlots int, seed int64) *Registry {
	return &Registry{
		strategies: map[Kind]Strategy{
			Even:            evenStrategy{},
			Random:          newRandomStrategy(seed),
			RunToCompletion: runToCompletionStrategy{},
			RoundRobin:      &roundRobinStrategy{},
			InactiveAging:   newInactiveAgingStrategy(numSlots),
		},
	}
}

// Lookup returns kind's Strategy, falling back to Even for an unknown tag.
func (r *Registry) Lookup(kind Kind) Strategy {
	if s, ok := r.strategies[kind]; ok {
		return s
	}
	return r.strategies[Even]
}
