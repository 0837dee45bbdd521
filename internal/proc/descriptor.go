package proc

// Descriptor is a compact, loggable summary of one slot: PID, state and
// priority packed into a handful of bits via internal/bitfield, for trace
// logging that would otherwise be too noisy as one structured log field
// per slot per tick.
type Descriptor struct {
	PID      uint8 `bitfield:",4"`
	State    uint8 `bitfield:",2"`
	Priority uint8 `bitfield:",8"`
}

// Describe builds pid's Descriptor from its current slot.
func (t *Table) Describe(pid PID) Descriptor {
	slot := t.Get(pid)
	return Descriptor{
		PID:      uint8(pid),
		State:    uint8(slot.State),
		Priority: slot.Priority,
	}
}
