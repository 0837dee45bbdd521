package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLaysOutEntryAddressAndZeroedContext(t *testing.T) {
	a := NewArena(2, 64)
	sp, checksum := a.Seed(0, 0x1234)

	require.Equal(t, 64-FrameBytes, sp)

	entryOffset := 64 - EntryAddressBytes
	assert.Equal(t, byte(0x12), a.ReadByte(0, entryOffset), "entry address high byte")
	assert.Equal(t, byte(0x34), a.ReadByte(0, entryOffset+1), "entry address low byte")

	for off := sp; off < entryOffset; off++ {
		assert.Zerof(t, a.ReadByte(0, off), "context byte at offset %d should be zeroed", off)
	}

	assert.Equal(t, a.Checksum(0, sp), checksum)
}

func TestSeedDoesNotTouchOtherSlots(t *testing.T) {
	a := NewArena(2, 64)
	a.Seed(1, 0xBEEF)
	for off := 0; off < 64; off++ {
		assert.Zerof(t, a.ReadByte(0, off), "slot 0 byte %d should be untouched by seeding slot 1", off)
	}
}

func TestBottomIsDeterministicPerSlot(t *testing.T) {
	a := NewArena(4, 32)
	for pid := 0; pid < 4; pid++ {
		assert.Equal(t, pid*32, a.Bottom(pid))
	}
}

func TestChecksumDetectsSingleByteCorruption(t *testing.T) {
	a := NewArena(1, 64)
	sp, checksum := a.Seed(0, 0x4242)
	require.Equal(t, checksum, a.Checksum(0, sp))

	// Flip one bit within the written region to simulate a stray write
	// past the end of a process's data, a stack overflow.
	corrupt := a.ReadByte(0, sp)
	a.WriteByte(0, sp, corrupt^0x01)

	assert.NotEqual(t, checksum, a.Checksum(0, sp), "checksum must change after corruption")
}

func TestChecksumStableAcrossRepeatedCalls(t *testing.T) {
	a := NewArena(1, 48)
	sp, want := a.Seed(0, 0x0102)
	for i := 0; i < 3; i++ {
		assert.Equal(t, want, a.Checksum(0, sp))
	}
}

func TestPerSlotReportsConfiguredSize(t *testing.T) {
	a := NewArena(3, 128)
	assert.Equal(t, 128, a.PerSlot())
}
