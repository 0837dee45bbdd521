package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mazsched/internal/hw"
	"mazsched/internal/klog"
	"mazsched/internal/proc"
)

func bootSimple(t *testing.T, numSlots int) *Scheduler {
	t.Helper()
	s := New(numSlots, 64, 1, testLogger())
	require.NoError(t, s.InitScheduler(noop, []AutostartEntry{{Name: "a", Program: noop}}))
	s.StartScheduler()
	return s
}

func TestTickMarksOutgoingReadyAndIncomingRunning(t *testing.T) {
	s := bootSimple(t, 2)
	require.Equal(t, proc.PID(0), s.CurrentPID())

	s.Tick(nil, nil)

	assert.Equal(t, proc.PID(1), s.CurrentPID())
	assert.Equal(t, proc.Ready, s.Table().Get(0).State)
	assert.Equal(t, proc.Running, s.Table().Get(1).State)
}

func TestTickRecomputesIncomingChecksum(t *testing.T) {
	s := bootSimple(t, 2)
	s.Tick(nil, nil)

	next := s.Table().Get(s.CurrentPID())
	want := s.Arena().Checksum(int(s.CurrentPID()), next.StackPointer)
	assert.Equal(t, want, next.Checksum)
}

func TestTickHaltsOnChecksumMismatch(t *testing.T) {
	halted := 0
	log := klog.NewWithLogger(zap.NewNop(), func(int) { halted++ })
	s := New(2, 64, 1, log)
	require.NoError(t, s.InitScheduler(noop, nil))
	s.StartScheduler()

	// Corrupt a byte within the running slot's saved stack region.
	slot := s.Table().Get(0)
	s.Arena().WriteByte(0, slot.StackPointer, s.Arena().ReadByte(0, slot.StackPointer)^0xFF)

	s.Tick(nil, nil)
	assert.Equal(t, 1, halted, "a corrupted checksum must halt the kernel exactly once")
}

func TestTickTaskManagerChordRendersOverlay(t *testing.T) {
	s := bootSimple(t, 2)

	input := &hw.SimulatedInput{}
	input.Press(hw.TaskManagerChord)
	display := &recordingDisplay{}

	s.Tick(input, display)

	require.Len(t, display.renders, 1)
	assert.Equal(t, uint8(0), input.Read(), "WaitForRelease must clear the held chord")
}

func TestTickWithoutChordDoesNotRenderOverlay(t *testing.T) {
	s := bootSimple(t, 2)

	input := &hw.SimulatedInput{}
	display := &recordingDisplay{}

	s.Tick(input, display)
	assert.Empty(t, display.renders)
}

func TestOverlayListsOnlyOccupiedSlots(t *testing.T) {
	s := bootSimple(t, 4) // slots 2 and 3 stay UNUSED
	lines := s.Overlay()

	// header + idle + autostart entry "a" = 3 lines.
	assert.Len(t, lines, 3)
}

type recordingDisplay struct {
	renders [][]string
}

func (d *recordingDisplay) Render(lines []string) {
	d.renders = append(d.renders, lines)
}
