package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mazsched/internal/klog"
	"mazsched/internal/proc"
)

func testLogger() *klog.Logger {
	return klog.NewWithLogger(zap.NewNop(), func(int) {})
}

func noop() {}

func TestExecFillsSlotsInAscendingOrder(t *testing.T) {
	s := New(4, 64, 1, testLogger())

	pid0, err := s.Exec(noop, 1, "a")
	require.NoError(t, err)
	assert.Equal(t, proc.PID(0), pid0)

	pid1, err := s.Exec(noop, 1, "b")
	require.NoError(t, err)
	assert.Equal(t, proc.PID(1), pid1)

	slot := s.Table().Get(pid1)
	assert.Equal(t, proc.Ready, slot.State)
	assert.Equal(t, "b", slot.Name)
}

func TestExecRejectsNilProgram(t *testing.T) {
	s := New(2, 64, 1, testLogger())
	pid, err := s.Exec(nil, 1, "nope")
	assert.ErrorIs(t, err, ErrNilProgram)
	assert.Equal(t, proc.Invalid, pid)
}

func TestExecFailsWhenTableIsFull(t *testing.T) {
	s := New(2, 64, 1, testLogger())
	_, err := s.Exec(noop, 1, "a")
	require.NoError(t, err)
	_, err = s.Exec(noop, 1, "b")
	require.NoError(t, err)

	pid, err := s.Exec(noop, 1, "c")
	assert.ErrorIs(t, err, ErrSlotExhausted)
	assert.Equal(t, proc.Invalid, pid)
}

func TestExecSeedsAMatchingChecksum(t *testing.T) {
	s := New(2, 64, 1, testLogger())
	pid, err := s.Exec(noop, 1, "a")
	require.NoError(t, err)

	slot := s.Table().Get(pid)
	assert.Equal(t, s.Arena().Checksum(int(pid), slot.StackPointer), slot.Checksum)
}

func TestSetStrategyResetsStrategyState(t *testing.T) {
	s := New(3, 64, 1, testLogger())
	s.SetStrategy(RoundRobin)
	assert.Equal(t, RoundRobin, s.GetStrategy())

	rr := s.registry.Lookup(RoundRobin).(*roundRobinStrategy)
	rr.initialized = true
	rr.remaining = 9

	s.SetStrategy(RoundRobin)
	assert.False(t, rr.initialized, "SetStrategy must reset the strategy even when reselecting the same kind")
}

func TestCriticalSectionNestingThroughScheduler(t *testing.T) {
	s := New(2, 64, 1, testLogger())
	assert.EqualValues(t, 0, s.CriticalDepth())

	s.EnterCritical()
	s.EnterCritical()
	assert.EqualValues(t, 2, s.CriticalDepth())

	s.LeaveCritical()
	assert.EqualValues(t, 1, s.CriticalDepth())
	s.LeaveCritical()
	assert.EqualValues(t, 0, s.CriticalDepth())
}
