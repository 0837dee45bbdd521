// Package klog wraps zap with the terse, imperative diagnostic style a
// UART boot log uses ("heapInit: Starting...", "ERROR: Failed to get
// g0/m0 addresses"): short messages, no trailing punctuation, one line per
// event, over a structured logger instead of raw bytes.
package klog

import (
	"os"

	"go.uber.org/zap"
)

// Logger is the kernel-wide diagnostic sink.
type Logger struct {
	z        *zap.SugaredLogger
	haltFunc func(code int)
}

// New builds zap's production logger (JSON lines on stderr). Tests construct their own
// via NewWithLogger to capture output and override haltFunc.
func New() *Logger {
	z, err := zap.NewProduction()
	if err != nil {
		// zap itself failed to build; fall back to a no-op core rather
		// than taking down the boot sequence over a logging failure.
		z = zap.NewNop()
	}
	return &Logger{z: z.Sugar(), haltFunc: os.Exit}
}

// NewWithLogger wraps an already-constructed zap logger, for tests that
// want to assert on captured log entries (e.g. via zaptest/observer).
func NewWithLogger(z *zap.Logger, haltFunc func(int)) *Logger {
	if haltFunc == nil {
		haltFunc = os.Exit
	}
	return &Logger{z: z.Sugar(), haltFunc: haltFunc}
}

func (l *Logger) Infof(format string, args ...any)  { l.z.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.z.Warnf(format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.z.Debugf(format, args...) }

// Fatal logs msg at Error level and halts the kernel: display a
// diagnostic, then stop the CPU. haltFunc stands in for the hardware halt
// so tests can observe it without exiting the test process.
func (l *Logger) Fatal(msg string, args ...any) {
	l.z.Errorf(msg, args...)
	l.haltFunc(1)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error { return l.z.Sync() }
