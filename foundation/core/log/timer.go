// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration when stopped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14

package log

import (
	"time"
)

// Timer measures a single operation. Only the first Stop or
// StopWithError logs.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
	fields    Fields
	stopped   bool
}

// NewTimer starts a timer that reports to logger at debug level
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		level:     LevelDebug,
		fields:    Fields{"operation": operation},
	}
}

// WithLevel sets the level used when the timer stops successfully
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField attaches a field to the final log entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs "<operation> completed" and returns the elapsed time.
// A stopped timer returns 0.
func (t *Timer) Stop() time.Duration {
	elapsed, ok := t.finish()
	if ok && t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, []Fields{t.fields})
	}
	return elapsed
}

// StopWithError logs "<operation> failed" with err at error level
func (t *Timer) StopWithError(err error) time.Duration {
	elapsed, ok := t.finish()
	if ok && t.logger != nil {
		t.fields["success"] = false
		t.logger.log(LevelError, t.operation+" failed", err, []Fields{t.fields})
	}
	return elapsed
}

func (t *Timer) finish() (time.Duration, bool) {
	if t.stopped {
		return 0, false
	}
	t.stopped = true

	elapsed := t.Elapsed()
	t.fields["duration_ms"] = float64(elapsed.Microseconds()) / 1000
	return elapsed, true
}
