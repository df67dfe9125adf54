// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with contextual fields, multiple output formats and
//              integration with the error system. Loggers are immutable;
//              derived loggers share the sink of their parent.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-14 v0.2.0: Immutable loggers over a shared sink, request id kept
//                      as the single context id

package log

import (
	"io"
	"maps"
	"os"
	"sync"
	"sync/atomic"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
)

// sink serializes writes of all loggers derived from one another
type sink struct {
	mu        sync.Mutex
	output    io.Writer
	formatter Formatter
}

func (s *sink) write(entry *Entry) {
	formatted, err := s.formatter.Format(entry)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.output.Write(formatted)
}

// Logger writes structured entries at or above its level
type Logger struct {
	level     Level
	name      string
	requestID string
	fields    Fields // never modified once the logger exists
	sink      *sink
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a JSON logger on stdout at the default level
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel()})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stdout
	}

	return &Logger{
		level: config.Level,
		name:  config.Name,
		sink:  &sink{output: output, formatter: NewFormatter(config.Format)},
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelFatal + 1, Output: io.Discard})
}

func (l *Logger) derive(change func(*Logger)) *Logger {
	clone := *l
	change(&clone)
	return &clone
}

// WithLevel returns a copy with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

// WithFormat returns a copy with the given format on the same output
func (l *Logger) WithFormat(format Format) *Logger {
	return l.derive(func(c *Logger) {
		c.sink = &sink{output: l.sink.output, formatter: NewFormatter(format)}
	})
}

// WithOutput returns a copy writing to output in the same format
func (l *Logger) WithOutput(output io.Writer) *Logger {
	return l.derive(func(c *Logger) {
		c.sink = &sink{output: output, formatter: l.sink.formatter}
	})
}

// WithName returns a copy with the given logger name
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithField returns a copy that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a copy that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) { c.fields = l.fields.Merge(fields) })
}

// WithRequestID returns a copy tagged with requestID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.derive(func(c *Logger) { c.requestID = requestID })
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields)
}

// LogError logs err at a level derived from its severity: low is info,
// medium is warn, anything higher is error
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	severity := mdwerror.GetSeverity(err)
	level := LevelError
	switch severity {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}

	l.log(level, err.Error(), err, []Fields{{
		"error_code":     mdwerror.GetCode(err).String(),
		"error_severity": severity.String(),
	}})
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.Enabled(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.level
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) log(level Level, message string, err error, fields []Fields) {
	if !level.Enabled(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.RequestID = l.requestID
	entry.Error = err

	maps.Copy(entry.Fields, l.fields)
	for _, set := range fields {
		maps.Copy(entry.Fields, set)
	}

	l.sink.write(entry)
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger.Load()
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger.Store(logger)
}
