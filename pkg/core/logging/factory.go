// ============================================================================
// minipy - Python Subset Front End
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels with Claude
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	mdwlog "github.com/msto63/minipy/foundation/core/log"
	"github.com/msto63/minipy/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name of the logger
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (json, text or console)
	Format string

	// Output receives entries (default: os.Stderr)
	Output io.Writer

	// File additionally receives entries when set
	File string

	// RunID tags every entry; NewRunID is used when empty
	RunID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
		Output: os.Stderr,
	}
}

// NewRunID returns a fresh identifier for one invocation of the tool
func NewRunID() string {
	return uuid.NewString()
}

// NewLogger creates a logger. The returned closer flushes and closes the
// log file and must be called once logging is done.
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, io.Closer, error) {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger").
			WithDetail("level", cfg.Level)
	}
	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger").
			WithDetail("format", cfg.Format)
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		file, err := OpenFileWriter(FileWriterConfig{Path: cfg.File})
		if err != nil {
			return nil, nil, err
		}
		output = io.MultiWriter(output, file)
		closer = file
	}

	runID := cfg.RunID
	if runID == "" {
		runID = NewRunID()
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}).WithRequestID(runID)

	return logger, closer, nil
}

// FromConfig creates the logger described by the general section of cfg.
// Verbose lowers the level to debug.
func FromConfig(cfg *config.Config, verbose bool, output io.Writer) (*mdwlog.Logger, io.Closer, error) {
	lc := DefaultLoggerConfig(cfg.General.Name)
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	lc.File = cfg.General.LogFile
	if output != nil {
		lc.Output = output
	}
	if verbose {
		lc.Level = "debug"
	}
	return NewLogger(lc)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
