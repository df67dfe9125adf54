// ============================================================================
// minipy - Python Subset Front End
// ============================================================================
//
// Package:     logging
// Description: FileWriter batches log entries and appends them to a file
// Author:      Mike Stoffels with Claude
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package logging

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"
	"time"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
)

// FileWriter implements io.Writer and appends buffered entries to a log file
type FileWriter struct {
	// Configuration
	path        string
	flushPeriod time.Duration

	// Output
	file   *os.File
	buffer *bufio.Writer
	mu     sync.Mutex

	// Worker
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
	closed    bool
	closeErr  error
}

// FileWriterConfig holds configuration for FileWriter
type FileWriterConfig struct {
	Path        string        // Log file, created with parent directories
	BufferSize  int           // Bytes buffered before a write (default: 4096)
	FlushPeriod time.Duration // How often to flush (default: 1s)
}

// OpenFileWriter opens the log file for appending and starts the flush worker
func OpenFileWriter(cfg FileWriterConfig) (*FileWriter, error) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
	if cfg.FlushPeriod <= 0 {
		cfg.FlushPeriod = time.Second
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, mdwerror.Wrap(err, "failed to create log directory").
			WithCode(mdwerror.CodeIO).
			WithOperation("logging.OpenFileWriter").
			WithDetail("path", cfg.Path)
	}
	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to open log file").
			WithCode(mdwerror.CodeIO).
			WithOperation("logging.OpenFileWriter").
			WithDetail("path", cfg.Path)
	}

	w := &FileWriter{
		path:        cfg.Path,
		flushPeriod: cfg.FlushPeriod,
		file:        file,
		buffer:      bufio.NewWriterSize(file, cfg.BufferSize),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}

	go w.flushWorker()

	return w, nil
}

// Write implements io.Writer
func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, os.ErrClosed
	}
	return w.buffer.Write(p)
}

// Flush writes buffered entries to the file
func (w *FileWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	return w.buffer.Flush()
}

// Path returns the log file path
func (w *FileWriter) Path() string {
	return w.path
}

// flushWorker periodically flushes the buffer
func (w *FileWriter) flushWorker() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.flushPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			_ = w.Flush()
		}
	}
}

// Close stops the worker, flushes remaining entries and closes the file
func (w *FileWriter) Close() error {
	w.closeOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh

		w.mu.Lock()
		defer w.mu.Unlock()

		w.closed = true
		if err := w.buffer.Flush(); err != nil {
			w.closeErr = err
		}
		if err := w.file.Close(); err != nil && w.closeErr == nil {
			w.closeErr = err
		}
	})
	return w.closeErr
}
