// ============================================================================
// minipy - Python Subset Front End
// ============================================================================
//
// Package:     watch
// Description: Debounced file system watcher used by the watch command
// Author:      Mike Stoffels with Claude
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package watch reports changed source files after a quiet period.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	mdwlog "github.com/msto63/minipy/foundation/core/log"
)

// DefaultExtension selects files inside watched directories
const DefaultExtension = ".py"

// Handler is called with every changed file once changes have settled
type Handler func(ctx context.Context, path string) error

// Options configures a Watcher
type Options struct {
	// Debounce is the quiet period before changes are reported (default: 100ms)
	Debounce time.Duration

	// Extension selects files in watched directories (default: .py)
	Extension string

	// Logger (optional, defaults to default logger)
	Logger *mdwlog.Logger
}

// Watcher watches files and directories for source changes
type Watcher struct {
	fs        *fsnotify.Watcher
	debounce  time.Duration
	extension string
	logger    *mdwlog.Logger

	mu    sync.RWMutex
	files map[string]bool
	dirs  map[string]bool
}

// New creates a watcher
func New(opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = 100 * time.Millisecond
	}
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeIO).
			WithOperation("watch.New")
	}

	return &Watcher{
		fs:        fs,
		debounce:  opts.Debounce,
		extension: opts.Extension,
		logger:    opts.Logger.WithField("component", "watch"),
		files:     make(map[string]bool),
		dirs:      make(map[string]bool),
	}, nil
}

// Add watches path. A file is watched through its directory so that
// editors replacing the file are still noticed.
func (w *Watcher) Add(path string) error {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		return mdwerror.Wrap(err, "cannot watch "+path).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("watch.Add").
			WithDetail("path", path)
	}

	dir := path
	if !info.IsDir() {
		dir = filepath.Dir(path)
	}
	if err := w.fs.Add(dir); err != nil {
		return mdwerror.Wrap(err, "cannot watch "+dir).
			WithCode(mdwerror.CodeIO).
			WithOperation("watch.Add").
			WithDetail("path", dir)
	}

	w.mu.Lock()
	if info.IsDir() {
		w.dirs[path] = true
	} else {
		w.files[path] = true
	}
	w.mu.Unlock()

	w.logger.Debug("watching", mdwlog.Field("path", path))
	return nil
}

// Matches reports whether a change of name should be reported
func (w *Watcher) Matches(name string) bool {
	name = filepath.Clean(name)

	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.files[name] {
		return true
	}
	return w.dirs[filepath.Dir(name)] && filepath.Ext(name) == w.extension
}

// Run delivers settled changes to handler until ctx is done. Handler
// failures are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context, handler Handler) error {
	pending := make(map[string]bool)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 || !w.Matches(ev.Name) {
				continue
			}
			w.logger.Trace("change", mdwlog.Fields{"path": ev.Name, "op": ev.Op.String()})
			pending[filepath.Clean(ev.Name)] = true
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnWithErr("watch error", err)

		case <-timer.C:
			for _, path := range drain(pending) {
				if err := handler(ctx, path); err != nil {
					w.logger.WarnWithErr("handler failed", err, mdwlog.Field("path", path))
				}
			}
		}
	}
}

// drain returns the pending paths in order and clears the set
func drain(pending map[string]bool) []string {
	paths := make([]string, 0, len(pending))
	for path := range pending {
		paths = append(paths, path)
		delete(pending, path)
	}
	sort.Strings(paths)
	return paths
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.fs.Close()
}
