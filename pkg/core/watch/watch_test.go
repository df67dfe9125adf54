package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	mdwlog "github.com/msto63/minipy/foundation/core/log"
)

func newWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := New(Options{Debounce: 20 * time.Millisecond, Logger: mdwlog.Discard()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestWatcher_Matches(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	file := filepath.Join(other, "main.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	w := newWatcher(t)
	if err := w.Add(dir); err != nil {
		t.Fatalf("Add(dir) error = %v", err)
	}
	if err := w.Add(file); err != nil {
		t.Fatalf("Add(file) error = %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"source in dir", filepath.Join(dir, "a.py"), true},
		{"other extension in dir", filepath.Join(dir, "a.txt"), false},
		{"nested dir", filepath.Join(dir, "sub", "a.py"), false},
		{"watched file", file, true},
		{"sibling of watched file", filepath.Join(other, "b.py"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Matches(tt.path); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWatcher_AddMissing(t *testing.T) {
	w := newWatcher(t)

	err := w.Add(filepath.Join(t.TempDir(), "missing.py"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Add() error = %v, want code %v", err, mdwerror.CodeNotFound)
	}
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	w := newWatcher(t)
	if err := w.Add(dir); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, path string) error {
			changed <- path
			return nil
		})
	}()

	path := filepath.Join(dir, "main.py")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		if got != path {
			t.Errorf("changed = %q, want %q", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop")
	}
}

func TestDrain(t *testing.T) {
	pending := map[string]bool{"b": true, "a": true}

	got := drain(pending)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("drain() = %v", got)
	}
	if len(pending) != 0 {
		t.Error("drain() should clear the set")
	}
}
