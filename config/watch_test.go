package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherCloseWithBackloggedEvents(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// Overflow the Events buffer without draining it, so the run goroutine
	// is likely mid-send when Close lands.
	for i := 0; i < 40; i++ {
		path := filepath.Join(dir, fmt.Sprintf("s%d.yaml", i))
		if err := os.WriteFile(path, []byte("gravity: 1\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	time.Sleep(200 * time.Millisecond)

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// run owns both channels and must close them after Close, so draining
	// terminates instead of blocking or panicking.
	for range w.Events {
	}
	for range w.Errors {
	}

	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestWatcherIgnoresNonSettingsFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected event for %s", name)
	case <-time.After(200 * time.Millisecond):
	}
}
