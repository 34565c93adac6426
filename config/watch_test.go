package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsControls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rig.yaml")
	if err := os.WriteFile(path, []byte("controls:\n  move_speed: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(chan ControlsConfig, 8)
	w, err := NewWatcher(path, func(c ControlsConfig) { got <- c })
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	// Invalid controls are logged and skipped.
	if err := os.WriteFile(path, []byte("controls:\n  sprint_multiplier: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case c := <-got:
		t.Fatalf("callback ran for invalid file: %+v", c)
	case <-time.After(4 * reloadDelay):
	}

	if err := os.WriteFile(path, []byte("controls:\n  move_speed: 25\n  look_button: left\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case c := <-got:
		if c.MoveSpeed != 25 {
			t.Errorf("move speed = %v, want 25", c.MoveSpeed)
		}
		if c.LookButton != "left" {
			t.Errorf("look button = %q, want left", c.LookButton)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after rewriting the file")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rig.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(chan ControlsConfig, 1)
	w, err := NewWatcher(path, func(c ControlsConfig) { got <- c })
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-got:
		t.Fatal("callback ran for an unrelated file")
	case <-time.After(4 * reloadDelay):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rig.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}
