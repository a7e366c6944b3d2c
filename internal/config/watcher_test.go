package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.toml")
	if err := os.WriteFile(path, []byte("lines = 30\n"), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}

	reloaded := make(chan *Profile, 4)
	w, err := NewWatcher(path, func(p *Profile) { reloaded <- p })
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("lines = 50\n"), 0o644); err != nil {
		t.Fatalf("rewriting profile: %v", err)
	}

	select {
	case p := <-reloaded:
		if p.Lines != 50 {
			t.Errorf("reloaded lines = %d, want 50", p.Lines)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.toml")

	reloaded := make(chan *Profile, 4)
	w, err := NewWatcher(path, func(p *Profile) { reloaded <- p })
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("lines = 9\n"), 0o644); err != nil {
		t.Fatalf("writing sibling: %v", err)
	}

	select {
	case <-reloaded:
		t.Error("sibling write triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherKeepsOldProfileOnBadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.toml")

	reloaded := make(chan *Profile, 4)
	w, err := NewWatcher(path, func(p *Profile) { reloaded <- p })
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("lines = [broken\n"), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}

	select {
	case <-reloaded:
		t.Error("malformed profile triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "profile.toml"), func(*Profile) {})
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}

func TestWatcherPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.toml")

	w, err := NewWatcher(path, func(*Profile) {})
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if w.Path() != path {
		t.Errorf("Path() = %q, want %q", w.Path(), path)
	}
}
