package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFlagsDirtyOnCreate(t *testing.T) {
	dir := t.TempDir()
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := w.Watch(dir); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if w.Dirty() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected watcher to flag dirty after file creation")
}

func TestWatcherConsumeDirtyClearsFlag(t *testing.T) {
	dir := t.TempDir()
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := w.Watch(dir); err != nil {
		t.Fatal(err)
	}
	w.dirty.Store(true)
	if !w.ConsumeDirty() {
		t.Fatalf("expected ConsumeDirty to report true once")
	}
	if w.ConsumeDirty() {
		t.Fatalf("expected flag cleared after first consume")
	}
}

func TestPollWatcherDetectsChange(t *testing.T) {
	dir := t.TempDir()
	pw, err := NewPollWatcher(dir, 0)
	if err != nil {
		t.Fatal(err)
	}
	if pw.ConsumeDirty() {
		t.Fatalf("expected clean baseline")
	}

	time.Sleep(10 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !pw.ConsumeDirty() {
		t.Fatalf("expected dirty after mtime and count both changed")
	}
	if pw.ConsumeDirty() {
		t.Fatalf("expected clean again after rebase")
	}
}

func TestPollStatCountsChildren(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := PollStat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if st.Count != 1 {
		t.Fatalf("expected 1 child, got %d", st.Count)
	}
}
