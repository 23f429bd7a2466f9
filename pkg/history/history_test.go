package history

import (
	"path/filepath"
	"testing"
)

func TestAddAndLines(t *testing.T) {
	h, err := Open(filepath.Join(t.TempDir(), "history"), 0)
	if err != nil {
		t.Fatal(err)
	}
	h.Add("ls -l")
	h.Add("cd sub")
	if got := h.Lines(); len(got) != 2 || got[0] != "ls -l" {
		t.Fatalf("got %v", got)
	}
}

func TestAddIgnoresConsecutiveDuplicate(t *testing.T) {
	h, _ := Open(filepath.Join(t.TempDir(), "history"), 0)
	h.Add("ls")
	h.Add("ls")
	if len(h.Lines()) != 1 {
		t.Fatalf("expected dedup of consecutive identical lines, got %v", h.Lines())
	}
}

func TestAddTrimsToMaxSize(t *testing.T) {
	h, _ := Open(filepath.Join(t.TempDir(), "history"), 2)
	h.Add("a")
	h.Add("b")
	h.Add("c")
	got := h.Lines()
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("got %v", got)
	}
}

func TestRecallFindsNewestPrefixMatch(t *testing.T) {
	h, _ := Open(filepath.Join(t.TempDir(), "history"), 0)
	h.Add("ls -l")
	h.Add("cd sub")
	h.Add("ls -a")
	got, ok := h.Recall("ls")
	if !ok || got != "ls -a" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestRecallNoMatch(t *testing.T) {
	h, _ := Open(filepath.Join(t.TempDir(), "history"), 0)
	h.Add("cd sub")
	if _, ok := h.Recall("ls"); ok {
		t.Fatalf("expected no match")
	}
}

func TestSaveAndReopenRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	h, _ := Open(path, 0)
	h.Add("ls -l")
	h.Add("cd sub")
	if err := h.Save(); err != nil {
		t.Fatal(err)
	}

	h2, err := Open(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := h2.Lines(); len(got) != 2 || got[1] != "cd sub" {
		t.Fatalf("got %v", got)
	}
}

func TestIsRecall(t *testing.T) {
	pattern, ok := IsRecall("!ls")
	if !ok || pattern != "ls" {
		t.Fatalf("got %q ok=%v", pattern, ok)
	}
	if _, ok := IsRecall("ls"); ok {
		t.Fatalf("expected non-recall line to fail")
	}
	if _, ok := IsRecall("!"); ok {
		t.Fatalf("expected bare ! to fail (empty pattern)")
	}
}
