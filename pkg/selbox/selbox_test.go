package selbox

import (
	"path/filepath"
	"testing"
)

func TestAddDedupAndOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selbox")
	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := b.Add("/a", "/b", "/a"); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 entries after dedup, got %d", b.Len())
	}
	if got := b.List(); got[0] != "/a" || got[1] != "/b" {
		t.Fatalf("expected insertion order preserved, got %v", got)
	}
}

func TestRemoveAndClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selbox")
	b, _ := Open(path)
	b.Add("/a", "/b", "/c")

	if err := b.Remove("/b"); err != nil {
		t.Fatal(err)
	}
	if b.Contains("/b") {
		t.Fatalf("expected /b removed")
	}
	if got := b.List(); len(got) != 2 {
		t.Fatalf("expected 2 remaining entries, got %v", got)
	}

	if err := b.Clear(); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Fatalf("expected empty set after Clear")
	}
}

func TestReloadPicksUpSiblingChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selbox")
	a, _ := Open(path)
	a.Add("/a")

	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Contains("/a") {
		t.Fatalf("expected a sibling Box to see /a via Open")
	}

	a.Add("/b")
	if err := b.Reload(); err != nil {
		t.Fatal(err)
	}
	if !b.Contains("/b") {
		t.Fatalf("expected Reload to pick up /b written by the sibling")
	}
}

func TestRoundTripSetEquality(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selbox")
	a, _ := Open(path)
	a.Add("/z", "/a", "/m")

	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"/z": true, "/a": true, "/m": true}
	for _, p := range b.List() {
		if !want[p] {
			t.Fatalf("unexpected path in reloaded set: %q", p)
		}
		delete(want, p)
	}
	if len(want) != 0 {
		t.Fatalf("missing paths after round trip: %v", want)
	}
}
