package color

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaletteLookup(t *testing.T) {
	p := DefaultPalette()
	if p.Lookup(SlotDir) == "" {
		t.Fatalf("expected a directory color")
	}
	if p.Lookup(Slot("nonexistent")) != p.Slots[SlotReg] {
		t.Fatalf("expected fallback to SlotReg for unknown slot")
	}
}

func TestLoadSchemeOverlay(t *testing.T) {
	dir := t.TempDir()
	content := "slots:\n  di: \"\\x1b[35m\"\nextensions:\n  log: \"\\x1b[90m\"\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadScheme(dir, "custom")
	if err != nil {
		t.Fatal(err)
	}
	if p.Lookup(SlotDir) != "\x1b[35m" {
		t.Fatalf("expected overridden dir color, got %q", p.Lookup(SlotDir))
	}
	if p.Lookup(SlotExec) == "" {
		t.Fatalf("expected default exec color to survive overlay")
	}
	if p.LookupExt("log") != "\x1b[90m" {
		t.Fatalf("expected overridden log extension color")
	}
}

func TestLoadSchemeMissingFileFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	p, err := LoadScheme(dir, "nope")
	if err != nil {
		t.Fatal(err)
	}
	if p.Lookup(SlotDir) != DefaultPalette().Lookup(SlotDir) {
		t.Fatalf("expected default palette when scheme file is missing")
	}
}
