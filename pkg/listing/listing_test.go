package listing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tinyland/shelf/pkg/color"
)

func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	must(os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bb"), 0o644))
	must(os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	must(os.WriteFile(filepath.Join(dir, ".hidden"), []byte(""), 0o644))
	return dir
}

func TestScanHidesDotfilesByDefault(t *testing.T) {
	dir := setupDir(t)
	entries, err := Scan(dir, Options{Palette: color.DefaultPalette()})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 visible entries, got %d: %+v", len(entries), entries)
	}
}

func TestScanShowHidden(t *testing.T) {
	dir := setupDir(t)
	entries, err := Scan(dir, Options{ShowHidden: true, Palette: color.DefaultPalette()})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries with show_hidden, got %d", len(entries))
	}
}

func TestScanFilterGlob(t *testing.T) {
	dir := setupDir(t)
	entries, err := Scan(dir, Options{
		Palette: color.DefaultPalette(),
		Filter:  FilterSpec{Kind: FilterGlob, Pattern: "*.txt"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 .txt entries, got %d", len(entries))
	}
}

func TestScanFilterFileType(t *testing.T) {
	dir := setupDir(t)
	entries, err := Scan(dir, Options{
		Palette: color.DefaultPalette(),
		Filter:  FilterSpec{Kind: FilterFileType, Pattern: "d"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "sub" {
		t.Fatalf("expected only 'sub', got %+v", entries)
	}
}

func TestScanUnreadableDirectory(t *testing.T) {
	_, err := Scan("/path/does/not/exist", Options{Palette: color.DefaultPalette()})
	if err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}

func TestRenderProducesDivider(t *testing.T) {
	dir := setupDir(t)
	entries, err := Scan(dir, Options{Palette: color.DefaultPalette()})
	if err != nil {
		t.Fatal(err)
	}
	Sort(entries, SortName, false, true, true)

	var buf strings.Builder
	Render(&buf, entries, RenderOptions{TermCols: 80, MaxNameLen: 20, Palette: color.DefaultPalette()})
	out := buf.String()
	if len(out) == 0 {
		t.Fatalf("expected non-empty render output")
	}
}
