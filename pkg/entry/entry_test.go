package entry

import (
	"testing"

	"github.com/tinyland/shelf/pkg/color"
)

func TestClassifyDirectory(t *testing.T) {
	e := Classify("sub", Stat{}, KindDirectory, KindUnknown, false, false, color.DefaultPalette())
	if e.Color != color.SlotDir {
		t.Fatalf("expected SlotDir, got %v", e.Color)
	}
}

func TestClassifyBrokenSymlink(t *testing.T) {
	e := Classify("dangling", Stat{}, KindSymlink, KindUnknown, true, false, color.DefaultPalette())
	if e.Color != color.SlotOrphanLink {
		t.Fatalf("expected SlotOrphanLink, got %v", e.Color)
	}
}

func TestClassifyExecutable(t *testing.T) {
	st := Stat{Mode: modeUserX, Size: 100}
	e := Classify("run.sh", st, KindRegular, KindUnknown, false, false, color.DefaultPalette())
	if !e.Exec {
		t.Fatalf("expected Exec to be true")
	}
	if e.Color != color.SlotExec {
		t.Fatalf("expected SlotExec, got %v", e.Color)
	}
}

func TestClassifyEmptyRegular(t *testing.T) {
	e := Classify("empty.txt", Stat{Size: 0}, KindRegular, KindUnknown, false, false, color.DefaultPalette())
	if e.Color != color.SlotEmpty {
		t.Fatalf("expected SlotEmpty, got %v", e.Color)
	}
}

func TestClassifySetuidTakesPriorityOverExec(t *testing.T) {
	st := Stat{Mode: modeSetuid | modeUserX, Size: 10}
	e := Classify("su", st, KindRegular, KindUnknown, false, false, color.DefaultPalette())
	if e.Color != color.SlotSetuid {
		t.Fatalf("expected SlotSetuid to take priority, got %v", e.Color)
	}
}

func TestExtensionOf(t *testing.T) {
	cases := map[string]string{
		"archive.tar.gz": "gz",
		"README":         "",
		".bashrc":        "",
		"photo.JPG":      "jpg",
	}
	for name, want := range cases {
		if got := extensionOf(name); got != want {
			t.Fatalf("extensionOf(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestKindIsDirLike(t *testing.T) {
	if !KindDirectory.IsDirLike(KindUnknown) {
		t.Fatalf("expected a directory to be dir-like")
	}
	if !KindSymlink.IsDirLike(KindDirectory) {
		t.Fatalf("expected a symlink-to-directory to be dir-like")
	}
	if KindSymlink.IsDirLike(KindRegular) {
		t.Fatalf("expected a symlink-to-file to not be dir-like")
	}
}
