package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteAtomicCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "selbox")

	if err := WriteAtomic(path, []byte("/a\n/b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := ReadAll(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "/a\n/b\n" {
		t.Fatalf("unexpected contents: %q", data)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Fatalf("leftover temp file: %s", e.Name())
		}
	}
}

func TestWriteAtomicOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jump.db")

	if err := WriteAtomic(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteAtomic(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, _ := ReadAll(path)
	if string(data) != "two" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}

func TestReadAllMissingFileReturnsNilNoError(t *testing.T) {
	dir := t.TempDir()
	data, err := ReadAll(filepath.Join(dir, "nope"))
	if err != nil {
		t.Fatal(err)
	}
	if data != nil {
		t.Fatalf("expected nil data for missing file, got %q", data)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookmarks")
	if Exists(path) {
		t.Fatalf("expected file to not exist yet")
	}
	WriteAtomic(path, []byte("x"), 0o644)
	if !Exists(path) {
		t.Fatalf("expected file to exist after write")
	}
}
