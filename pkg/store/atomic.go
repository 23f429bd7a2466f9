// Package store provides the atomic write-temp-then-rename persistence
// primitive shared by every piece of state shelf keeps on disk between
// runs: the selection box, jump database, bookmarks, and command
// history. A reader never observes a half-written file.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAtomic writes data to path by first writing to a sibling temp file
// in the same directory, then renaming it into place. The rename is
// atomic on a single filesystem, so a crash or concurrent read never
// observes a partially written file.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: write temp file %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: sync temp file %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: close temp file %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: chmod temp file %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: rename %s to %s: %w", tmpName, path, err)
	}
	return nil
}

// ReadAll reads the full contents of path, returning (nil, nil) rather
// than an error if the file does not yet exist — every piece of shelf's
// persisted state is optional on first run.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	return data, nil
}

// Exists reports whether path exists, swallowing any error other than
// "not exist" by returning false (callers that care about a real I/O
// error should use os.Stat directly).
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
