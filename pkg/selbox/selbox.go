// Package selbox implements component E: the selection box, an
// insertion-ordered set of absolute paths shared across sibling
// instances of the program via a per-user file.
package selbox

import (
	"strings"

	"github.com/tinyland/shelf/pkg/store"
)

// Box is the in-memory selection set. Reload replaces its contents from
// disk; every mutating method rewrites the file, per §4.4: "On every
// prompt entry, the file is reloaded... On every mutation, it is
// rewritten atomically."
type Box struct {
	path  string
	order []string
	set   map[string]struct{}
}

// Open loads the selection box from path, tolerating a missing file
// (nothing selected yet).
func Open(path string) (*Box, error) {
	b := &Box{path: path, set: make(map[string]struct{})}
	if err := b.Reload(); err != nil {
		return nil, err
	}
	return b, nil
}

// Reload re-reads the backing file, replacing the in-memory set. Called
// at the start of every prompt iteration so a sibling process's changes
// become visible.
func (b *Box) Reload() error {
	data, err := store.ReadAll(b.path)
	if err != nil {
		return err
	}
	b.order = b.order[:0]
	b.set = make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		b.insert(line)
	}
	return nil
}

// Add inserts paths into the set, deduplicating and preserving first-seen
// order, then persists. Already-selected paths are silently skipped.
func (b *Box) Add(paths ...string) error {
	changed := false
	for _, p := range paths {
		if _, ok := b.set[p]; ok {
			continue
		}
		b.insert(p)
		changed = true
	}
	if changed {
		return b.save()
	}
	return nil
}

// Remove deletes paths from the set and persists, for `desel`.
func (b *Box) Remove(paths ...string) error {
	changed := false
	for _, p := range paths {
		if _, ok := b.set[p]; !ok {
			continue
		}
		delete(b.set, p)
		for i, q := range b.order {
			if q == p {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
		changed = true
	}
	if changed {
		return b.save()
	}
	return nil
}

// Clear empties the set, for `desel *`.
func (b *Box) Clear() error {
	if len(b.order) == 0 {
		return nil
	}
	b.order = nil
	b.set = make(map[string]struct{})
	return b.save()
}

// Contains reports whether path is currently selected.
func (b *Box) Contains(path string) bool {
	_, ok := b.set[path]
	return ok
}

// List returns the selected paths in insertion order, for `sb`.
func (b *Box) List() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Len reports how many paths are currently selected.
func (b *Box) Len() int {
	return len(b.order)
}

func (b *Box) insert(path string) {
	b.set[path] = struct{}{}
	b.order = append(b.order, path)
}

func (b *Box) save() error {
	var sb strings.Builder
	for _, p := range b.order {
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	return store.WriteAtomic(b.path, []byte(sb.String()), 0o644)
}
