// Package bookmarks implements the bookmark half of component F: a
// name-to-path map with an optional globally unique shortcut per entry.
package bookmarks

import (
	"fmt"
	"strings"

	"github.com/tinyland/shelf/pkg/shelferr"
	"github.com/tinyland/shelf/pkg/store"
)

// Bookmark is §3's Bookmark entity.
type Bookmark struct {
	Name     string
	Shortcut string // "" if none
	Path     string
}

// Store holds every bookmark, indexed by name and by shortcut so both
// lookups are O(1).
type Store struct {
	path      string
	byName    map[string]*Bookmark
	byCut     map[string]*Bookmark
	order     []string // names, in file order
}

// Open loads bookmarks from path, tolerating a missing file.
func Open(path string) (*Store, error) {
	s := &Store{path: path, byName: map[string]*Bookmark{}, byCut: map[string]*Bookmark{}}
	data, err := store.ReadAll(path)
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		bm, err := parseLine(line)
		if err != nil {
			continue
		}
		s.insert(bm)
	}
	return s, nil
}

// ValidShortcut reports whether cut is legal as a bookmark shortcut:
// non-empty and containing neither ']' nor ':', per §9's deferred
// invariant ("shortcuts are globally unique and do not contain ] or :").
func ValidShortcut(cut string) bool {
	return cut != "" && !strings.ContainsAny(cut, "]:")
}

// Add registers a new bookmark, rejecting a duplicate name, a duplicate
// shortcut, or an illegal shortcut.
func (s *Store) Add(name, shortcut, path string) error {
	if _, exists := s.byName[name]; exists {
		return shelferr.New(shelferr.KindUsage, "bm", fmt.Sprintf("bookmark %q already exists", name))
	}
	if shortcut != "" {
		if !ValidShortcut(shortcut) {
			return shelferr.New(shelferr.KindUsage, "bm", "shortcut must not contain ']' or ':'")
		}
		if _, exists := s.byCut[shortcut]; exists {
			return shelferr.New(shelferr.KindUsage, "bm", fmt.Sprintf("shortcut %q already in use", shortcut))
		}
	}
	s.insert(&Bookmark{Name: name, Shortcut: shortcut, Path: path})
	return s.save()
}

// Remove deletes a bookmark by name.
func (s *Store) Remove(name string) error {
	bm, ok := s.byName[name]
	if !ok {
		return shelferr.New(shelferr.KindNotFound, "bm", fmt.Sprintf("no such bookmark %q", name))
	}
	delete(s.byName, name)
	if bm.Shortcut != "" {
		delete(s.byCut, bm.Shortcut)
	}
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return s.save()
}

// Resolve looks up a bookmark by name or by shortcut.
func (s *Store) Resolve(nameOrShortcut string) (Bookmark, bool) {
	if bm, ok := s.byName[nameOrShortcut]; ok {
		return *bm, true
	}
	if bm, ok := s.byCut[nameOrShortcut]; ok {
		return *bm, true
	}
	return Bookmark{}, false
}

// List returns every bookmark in file order.
func (s *Store) List() []Bookmark {
	out := make([]Bookmark, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, *s.byName[n])
	}
	return out
}

func (s *Store) insert(bm *Bookmark) {
	s.byName[bm.Name] = bm
	if bm.Shortcut != "" {
		s.byCut[bm.Shortcut] = bm
	}
	s.order = append(s.order, bm.Name)
}

func (s *Store) save() error {
	var b strings.Builder
	for _, n := range s.order {
		bm := s.byName[n]
		fmt.Fprintf(&b, "[%s]%s:%s\n", bm.Shortcut, bm.Name, bm.Path)
	}
	return store.WriteAtomic(s.path, []byte(b.String()), 0o644)
}

// parseLine parses one `[shortcut]name:path` line, per §6.
func parseLine(line string) (*Bookmark, error) {
	if !strings.HasPrefix(line, "[") {
		return nil, fmt.Errorf("bookmarks: missing '[': %q", line)
	}
	close := strings.IndexByte(line, ']')
	if close < 0 {
		return nil, fmt.Errorf("bookmarks: unterminated '[': %q", line)
	}
	shortcut := line[1:close]
	rest := line[close+1:]
	sep := strings.IndexByte(rest, ':')
	if sep < 0 {
		return nil, fmt.Errorf("bookmarks: missing ':': %q", line)
	}
	return &Bookmark{Name: rest[:sep], Shortcut: shortcut, Path: rest[sep+1:]}, nil
}
