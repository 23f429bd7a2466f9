// Package tags implements the tag half of component F: a label applied
// to files by creating symlinks under a per-tag directory, per §3's Tag
// entity and the GLOSSARY's "Tag" definition.
package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tinyland/shelf/pkg/shelferr"
)

// Store roots every tag directory under Dir, one subdirectory per tag
// name, each holding symlinks to the tagged files.
type Store struct {
	Dir string
}

// Open ensures Dir exists and returns a Store rooted there.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, shelferr.Wrap(shelferr.KindPermission, "tag", dir, err)
	}
	return &Store{Dir: dir}, nil
}

// Add tags path with name, creating the tag directory on first use and
// symlinking path into it under its basename. Re-tagging the same path
// with the same tag is a no-op.
func (s *Store) Add(name, path string) error {
	tagDir := filepath.Join(s.Dir, name)
	if err := os.MkdirAll(tagDir, 0o755); err != nil {
		return shelferr.Wrap(shelferr.KindPermission, "tag", tagDir, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return shelferr.Wrap(shelferr.KindInternal, "tag", path, err)
	}
	link := filepath.Join(tagDir, filepath.Base(abs))

	if _, err := os.Lstat(link); err == nil {
		return nil // already tagged
	}
	if err := os.Symlink(abs, link); err != nil {
		return shelferr.Wrap(shelferr.KindInternal, "tag", link, err)
	}
	return nil
}

// Remove untags path from name by removing the corresponding symlink.
func (s *Store) Remove(name, path string) error {
	tagDir := filepath.Join(s.Dir, name)
	link := filepath.Join(tagDir, filepath.Base(path))
	if err := os.Remove(link); err != nil {
		if os.IsNotExist(err) {
			return shelferr.New(shelferr.KindNotFound, "tag", fmt.Sprintf("%q is not tagged %q", path, name))
		}
		return shelferr.Wrap(shelferr.KindPermission, "tag", link, err)
	}
	return nil
}

// Names returns every tag that currently has at least one tagged file,
// sorted alphabetically.
func (s *Store) Names() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, shelferr.Wrap(shelferr.KindPermission, "tag", s.Dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			if files, _ := os.ReadDir(filepath.Join(s.Dir, e.Name())); len(files) > 0 {
				names = append(names, e.Name())
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// Files returns the absolute paths of every file tagged with name,
// resolved through their symlinks.
func (s *Store) Files(name string) ([]string, error) {
	tagDir := filepath.Join(s.Dir, name)
	entries, err := os.ReadDir(tagDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, shelferr.Wrap(shelferr.KindPermission, "tag", tagDir, err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		link := filepath.Join(tagDir, e.Name())
		target, err := os.Readlink(link)
		if err != nil {
			continue
		}
		out = append(out, target)
	}
	return out, nil
}

// HasTag reports whether path (matched by basename) is tagged with name.
func (s *Store) HasTag(name, path string) bool {
	link := filepath.Join(s.Dir, name, filepath.Base(path))
	_, err := os.Lstat(link)
	return err == nil
}
