package listing

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tinyland/shelf/pkg/color"
	"github.com/tinyland/shelf/pkg/entry"
	"github.com/tinyland/shelf/pkg/shelferr"
	"github.com/tinyland/shelf/pkg/strutil"
)

// Options controls one Scan call: the subset of Config that the listing
// engine consults directly (§4.1).
type Options struct {
	ShowHidden   bool
	LightMode    bool
	FilesCounter bool
	MaxFiles     int
	Filter       FilterSpec
	Palette      *color.Palette
}

// Scan reads dir and returns a classified, filtered (but not yet sorted
// or column-packed) slice of entries, per §4.1 steps 1-2. An unreadable
// directory yields a shelferr.KindPermission or KindNotADirectory error,
// matching §4.1's "an unreadable directory produces ErrorKind::ReadDir".
func Scan(dir string, opts Options) ([]entry.FileEntry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		if os.IsPermission(err) {
			return nil, shelferr.Wrap(shelferr.KindPermission, "ls", dir, err)
		}
		return nil, shelferr.Wrap(shelferr.KindNotADirectory, "ls", dir, err)
	}

	filt, err := Compile(opts.Filter)
	if err != nil {
		return nil, shelferr.Wrap(shelferr.KindUsage, "ft", opts.Filter.Pattern, err)
	}

	var entries []entry.FileEntry
	for _, d := range children {
		name := d.Name()
		if name == "." || name == ".." {
			continue
		}
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if opts.MaxFiles > 0 && len(entries) >= opts.MaxFiles {
			break
		}

		e := scanOne(dir, d, opts)
		if !filt.Match(e) {
			continue
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// scanOne classifies a single directory child. In light mode it relies
// only on d's readdir type byte and never calls stat(2), so color, size
// and long-view attributes fall back to their deterministic defaults per
// §4.1 step 2. Outside light mode, failures to stat produce a
// KindUnknown entry rather than aborting the whole listing, per §4.1's
// "Failure semantics".
func scanOne(dir string, d os.DirEntry, opts Options) entry.FileEntry {
	name := d.Name()

	if opts.LightMode {
		kind := entry.KindFromDirEntry(d)
		e := entry.Classify(name, entry.Stat{}, kind, entry.KindUnknown, false, false, opts.Palette)
		e.DisplayLen = strutil.VisibleLen(name)
		e.DirCount = -1
		return e
	}

	full := filepath.Join(dir, name)

	info, err := os.Lstat(full)
	if err != nil {
		return entry.FileEntry{Name: name, Kind: entry.KindUnknown, DirCount: -1}
	}

	st, kind := entry.FromFileInfo(info)

	var linkTarget entry.Kind
	var linkBroken bool
	if kind == entry.KindSymlink {
		if targetInfo, terr := os.Stat(full); terr == nil {
			_, linkTarget = entry.FromFileInfo(targetInfo)
		} else {
			linkBroken = true
		}
	}

	e := entry.Classify(name, st, kind, linkTarget, linkBroken, false, opts.Palette)
	e.DisplayLen = strutil.VisibleLen(name)

	isDirLike := kind.IsDirLike(linkTarget)
	if isDirLike && opts.FilesCounter {
		e.DirCount = countChildren(full)
	}

	return e
}

func countChildren(dir string) int {
	f, err := os.Open(dir)
	if err != nil {
		return -1
	}
	defer f.Close()
	names, err := f.Readdirnames(-1)
	if err != nil {
		return -1
	}
	n := 0
	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		n++
	}
	return n
}
