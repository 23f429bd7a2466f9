// Package listing implements component C: reading a directory into a
// sorted, filtered slice of entry.FileEntry, and rendering that slice to
// stdout in columns, with pager support for output taller than the
// terminal.
package listing

import (
	"sort"
	"strings"

	"github.com/tinyland/shelf/pkg/entry"
	"github.com/tinyland/shelf/pkg/strutil"
)

// SortKey names one of the sort orders §4.1 step 3 lists.
type SortKey string

const (
	SortNone      SortKey = "none"
	SortName      SortKey = "name"
	SortSize      SortKey = "size"
	SortBlocks    SortKey = "blocks"
	SortAtime     SortKey = "atime"
	SortBtime     SortKey = "btime"
	SortCtime     SortKey = "ctime"
	SortMtime     SortKey = "mtime"
	SortVersion   SortKey = "version"
	SortExtension SortKey = "extension"
	SortInode     SortKey = "inode"
	SortOwner     SortKey = "owner"
	SortGroup     SortKey = "group"
	SortLinks     SortKey = "links"
	SortType      SortKey = "type"
)

// Sort orders entries in place per §4.1 step 3: a stable sort by key,
// then (if dirsFirst) a stable partition of directory-like entries ahead
// of the rest, then a reversal if reverse is set. Name-based keys honor
// caseSens for case-sensitive comparison.
func Sort(entries []entry.FileEntry, key SortKey, reverse bool, dirsFirst bool, caseSens bool) {
	if key != SortNone {
		less := lessFunc(key, caseSens)
		sort.SliceStable(entries, func(i, j int) bool {
			return less(entries[i], entries[j])
		})
	}

	if dirsFirst {
		sort.SliceStable(entries, func(i, j int) bool {
			di := entries[i].Kind.IsDirLike(entries[i].LinkTargetKind)
			dj := entries[j].Kind.IsDirLike(entries[j].LinkTargetKind)
			return di && !dj
		})
	}

	if reverse {
		reverseInPlace(entries)
	}
}

func reverseInPlace(entries []entry.FileEntry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}

func lessFunc(key SortKey, caseSens bool) func(a, b entry.FileEntry) bool {
	name := func(e entry.FileEntry) string {
		if caseSens {
			return e.Name
		}
		return strings.ToLower(e.Name)
	}

	switch key {
	case SortName:
		return func(a, b entry.FileEntry) bool { return name(a) < name(b) }
	case SortSize:
		return func(a, b entry.FileEntry) bool { return a.Stat.Size < b.Stat.Size }
	case SortBlocks:
		// Blocks are not separately tracked; size is a monotonically
		// equivalent proxy on every filesystem this program targets.
		return func(a, b entry.FileEntry) bool { return a.Stat.Size < b.Stat.Size }
	case SortAtime:
		return func(a, b entry.FileEntry) bool { return a.Stat.Atime.Before(b.Stat.Atime) }
	case SortBtime:
		return func(a, b entry.FileEntry) bool { return a.Stat.Btime.Before(b.Stat.Btime) }
	case SortCtime:
		return func(a, b entry.FileEntry) bool { return a.Stat.Ctime.Before(b.Stat.Ctime) }
	case SortMtime:
		return func(a, b entry.FileEntry) bool { return a.Stat.Mtime.Before(b.Stat.Mtime) }
	case SortVersion:
		return func(a, b entry.FileEntry) bool { return strutil.NaturalCompare(name(a), name(b)) < 0 }
	case SortExtension:
		return func(a, b entry.FileEntry) bool { return extOf(name(a)) < extOf(name(b)) }
	case SortInode:
		return func(a, b entry.FileEntry) bool { return a.Stat.Inode < b.Stat.Inode }
	case SortOwner:
		return func(a, b entry.FileEntry) bool { return a.Stat.UID < b.Stat.UID }
	case SortGroup:
		return func(a, b entry.FileEntry) bool { return a.Stat.GID < b.Stat.GID }
	case SortLinks:
		return func(a, b entry.FileEntry) bool { return a.Stat.Nlink < b.Stat.Nlink }
	case SortType:
		return func(a, b entry.FileEntry) bool { return a.Kind < b.Kind }
	default:
		return func(a, b entry.FileEntry) bool { return false }
	}
}

func extOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}
