package app

import (
	"fmt"
	"strings"

	"github.com/tinyland/shelf/pkg/dispatch"
	"github.com/tinyland/shelf/pkg/entry"
)

// computeStats tallies the per-kind counts the `stats` command and the
// prompt's directory-statistics escapes need (§4.9), from one Relist's
// entries.
func computeStats(entries []entry.FileEntry, showHidden bool) dispatch.Stats {
	var s dispatch.Stats
	for _, e := range entries {
		s.Total++
		if strings.HasPrefix(e.Name, ".") {
			s.Hidden++
		}
		switch {
		case e.Kind == entry.KindSymlink && e.LinkBroken:
			s.Broken++
		case e.Kind == entry.KindSymlink:
			s.Links++
		case e.Kind == entry.KindDirectory:
			s.Dirs++
		default:
			s.Files++
		}
	}
	return s
}

// formatProp renders one entry's stat(2) fields for the `p`/`prop`
// command, in the same spirit as `ls -l`'s fixed field order.
func formatProp(e entry.FileEntry) string {
	st := e.Stat
	return fmt.Sprintf("%s  %s  size=%d  links=%d  uid=%d  gid=%d  mtime=%s",
		e.Name, e.Kind.String(), st.Size, st.Nlink, st.UID, st.GID,
		st.Mtime.Format("2006-01-02 15:04:05"))
}
