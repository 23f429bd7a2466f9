package dispatch

import (
	"github.com/tinyland/shelf/pkg/bookmarks"
	"github.com/tinyland/shelf/pkg/config"
	"github.com/tinyland/shelf/pkg/history"
	"github.com/tinyland/shelf/pkg/listing"
	"github.com/tinyland/shelf/pkg/nav"
	"github.com/tinyland/shelf/pkg/selbox"
	"github.com/tinyland/shelf/pkg/tags"
)

// Runtime is the subset of component M's Ctx aggregate that handlers
// need: navigation state, the on-disk stores, the active listing
// options, and a place to record that the caller should quit. It is a
// plain struct rather than an interface because every handler needs the
// concrete subsystem APIs, not a narrowed view of them.
type Runtime struct {
	Cfg        *config.Config
	Workspaces *nav.Workspaces
	DirHist    *nav.DirHistory
	JumpDB     *nav.JumpDB
	Selection  *selbox.Box
	Bookmarks  *bookmarks.Store
	Tags       *tags.Store
	History    *history.History

	ListOpts listing.Options
	SortKey  listing.SortKey
	SortRev  bool

	Quit      bool
	CDPath    []string
	PinnedDir string

	Names func() []string // current listing's basenames, for ELN resolution

	// Stats is refreshed by the main loop after every relist (§4.1 step
	// 6), for the `stats` command and the prompt's DirStats.
	Stats Stats

	// PropLookup resolves an ELN or basename from the current listing to
	// a formatted stat(2) summary line, for `prop`/`p`. Populated by the
	// main loop alongside Names.
	PropLookup func(target string) (string, bool)
}

// Stats is the per-kind tally of the current listing, computed after
// every scan by the main loop.
type Stats struct {
	Files    int
	Dirs     int
	Links    int
	Broken   int
	Hidden   int
	Total    int
}

// String renders the tally for the `stats` command's output.
func (s Stats) String() string {
	return "files: " + itoaResult(s.Files) +
		"  dirs: " + itoaResult(s.Dirs) +
		"  links: " + itoaResult(s.Links) +
		"  broken: " + itoaResult(s.Broken) +
		"  hidden: " + itoaResult(s.Hidden) +
		"  total: " + itoaResult(s.Total) + "\n"
}

// CWD returns the current workspace's path.
func (rt *Runtime) CWD() string {
	_, w := rt.Workspaces.Current()
	return w.Path
}
