// Package app implements component M: startup order, the per-prompt
// refresh cycle, and shutdown persistence. It owns the Ctx aggregate
// that every other component's state hangs off of, replacing the
// source's pervasive globals with one value threaded through the loop
// (§9 "Re-architecture guidance").
package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tinyland/shelf/pkg/bookmarks"
	"github.com/tinyland/shelf/pkg/color"
	"github.com/tinyland/shelf/pkg/config"
	"github.com/tinyland/shelf/pkg/dispatch"
	"github.com/tinyland/shelf/pkg/entry"
	"github.com/tinyland/shelf/pkg/expand"
	"github.com/tinyland/shelf/pkg/history"
	"github.com/tinyland/shelf/pkg/listing"
	"github.com/tinyland/shelf/pkg/nav"
	"github.com/tinyland/shelf/pkg/selbox"
	"github.com/tinyland/shelf/pkg/tags"
	"github.com/tinyland/shelf/pkg/terminal"
	"github.com/tinyland/shelf/pkg/watcher"
)

// dirWatcher is satisfied by both the fsnotify-backed watcher.Watcher
// and its poll-based fallback watcher.PollWatcher (§4.10), so Ctx can
// hold whichever one New managed to construct.
type dirWatcher interface {
	Watch(dir string) error
	ConsumeDirty() bool
	Close() error
}

// Ctx is the single owning aggregate for every piece of state the core
// touches: navigation, the on-disk stores, the active listing, the
// dispatcher, the FS watcher, and process-lifetime counters. One Ctx is
// built in main() and threaded through Run.
type Ctx struct {
	Cfg        *config.Config
	Dispatcher *dispatch.Dispatcher
	Runtime    *dispatch.Runtime
	Palette    *color.Palette
	Watcher    dirWatcher
	Autocmds   *config.AutocmdStack

	Entries []entry.FileEntry

	LastExitCode   int
	LastCmdInvalid bool
	StealthMode    bool // -S: no disk persistence
	ListAndQuit    bool
	PrintSelOnQuit bool
	DisableExtCmds bool // -x/--no-ext-cmds: no fallback to the shell for unmatched commands
	ELNOff         bool // -e/--eln-off: suppress entry list numbers in the listing and expansion
}

// New builds a Ctx from a loaded Config and a starting directory,
// opening every persisted store named in §6 (tolerating a missing file
// for each, per their "Lifecycle" notes in §3). In stealth mode, stores
// are kept in-memory only and Shutdown skips every write.
func New(cfg *config.Config, startDir string, stealth bool) (*Ctx, error) {
	if cfg.Colorize && !color.TerminalSupportsColor() {
		cfg.Colorize = false
	}

	palette := color.DefaultPalette()
	if cfg.Colorize && cfg.ColorScheme != "" && cfg.ColorScheme != "default" {
		if p, err := color.LoadScheme(cfg.Paths.ColorSchemeDir, cfg.ColorScheme); err == nil {
			palette = p
		}
	}

	var (
		bm  *bookmarks.Store
		jdb *nav.JumpDB
		hs  *history.History
		sb  *selbox.Box
		tg  *tags.Store
		dh  *nav.DirHistory
		err error
	)

	if stealth {
		bm = mustEmptyBookmarks()
		jdb = nav.NewJumpDB()
		hs = mustEmptyHistory()
		sb = mustEmptySelbox()
		tg = mustEmptyTags(cfg.Paths.TagsDir)
		dh = nav.NewDirHistory()
	} else {
		if err = os.MkdirAll(cfg.Paths.ConfigDir, 0o755); err != nil {
			return nil, err
		}
		if bm, err = bookmarks.Open(cfg.Paths.BookmarksFile); err != nil {
			return nil, err
		}
		if jdb, err = nav.LoadJumpDB(cfg.Paths.JumpDBFile); err != nil {
			return nil, err
		}
		if hs, err = history.Open(cfg.Paths.HistoryFile, 2000); err != nil {
			return nil, err
		}
		if sb, err = selbox.Open(cfg.Paths.SelboxFile); err != nil {
			return nil, err
		}
		if tg, err = tags.Open(cfg.Paths.TagsDir); err != nil {
			return nil, err
		}
		dh = loadDirHist(cfg.Paths.DirhistFile)
	}
	dh.SetMax(cfg.MaxDirhist)

	ws := nav.NewWorkspaces(cfg, startDir)
	dh.Push(startDir)
	jdb.Visit(startDir, time.Now())

	rt := &dispatch.Runtime{
		Cfg:        cfg,
		Workspaces: ws,
		DirHist:    dh,
		JumpDB:     jdb,
		Selection:  sb,
		Bookmarks:  bm,
		Tags:       tg,
		History:    hs,
		ListOpts: listing.Options{
			ShowHidden:   cfg.ShowHidden,
			LightMode:    cfg.LightMode,
			FilesCounter: cfg.FilesCounter,
			MaxFiles:     cfg.MaxFiles,
			Palette:      palette,
		},
		SortKey: listing.SortKey(cfg.Sort),
		SortRev: cfg.SortReverse,
		CDPath:  cfg.CDPath,
	}

	// Prefer the inotify/kqueue-backed watcher; degrade to the poll
	// fallback (§4.10) when the OS backend is unavailable, and only give
	// up live auto-refresh entirely if both fail to construct.
	var dw dirWatcher
	if w, werr := watcher.New(); werr == nil {
		dw = w
	} else if pw, perr := watcher.NewPollWatcher(startDir, cfg.PollInterval.Duration); perr == nil {
		dw = pw
	}

	c := &Ctx{
		Cfg:         cfg,
		Dispatcher:  dispatch.NewDispatcher(),
		Runtime:     rt,
		Palette:     palette,
		Watcher:     dw,
		Autocmds:    config.NewAutocmdStack(),
		StealthMode: stealth,
	}
	rt.Names = c.names
	rt.PropLookup = c.propLookup
	return c, nil
}

func (c *Ctx) names() []string {
	out := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Name
	}
	return out
}

func (c *Ctx) propLookup(target string) (string, bool) {
	if resolved, ok := expand.ExpandELN(target, c.names()); ok && len(resolved) == 1 {
		target = resolved[0]
	}
	for _, e := range c.Entries {
		if e.Name == target {
			return formatProp(e), true
		}
	}
	return "", false
}

// Relist re-scans the current workspace directory, applying the
// current filter/sort/columns pipeline (§4.1 steps 2-4), and stores the
// result plus derived Stats on the Runtime.
func (c *Ctx) Relist(termCols int) (string, error) {
	_, w := c.Runtime.Workspaces.Current()
	dir := w.Path

	entries, err := listing.Scan(dir, c.Runtime.ListOpts)
	if err != nil {
		c.Entries = nil
		return "", err
	}

	listing.Sort(entries, c.Runtime.SortKey, c.Runtime.SortRev, c.Cfg.ListDirsFirst, c.Cfg.CaseSensPathComp)
	c.Entries = entries
	c.Runtime.Stats = computeStats(entries, c.Cfg.ShowHidden)

	var buf strings.Builder
	listing.Render(&buf, entries, listing.RenderOptions{
		TermCols:     termCols,
		MaxNameLen:   c.Cfg.MaxNameLen,
		FilesCounter: c.Cfg.FilesCounter,
		ELNOff:       c.ELNOff,
		Palette:      c.Palette,
	})

	if c.Watcher != nil {
		_ = c.Watcher.Watch(dir)
	}
	return buf.String(), nil
}

// Shutdown persists every stateful store named in §6, skipped entirely
// in stealth mode (§6 "-S/--stealth-mode (no disk persistence)").
func (c *Ctx) Shutdown() error {
	if c.StealthMode {
		if c.Watcher != nil {
			_ = c.Watcher.Close()
		}
		return nil
	}
	rt := c.Runtime
	if err := rt.JumpDB.Save(c.Cfg.Paths.JumpDBFile); err != nil {
		return err
	}
	if c.Cfg.History {
		if err := rt.History.Save(); err != nil {
			return err
		}
	}
	if err := saveDirHist(c.Cfg.Paths.DirhistFile, rt.DirHist); err != nil {
		return err
	}
	if c.Watcher != nil {
		_ = c.Watcher.Close()
	}
	return nil
}

func loadDirHist(path string) *nav.DirHistory {
	data, err := os.ReadFile(path)
	if err != nil {
		return nav.NewDirHistory()
	}
	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			paths = append(paths, line)
		}
	}
	return nav.LoadPaths(paths)
}

func saveDirHist(path string, dh *nav.DirHistory) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf strings.Builder
	for _, p := range dh.Paths() {
		buf.WriteString(p)
		buf.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(buf.String()), 0o644)
}

func mustEmptyBookmarks() *bookmarks.Store {
	s, _ := bookmarks.Open(os.DevNull)
	return s
}

func mustEmptyHistory() *history.History {
	h, _ := history.Open(os.DevNull, 2000)
	return h
}

func mustEmptySelbox() *selbox.Box {
	b, _ := selbox.Open(os.DevNull)
	return b
}

func mustEmptyTags(dir string) *tags.Store {
	t, _ := tags.Open(dir)
	return t
}

// TermSize is a thin wrapper so callers outside pkg/terminal don't need
// to import it directly just to size a Relist call.
func TermSize() (cols, rows int) {
	s := terminal.GetSize()
	return s.Cols, s.Rows
}
