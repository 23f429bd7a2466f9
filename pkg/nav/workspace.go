// Package nav implements component D: the per-workspace current path,
// the back/forth directory history ring, and the frecency-ranked jump
// database, the three pieces of navigation state the dispatcher mutates
// on every `cd`.
package nav

import "github.com/tinyland/shelf/pkg/config"

// MaxWorkspaces is the fixed number of workspace slots (§3: "exactly
// MAX_WS workspace slots, implementation picks a small constant").
const MaxWorkspaces = 8

// Workspace is one `{path, name, private_opts}` slot. An unset slot has
// an empty Path; entering it lazily copies the current path (handled by
// Workspaces.Switch).
type Workspace struct {
	Path string
	Name string
	// Opts is only meaningful when PrivateWSSettings is enabled; it is
	// snapshotted/restored across a Switch so each workspace can keep its
	// own sort key, filter, and show_hidden state.
	Opts PerWSOpts
}

// PerWSOpts is the subset of Config each workspace may keep independently
// when private_ws_settings is on.
type PerWSOpts struct {
	Sort        string
	SortReverse bool
	ShowHidden  bool
	Filter      string
}

// Unset reports whether the slot has never been entered.
func (w Workspace) Unset() bool {
	return w.Path == ""
}

// Workspaces holds the MaxWorkspaces slots and tracks which is current.
type Workspaces struct {
	slots  [MaxWorkspaces]Workspace
	cur    int
	cfg    *config.Config
}

// NewWorkspaces creates the fixed slot array with workspace 0 as current,
// its path set to start.
func NewWorkspaces(cfg *config.Config, start string) *Workspaces {
	ws := &Workspaces{cfg: cfg}
	ws.slots[0].Path = start
	return ws
}

// Current returns the index and value of the current workspace.
func (ws *Workspaces) Current() (int, Workspace) {
	return ws.cur, ws.slots[ws.cur]
}

// SetPath updates the current workspace's path, e.g. after a successful
// chdir.
func (ws *Workspaces) SetPath(path string) {
	ws.slots[ws.cur].Path = path
}

// Switch moves to slot n (0-indexed). If the target slot is unset, it is
// lazily populated with the current path before the switch, per §4.2.
// When private_ws_settings is enabled, the outgoing workspace's opts are
// saved and the incoming workspace's opts are returned for the caller to
// apply (e.g. to Config's sort/filter/show_hidden fields).
func (ws *Workspaces) Switch(n int, currentOpts PerWSOpts) (Workspace, error) {
	if n < 0 || n >= MaxWorkspaces {
		return Workspace{}, errOutOfRange
	}
	if ws.cfg != nil && ws.cfg.PrivateWSSettings {
		ws.slots[ws.cur].Opts = currentOpts
	}
	if ws.slots[n].Unset() {
		_, cur := ws.Current()
		ws.slots[n].Path = cur.Path
	}
	ws.cur = n
	return ws.slots[n], nil
}

// Rotate moves to the next (+1) or previous (-1) workspace, wrapping
// around, for `ws +`/`ws -`.
func (ws *Workspaces) Rotate(delta int, currentOpts PerWSOpts) (Workspace, error) {
	n := (ws.cur + delta + MaxWorkspaces) % MaxWorkspaces
	return ws.Switch(n, currentOpts)
}

// Unset clears slot n, refusing to unset the current workspace (there
// must always be a current, populated slot; §9 "Supplemented features").
func (ws *Workspaces) Unset(n int) error {
	if n < 0 || n >= MaxWorkspaces {
		return errOutOfRange
	}
	if n == ws.cur {
		return errCannotUnsetCurrent
	}
	ws.slots[n] = Workspace{}
	return nil
}

// All returns a copy of every slot, for `ws` with no arguments.
func (ws *Workspaces) All() [MaxWorkspaces]Workspace {
	return ws.slots
}

// Rename assigns a name to slot n, used by `ws N name`.
func (ws *Workspaces) Rename(n int, name string) error {
	if n < 0 || n >= MaxWorkspaces {
		return errOutOfRange
	}
	ws.slots[n].Name = name
	return nil
}

// IndexByName finds a workspace slot by its assigned name, for `ws name`.
func (ws *Workspaces) IndexByName(name string) (int, bool) {
	for i, s := range ws.slots {
		if s.Name == name {
			return i, true
		}
	}
	return 0, false
}
