package nav

// invalid marks a DirHistory entry whose path is no longer reachable;
// named after the source's choice of an ESC-byte sentinel, modeled here
// as a plain bool rather than a byte marker baked into the path string.
type dirHistEntry struct {
	path    string
	invalid bool
}

// DirHistory is the ordered list of absolute paths visited in this
// process's lifetime, with a cursor pointing at the "present" entry
// (§3's DirHistory entity). An unreachable entry is marked invalid
// rather than removed; entries are deleted only when Push drops the
// oldest ones to stay within max.
type DirHistory struct {
	entries []dirHistEntry
	cursor  int // index into entries; -1 when empty
	max     int // 0 means unbounded; enforced by Push
}

// NewDirHistory returns an empty history.
func NewDirHistory() *DirHistory {
	return &DirHistory{cursor: -1}
}

// SetMax caps the number of retained entries at n (§6 --max-dirhist N);
// 0 leaves the history unbounded. Applied on the next Push, not
// retroactively to already-loaded entries.
func (d *DirHistory) SetMax(n int) {
	d.max = n
}

// Push records a successful chdir to path, moving the cursor to the new
// entry at the end. This matches the state machine's "On chdir: push new
// entry, set Middle→AtEnd". When max is set and exceeded, the oldest
// entries are dropped and the cursor shifted to stay on the same entry.
func (d *DirHistory) Push(path string) {
	d.entries = append(d.entries, dirHistEntry{path: path})
	d.cursor = len(d.entries) - 1
	if d.max > 0 && len(d.entries) > d.max {
		drop := len(d.entries) - d.max
		d.entries = d.entries[drop:]
		d.cursor -= drop
	}
}

// Current returns the path at the cursor, or "" if the history is empty.
func (d *DirHistory) Current() string {
	if d.cursor < 0 || d.cursor >= len(d.entries) {
		return ""
	}
	return d.entries[d.cursor].path
}

// Back moves the cursor to the nearest valid entry before the current
// one, returning its path. Returns an error (not fatal) if already at
// the oldest valid entry or the history is empty.
func (d *DirHistory) Back() (string, error) {
	if len(d.entries) == 0 {
		return "", errDirhistEmpty
	}
	for i := d.cursor - 1; i >= 0; i-- {
		if !d.entries[i].invalid {
			d.cursor = i
			return d.entries[i].path, nil
		}
	}
	return "", errDirhistEmpty
}

// Forth moves the cursor to the nearest valid entry after the current
// one. At the newest entry (AtEnd), Forth is a no-op and returns the
// current path.
func (d *DirHistory) Forth() (string, error) {
	if len(d.entries) == 0 {
		return "", errDirhistEmpty
	}
	for i := d.cursor + 1; i < len(d.entries); i++ {
		if !d.entries[i].invalid {
			d.cursor = i
			return d.entries[i].path, nil
		}
	}
	return d.Current(), nil
}

// MarkCurrentInvalid flags the entry at the cursor as unreachable,
// without moving the cursor, per §4.2's back/forth "mark invalid and
// continue" handling.
func (d *DirHistory) MarkCurrentInvalid() {
	if d.cursor >= 0 && d.cursor < len(d.entries) {
		d.entries[d.cursor].invalid = true
	}
}

// Paths returns every recorded path in visit order, valid or not, for
// persistence to the dirhist file.
func (d *DirHistory) Paths() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.path
	}
	return out
}

// LoadPaths replaces the history with paths loaded from the dirhist
// file, placing the cursor at the last (most recent) entry.
func LoadPaths(paths []string) *DirHistory {
	d := NewDirHistory()
	for _, p := range paths {
		d.entries = append(d.entries, dirHistEntry{path: p})
	}
	d.cursor = len(d.entries) - 1
	return d
}
