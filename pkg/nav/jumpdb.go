package nav

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tinyland/shelf/pkg/store"
)

// JumpEntry is §3's JumpEntry: one directory's visit history for the
// frecency-ranked `j` query.
type JumpEntry struct {
	Path       string
	FirstVisit time.Time
	LastVisit  time.Time
	Visits     int
	Keep       bool // exempt from purging regardless of rank
}

// Rank computes the frecency score at now: visits weighted by inverse
// age in days, then boosted by a recency multiplier. This is the
// "concrete formulation" spec.md §9 allows an implementer to pick;
// documented here per that Open Question.
func (e JumpEntry) Rank(now time.Time) float64 {
	ageDays := now.Sub(e.FirstVisit).Hours() / 24
	if ageDays < 1 {
		ageDays = 1
	}
	rank := float64(e.Visits) * 2000 / ageDays
	return rank * recencyMultiplier(e.LastVisit, now)
}

// recencyMultiplier boosts rank for recently visited paths: 4x within
// the last hour, 2x within the last day, 0.5x within the last week, and
// 0.25x older than that.
func recencyMultiplier(last, now time.Time) float64 {
	age := now.Sub(last)
	switch {
	case age <= time.Hour:
		return 4
	case age <= 24*time.Hour:
		return 2
	case age <= 7*24*time.Hour:
		return 0.5
	default:
		return 0.25
	}
}

// JumpDB is the in-memory jump database, loaded once at startup and
// persisted at shutdown (§5's "persisted only at clean shutdown").
type JumpDB struct {
	entries map[string]*JumpEntry
}

// NewJumpDB returns an empty database.
func NewJumpDB() *JumpDB {
	return &JumpDB{entries: make(map[string]*JumpEntry)}
}

// Visit records a chdir to path at now: increments Visits and bumps
// LastVisit for an existing entry, or creates a new one with Visits=1.
func (db *JumpDB) Visit(path string, now time.Time) {
	if e, ok := db.entries[path]; ok {
		e.Visits++
		e.LastVisit = now
		return
	}
	db.entries[path] = &JumpEntry{Path: path, FirstVisit: now, LastVisit: now, Visits: 1}
}

// Query walks the DB for entries whose path contains every word in
// words, in order, as substrings; the highest-ranked hit wins. Returns
// "" if there is no match. caseSens governs the match per
// case_sens_dirjump (§6 --case-sens-dirjump); off by default, matching
// the word search rather than a literal path comparison.
func (db *JumpDB) Query(words []string, now time.Time, caseSens bool) string {
	var best *JumpEntry
	var bestRank float64
	for _, e := range db.entries {
		if matchesWordsInOrder(e.Path, words, caseSens) {
			r := e.Rank(now)
			if best == nil || r > bestRank {
				best, bestRank = e, r
			}
		}
	}
	if best == nil {
		return ""
	}
	return best.Path
}

// matchesWordsInOrder reports whether each word in words appears as a
// substring of path, in the given order (not necessarily contiguous).
func matchesWordsInOrder(path string, words []string, caseSens bool) bool {
	if !caseSens {
		path = strings.ToLower(path)
	}
	pos := 0
	for _, w := range words {
		if !caseSens {
			w = strings.ToLower(w)
		}
		idx := strings.Index(path[pos:], w)
		if idx < 0 {
			return false
		}
		pos += idx + len(w)
	}
	return true
}

// List returns every entry sorted by descending rank, for `jl`.
func (db *JumpDB) List(now time.Time) []JumpEntry {
	out := make([]JumpEntry, 0, len(db.entries))
	for _, e := range db.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Rank(now), out[j].Rank(now)
		if ri != rj {
			return ri > rj
		}
		if !out[i].LastVisit.Equal(out[j].LastVisit) {
			return out[i].LastVisit.After(out[j].LastVisit)
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// Children returns entries whose path is a direct descendant of cwd, for
// `jc`.
func (db *JumpDB) Children(cwd string, now time.Time) []JumpEntry {
	var out []JumpEntry
	prefix := strings.TrimSuffix(cwd, "/") + "/"
	for _, e := range db.entries {
		if strings.HasPrefix(e.Path, prefix) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank(now) > out[j].Rank(now) })
	return out
}

// Parent returns the entry, if any, for the direct parent of cwd, for
// `jp`.
func (db *JumpDB) Parent(cwd string) (JumpEntry, bool) {
	parent := parentOf(cwd)
	e, ok := db.entries[parent]
	if !ok {
		return JumpEntry{}, false
	}
	return *e, true
}

func parentOf(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndexByte(trimmed, '/')
	if idx <= 0 {
		return "/"
	}
	return trimmed[:idx]
}

// Purge removes every non-Keep entry whose rank falls below threshold,
// for the "purge when the DB file exceeds an implementation-picked
// limit" rule. Returns the number of entries removed.
func (db *JumpDB) Purge(threshold float64, now time.Time) int {
	removed := 0
	for path, e := range db.entries {
		if e.Keep {
			continue
		}
		if e.Rank(now) < threshold {
			delete(db.entries, path)
			removed++
		}
	}
	return removed
}

// Marshal serializes the DB as `visits:first_visit:last_visit:flags:path`
// lines, per §6.
func (db *JumpDB) Marshal() []byte {
	var b strings.Builder
	for _, e := range db.entries {
		flags := "-"
		if e.Keep {
			flags = "k"
		}
		fmt.Fprintf(&b, "%d:%d:%d:%s:%s\n",
			e.Visits, e.FirstVisit.Unix(), e.LastVisit.Unix(), flags, e.Path)
	}
	return []byte(b.String())
}

// LoadJumpDB reads a jump DB file in `visits:first_visit:last_visit:flags:path`
// format, per §6, tolerating a missing file (first run).
func LoadJumpDB(path string) (*JumpDB, error) {
	data, err := store.ReadAll(path)
	if err != nil {
		return nil, err
	}
	db := NewJumpDB()
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := parseJumpLine(line)
		if err != nil {
			continue // a corrupt line is skipped, not fatal
		}
		db.entries[e.Path] = e
	}
	return db, nil
}

func parseJumpLine(line string) (*JumpEntry, error) {
	parts := strings.SplitN(line, ":", 5)
	if len(parts) != 5 {
		return nil, fmt.Errorf("jumpdb: malformed line %q", line)
	}
	visits, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, err
	}
	first, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, err
	}
	last, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil, err
	}
	return &JumpEntry{
		Path:       parts[4],
		Visits:     visits,
		FirstVisit: time.Unix(first, 0),
		LastVisit:  time.Unix(last, 0),
		Keep:       parts[3] == "k",
	}, nil
}

// Save persists the DB atomically to path.
func (db *JumpDB) Save(path string) error {
	return store.WriteAtomic(path, db.Marshal(), 0o644)
}
