package nav

import (
	"os"
	"testing"
	"time"

	"github.com/tinyland/shelf/pkg/config"
)

func TestWorkspaceSwitchLazilyCopiesPath(t *testing.T) {
	cfg := config.DefaultConfig()
	ws := NewWorkspaces(cfg, "/home/user")

	got, err := ws.Switch(1, PerWSOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Path != "/home/user" {
		t.Fatalf("expected lazily copied path, got %q", got.Path)
	}
}

func TestWorkspaceSwitchOutOfRange(t *testing.T) {
	cfg := config.DefaultConfig()
	ws := NewWorkspaces(cfg, "/")
	if _, err := ws.Switch(99, PerWSOpts{}); err == nil {
		t.Fatalf("expected an out-of-range error")
	}
}

func TestWorkspaceCannotUnsetCurrent(t *testing.T) {
	cfg := config.DefaultConfig()
	ws := NewWorkspaces(cfg, "/")
	if err := ws.Unset(0); err == nil {
		t.Fatalf("expected error unsetting the current workspace")
	}
}

func TestWorkspaceRotateWraps(t *testing.T) {
	cfg := config.DefaultConfig()
	ws := NewWorkspaces(cfg, "/")
	_, err := ws.Rotate(-1, PerWSOpts{})
	if err != nil {
		t.Fatal(err)
	}
	idx, _ := ws.Current()
	if idx != MaxWorkspaces-1 {
		t.Fatalf("expected wraparound to last slot, got %d", idx)
	}
}

func TestDirHistoryBackForth(t *testing.T) {
	d := NewDirHistory()
	d.Push("/a")
	d.Push("/b")
	d.Push("/c")

	got, err := d.Back()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/b" {
		t.Fatalf("expected /b, got %q", got)
	}

	got, err = d.Back()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/a" {
		t.Fatalf("expected /a, got %q", got)
	}

	if _, err := d.Back(); err == nil {
		t.Fatalf("expected error at the oldest entry")
	}

	got, err = d.Forth()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/b" {
		t.Fatalf("expected /b after forth, got %q", got)
	}
}

func TestDirHistorySkipsInvalidEntries(t *testing.T) {
	d := NewDirHistory()
	d.Push("/a")
	d.Push("/b")
	d.MarkCurrentInvalid() // /b is now unreachable
	d.Push("/c")

	got, err := d.Back()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/a" {
		t.Fatalf("expected back to skip invalid /b and land on /a, got %q", got)
	}
}

func TestJumpDBVisitAndQuery(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	db := NewJumpDB()
	db.Visit("/home/user/projects/shelf", now)
	db.Visit("/home/user/downloads", now)

	got := db.Query([]string{"proj", "shelf"}, now, false)
	if got != "/home/user/projects/shelf" {
		t.Fatalf("expected the projects/shelf match, got %q", got)
	}
}

func TestJumpDBRankRecency(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	recent := JumpEntry{Path: "/a", Visits: 1, FirstVisit: now.Add(-48 * time.Hour), LastVisit: now}
	stale := JumpEntry{Path: "/b", Visits: 1, FirstVisit: now.Add(-48 * time.Hour), LastVisit: now.Add(-30 * 24 * time.Hour)}

	if recent.Rank(now) <= stale.Rank(now) {
		t.Fatalf("expected a recently visited entry to rank higher")
	}
}

func TestJumpDBMarshalRoundTrip(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	db := NewJumpDB()
	db.Visit("/a", now)
	db.Visit("/a", now.Add(time.Hour))
	db.entries["/a"].Keep = true

	dir := t.TempDir() + "/jump.db"
	if err := db.Save(dir); err != nil {
		t.Fatal(err)
	}

	reloaded, err := LoadJumpDB(dir)
	if err != nil {
		t.Fatal(err)
	}
	e, ok := reloaded.entries["/a"]
	if !ok {
		t.Fatalf("expected /a to survive round trip")
	}
	if e.Visits != 2 || !e.Keep {
		t.Fatalf("unexpected round-tripped entry: %+v", e)
	}
}

func TestJumpDBPurge(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	db := NewJumpDB()
	db.entries["/stale"] = &JumpEntry{Path: "/stale", Visits: 1, FirstVisit: now.Add(-365 * 24 * time.Hour), LastVisit: now.Add(-365 * 24 * time.Hour)}
	db.entries["/kept"] = &JumpEntry{Path: "/kept", Visits: 1, FirstVisit: now.Add(-365 * 24 * time.Hour), LastVisit: now.Add(-365 * 24 * time.Hour), Keep: true}

	removed := db.Purge(2.0, now)
	if removed != 1 {
		t.Fatalf("expected exactly one purge, got %d", removed)
	}
	if _, ok := db.entries["/kept"]; !ok {
		t.Fatalf("expected the kept entry to survive purging")
	}
}

func TestResolveCDPath(t *testing.T) {
	dir := t.TempDir()
	sub := dir + "/workdir"
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve("workdir", "/nonexistent", []string{dir}, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != sub {
		t.Fatalf("expected CDPATH hit %q, got %q", sub, got)
	}
}

func TestResolveEmptyGoesHome(t *testing.T) {
	got, err := Resolve("", "/tmp", nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Fatalf("expected a non-empty home directory")
	}
}

func TestBackDirMatches(t *testing.T) {
	matches := BackDirMatches("/home/user/projects/shelf/src", "projects", true)
	if len(matches) != 1 || matches[0] != "/home/user/projects" {
		t.Fatalf("unexpected matches: %v", matches)
	}
}

func TestFastbackLevels(t *testing.T) {
	if FastbackLevels("../..") != 2 {
		t.Fatalf("expected 2 fastback levels")
	}
	if FastbackLevels("foo") != 0 {
		t.Fatalf("expected 0 for a non-fastback pattern")
	}
}
