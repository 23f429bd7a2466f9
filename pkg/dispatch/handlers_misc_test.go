package dispatch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyland/shelf/pkg/bookmarks"
	"github.com/tinyland/shelf/pkg/config"
	"github.com/tinyland/shelf/pkg/history"
	"github.com/tinyland/shelf/pkg/nav"
	"github.com/tinyland/shelf/pkg/selbox"
	"github.com/tinyland/shelf/pkg/tags"
)

func newTestRuntime(t *testing.T, startDir string) *Runtime {
	t.Helper()
	dir := t.TempDir()

	bm, err := bookmarks.Open(filepath.Join(dir, "bookmarks"))
	require.NoError(t, err)
	hs, err := history.Open(filepath.Join(dir, "history"), 100)
	require.NoError(t, err)
	sb, err := selbox.Open(filepath.Join(dir, "selbox"))
	require.NoError(t, err)
	tg, err := tags.Open(filepath.Join(dir, "tags"))
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	ws := nav.NewWorkspaces(cfg, startDir)
	dh := nav.NewDirHistory()
	dh.Push(startDir)
	jdb := nav.NewJumpDB()

	return &Runtime{
		Cfg:        cfg,
		Workspaces: ws,
		DirHist:    dh,
		JumpDB:     jdb,
		Selection:  sb,
		Bookmarks:  bm,
		Tags:       tg,
		History:    hs,
	}
}

func TestHandleQuitSetsQuit(t *testing.T) {
	rt := newTestRuntime(t, "/")
	res, err := handleQuit(rt, []string{"q"})
	require.NoError(t, err)
	assert.True(t, rt.Quit)
	assert.False(t, res.Relist)
}

func TestHandlePathPrintsCWD(t *testing.T) {
	rt := newTestRuntime(t, "/tmp")
	res, err := handlePath(rt, []string{"path"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp\n", res.Output)
}

func TestHandleStatsUsesRuntimeTally(t *testing.T) {
	rt := newTestRuntime(t, "/tmp")
	rt.Stats = Stats{Files: 3, Dirs: 1, Total: 4}
	res, err := handleStats(rt, []string{"stats"})
	require.NoError(t, err)
	assert.Contains(t, res.Output, "files: 3")
	assert.Contains(t, res.Output, "total: 4")
}

func TestHandlePropMissingTargetIsUsageError(t *testing.T) {
	rt := newTestRuntime(t, "/tmp")
	rt.PropLookup = func(string) (string, bool) { return "", false }
	_, err := handleProp(rt, []string{"p"})
	require.Error(t, err)
}

func TestHandlePropResolvesViaLookup(t *testing.T) {
	rt := newTestRuntime(t, "/tmp")
	rt.PropLookup = func(target string) (string, bool) {
		if target == "a.txt" {
			return "a.txt  regular  size=1", true
		}
		return "", false
	}
	res, err := handleProp(rt, []string{"p", "a.txt"})
	require.NoError(t, err)
	assert.Equal(t, "a.txt  regular  size=1\n", res.Output)
}

func TestHandleTrashIsUnimplementedStub(t *testing.T) {
	rt := newTestRuntime(t, "/tmp")
	_, err := handleTrash(rt, []string{"t", "file"})
	require.Error(t, err)
}

func TestHandleHistListsRecordedLines(t *testing.T) {
	rt := newTestRuntime(t, "/tmp")
	rt.History.Add("cd /tmp")
	rt.History.Add("ls")
	res, err := handleHist(rt, []string{"hist"})
	require.NoError(t, err)
	assert.Contains(t, res.Output, "1  cd /tmp")
	assert.Contains(t, res.Output, "2  ls")
}
