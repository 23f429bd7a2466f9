package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tinyland/shelf/pkg/entry"
)

func TestComputeStats(t *testing.T) {
	entries := []entry.FileEntry{
		{Name: "readme.md", Kind: entry.KindRegular},
		{Name: ".hidden", Kind: entry.KindRegular},
		{Name: "bin", Kind: entry.KindDirectory},
		{Name: "link", Kind: entry.KindSymlink},
		{Name: "broken", Kind: entry.KindSymlink, LinkBroken: true},
	}

	stats := computeStats(entries, true)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Hidden)
	assert.Equal(t, 1, stats.Dirs)
	assert.Equal(t, 1, stats.Links)
	assert.Equal(t, 1, stats.Broken)
	assert.Equal(t, 2, stats.Files)
}

func TestFormatProp(t *testing.T) {
	mtime := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	e := entry.FileEntry{
		Name: "notes.txt",
		Kind: entry.KindRegular,
		Stat: entry.Stat{Size: 42, Nlink: 1, UID: 1000, GID: 1000, Mtime: mtime},
	}

	line := formatProp(e)

	assert.Contains(t, line, "notes.txt")
	assert.Contains(t, line, "size=42")
	assert.Contains(t, line, "2026-01-02 03:04:05")
}
