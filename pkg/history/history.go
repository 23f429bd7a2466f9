// Package history implements the command history file: one line per
// command (readline history format), plus the `!pattern` recall that
// re-runs the most recent entry whose prefix matches pattern.
package history

import (
	"bufio"
	"strings"

	"github.com/tinyland/shelf/pkg/store"
)

// History is an in-memory ring of command lines, persisted to disk as
// one line per command.
type History struct {
	path    string
	lines   []string
	maxSize int
}

// Open loads path (missing file is an empty history, not an error).
func Open(path string, maxSize int) (*History, error) {
	data, err := store.ReadAll(path)
	if err != nil {
		return nil, err
	}
	h := &History{path: path, maxSize: maxSize}
	if data == nil {
		return h, nil
	}
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	for sc.Scan() {
		line := sc.Text()
		if line != "" {
			h.lines = append(h.lines, line)
		}
	}
	return h, nil
}

// Add appends line to the history, trimming the oldest entries once
// maxSize is exceeded. A line equal to the immediately preceding one is
// not duplicated, matching readline's HISTCONTROL=ignoredups behavior.
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	if len(h.lines) > 0 && h.lines[len(h.lines)-1] == line {
		return
	}
	h.lines = append(h.lines, line)
	if h.maxSize > 0 && len(h.lines) > h.maxSize {
		h.lines = h.lines[len(h.lines)-h.maxSize:]
	}
}

// Lines returns the history in chronological order (oldest first).
func (h *History) Lines() []string {
	return append([]string(nil), h.lines...)
}

// Recall implements `!pattern`: the most recent line whose prefix
// matches pattern, searched newest-first. Returns ("", false) if no
// entry matches.
func (h *History) Recall(pattern string) (string, bool) {
	for i := len(h.lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(h.lines[i], pattern) {
			return h.lines[i], true
		}
	}
	return "", false
}

// Save persists the full history to disk atomically.
func (h *History) Save() error {
	var b strings.Builder
	for _, line := range h.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return store.WriteAtomic(h.path, []byte(b.String()), 0o600)
}

// IsRecall reports whether line is a `!pattern` recall directive and
// returns the pattern with the leading `!` stripped.
func IsRecall(line string) (string, bool) {
	if strings.HasPrefix(line, "!") && len(line) > 1 {
		return line[1:], true
	}
	return "", false
}
