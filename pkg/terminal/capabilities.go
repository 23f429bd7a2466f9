package terminal

import (
	"os"
	"sync"
)

// Capabilities is the cached terminal capability summary for the current
// session: what the listing engine, prompt, and pager may rely on without
// re-querying the terminal on every redraw.
type Capabilities struct {
	Term          Terminal // Detected terminal emulator
	Size          Size     // Terminal dimensions
	TrueColor     bool     // 24-bit color support
	HasClear      bool     // terminal supports a full-screen clear sequence
	HasHome       bool     // terminal supports a cursor-home sequence
	HasHideCursor bool     // terminal supports hiding/showing the cursor
	SSH           bool     // running over SSH
	Tmux          bool     // inside tmux
	Mux           bool     // inside any multiplexer (tmux, screen)
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex // guards ForceRefresh reset
)

// DetectCapabilities performs full terminal detection and caches the
// result. Safe to call from multiple goroutines; detection runs exactly
// once via sync.Once. Subsequent calls return the cached value.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// ForceRefresh re-detects terminal capabilities, replacing the cached
// value. Called from ConsumeResize after a SIGWINCH.
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()

	detectOnce = sync.Once{}
	cached = detect()
	return cached
}

// Cached returns the previously cached capabilities without re-detection.
// Returns nil if DetectCapabilities has not been called yet.
func Cached() *Capabilities {
	return cached
}

func detect() *Capabilities {
	term := Detect()
	ssh := isSSH()
	tmux := os.Getenv("TMUX") != ""
	screen := os.Getenv("STY") != ""

	trueColor := term.SupportsTrueColor()
	if !trueColor {
		ct := os.Getenv("COLORTERM")
		trueColor = ct == "truecolor" || ct == "24bit"
	}

	controllable := term != TermUnknown && term != TermDumb

	return &Capabilities{
		Term:          term,
		Size:          GetSize(),
		TrueColor:     trueColor,
		HasClear:      controllable,
		HasHome:       controllable,
		HasHideCursor: controllable,
		SSH:           ssh,
		Tmux:          tmux,
		Mux:           tmux || screen,
	}
}

// isSSH reports whether the current session is running over SSH.
func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
