package terminal

import "io"

// clearHome is the full-screen clear plus cursor-home sequence: erase the
// whole display, then move to row 1 col 1, matching the `clear_screen`
// config field (§3) and the capability pair HasClear/HasHome.
const clearHome = "\x1b[2J\x1b[H"

const (
	hideCursorSeq = "\x1b[?25l"
	showCursorSeq = "\x1b[?25h"
)

// ClearScreen writes the clear+home sequence to w if the cached
// capabilities report HasClear and HasHome; it's a no-op on a dumb
// terminal or a terminal that never got detected (redirected pipe).
func ClearScreen(w io.Writer) {
	caps := DetectCapabilities()
	if caps.HasClear && caps.HasHome {
		io.WriteString(w, clearHome)
	}
}

// HideCursor writes the cursor-hide sequence to w if supported, and
// returns a restore func that shows it again. Callers should defer the
// restore so a panic or early return never leaves the cursor hidden.
func HideCursor(w io.Writer) (restore func()) {
	if !DetectCapabilities().HasHideCursor {
		return func() {}
	}
	io.WriteString(w, hideCursorSeq)
	return func() { io.WriteString(w, showCursorSeq) }
}
