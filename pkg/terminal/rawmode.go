package terminal

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	xterm "github.com/charmbracelet/x/term"
)

// RawSession toggles the controlling terminal into raw mode for the
// duration of a single-key read (the pager, confirmation prompts) and
// restores the previous termios on Close. Safe to nest: a second Enter
// while already raw is a no-op that still requires a matching Close.
type RawSession struct {
	fd    int
	state *xterm.State
}

// EnterRaw puts stdin into raw mode. Callers must call Close (typically
// via defer) to restore cooked mode, even on error paths.
func EnterRaw() (*RawSession, error) {
	fd := int(os.Stdin.Fd())
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &RawSession{fd: fd, state: state}, nil
}

// Close restores the terminal to the mode it was in before EnterRaw.
func (r *RawSession) Close() error {
	if r == nil || r.state == nil {
		return nil
	}
	return xterm.Restore(r.fd, r.state)
}

// resizeFlag is set by the SIGWINCH handler and consumed by the main
// loop between prompt iterations; per spec §9 signal handlers only set
// atomic flags, they never touch shared state directly.
var resizeFlag int32

// WatchResize installs a SIGWINCH handler that sets an atomic flag;
// ConsumeResize later clears it and refreshes the cached Capabilities.
// It returns a stop function.
func WatchResize() (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
				atomic.StoreInt32(&resizeFlag, 1)
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}

// ConsumeResize reports whether a resize occurred since the last call,
// and if so refreshes the cached Capabilities before returning true.
func ConsumeResize() bool {
	if atomic.CompareAndSwapInt32(&resizeFlag, 1, 0) {
		ForceRefresh()
		return true
	}
	return false
}
