package extcmd

import (
	"os"
	"syscall"
)

// interruptSignals lists the signals shelf ignores itself while a
// foreground child is running, so SIGINT/SIGQUIT reach the child (which
// may choose to die, or not) rather than the parent.
func interruptSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGQUIT}
}
