package extcmd

import (
	"os"
	"os/exec"
	"os/signal"
	"strings"
)

// Result is what Spawn reports back to the dispatcher after a foreground
// command, or immediately (with Background true and ExitCode 0) for a
// backgrounded one.
type Result struct {
	ExitCode   int
	Background bool
}

// Spawn runs line as `$CLIFM_SHELL -c line`, falling back to $SHELL and
// then /bin/sh, per §4.7. A trailing "&" (after trimming whitespace)
// backgrounds the child: Spawn starts it and returns immediately without
// waiting. The child inherits the default signal disposition; while a
// foreground child runs, shelf ignores SIGINT/SIGQUIT itself so the
// child — not the shell — decides how to react to them.
func Spawn(line string) (Result, error) {
	trimmed := strings.TrimRight(line, " \t")
	background := strings.HasSuffix(trimmed, "&")
	if background {
		trimmed = strings.TrimRight(strings.TrimSuffix(trimmed, "&"), " \t")
	}

	shellPath := shellBinary()
	cmd := exec.Command(shellPath, "-c", trimmed)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if background {
		if err := cmd.Start(); err != nil {
			return Result{}, err
		}
		go cmd.Wait()
		return Result{Background: true}, nil
	}

	ignore := make(chan os.Signal, 1)
	signal.Notify(ignore, interruptSignals()...)
	defer signal.Stop(ignore)

	err := cmd.Run()
	code := exitCode(cmd, err)
	return Result{ExitCode: code}, nil
}

// shellBinary resolves the shell to exec per §4.7's priority: an
// explicit $CLIFM_SHELL override, then $SHELL, then /bin/sh.
func shellBinary() string {
	if v := os.Getenv("CLIFM_SHELL"); v != "" {
		return v
	}
	if v := os.Getenv("SHELL"); v != "" {
		return v
	}
	return "/bin/sh"
}

// exitCode extracts a child's exit status, mapping a launch failure
// (err non-nil and not an ExitError) to 127, the conventional
// "command not found" code shells use.
func exitCode(cmd *exec.Cmd, err error) int {
	if err == nil {
		return 0
	}
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	return 127
}
