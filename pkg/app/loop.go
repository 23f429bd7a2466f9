package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tinyland/shelf/pkg/dispatch"
	"github.com/tinyland/shelf/pkg/expand"
	"github.com/tinyland/shelf/pkg/extcmd"
	"github.com/tinyland/shelf/pkg/history"
	"github.com/tinyland/shelf/pkg/prompt"
	"github.com/tinyland/shelf/pkg/shelferr"
	"github.com/tinyland/shelf/pkg/strutil"
	"github.com/tinyland/shelf/pkg/terminal"
)

// printListing redraws the listing, clearing the screen first when
// cfg.clear_screen is set and the terminal supports it (§3, §4.11), and
// hiding the cursor for the duration of the write to avoid a visible
// flicker on terminals that support it.
func (c *Ctx) printListing(out string) {
	restore := terminal.HideCursor(os.Stdout)
	defer restore()

	if c.Cfg.ClearScreen {
		terminal.ClearScreen(os.Stdout)
	}
	fmt.Print(out)
}

// Run drives the per-iteration control flow of §2: render the prompt
// (J), read a line (H), expand it (G), dispatch it (I), mutate
// navigation/selection/listing state or spawn an external process, then
// relist (C) if the command requires it. It returns only when the `q`
// command (or EOF on a non-interactive stream) sets rt.Quit.
func Run(c *Ctx, logger *slog.Logger) error {
	rt := c.Runtime

	cols, _ := TermSize()
	initial, err := c.Relist(cols)
	if err != nil {
		logger.Warn("initial relist failed", "error", err)
	} else if c.Cfg.AutoLS {
		c.printListing(initial)
	}

	// --list-and-quit (§6): print the startup listing and return without
	// entering the interactive prompt loop.
	if c.ListAndQuit {
		return nil
	}

	for !rt.Quit {
		cols, _ := TermSize()

		if err := rt.Selection.Reload(); err != nil {
			logger.Warn("selbox reload failed", "error", err)
		}

		line, err := ReadLine(c, renderPrompt(c))
		if err != nil {
			if errors.Is(err, ErrInterrupted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				break
			}
			logger.Error("readline failed", "error", err)
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if c.Cfg.History {
			if recalled, ok := history.IsRecall(line); ok {
				if found, ok := rt.History.Recall(recalled); ok {
					line = found
				}
			}
			rt.History.Add(line)
		}

		relist, invalid := c.runOne(line, logger)
		c.LastCmdInvalid = invalid

		if rt.Quit {
			break
		}

		if c.Watcher != nil && c.Watcher.ConsumeDirty() {
			relist = true
		}

		if relist || c.Cfg.AutoLS {
			out, err := c.Relist(cols)
			if err != nil {
				logger.Warn("relist failed", "error", err)
				continue
			}
			c.printListing(out)
		}
	}

	return nil
}

// runOne expands and dispatches a single line, per §4.5/§4.6/§4.7. It
// returns whether the listing should be redrawn and whether the command
// should flip the prompt to its warning variant.
func (c *Ctx) runOne(line string, logger *slog.Logger) (relist bool, invalid bool) {
	rt := c.Runtime

	argv, err := expand.Expand(line, expand.Context{
		Dir:      rt.CWD(),
		Names:    c.names(),
		Aliases:  rt.Cfg.Aliases,
		UserVars: nil,
		ELNOff:   c.ELNOff,
	})
	if err != nil {
		c.reportError(err, logger)
		return false, true
	}
	if len(argv) == 0 {
		return false, false
	}

	res, handled, err := c.Dispatcher.Dispatch(rt, argv)
	if handled {
		if res.Output != "" {
			fmt.Print(res.Output)
		}
		if err != nil {
			c.reportError(err, logger)
			return res.Relist, true
		}
		c.LastExitCode = int(res.Code)
		return res.Relist, res.Code != dispatch.ExitOK
	}

	if c.DisableExtCmds {
		err := shelferr.New(shelferr.KindUsage, argv[0], "not a shelf command (external commands disabled)")
		c.reportError(err, logger)
		return false, true
	}

	xres, xerr := extcmd.Spawn(line)
	if xerr != nil {
		c.reportError(xerr, logger)
		return false, true
	}
	c.LastExitCode = xres.ExitCode
	return true, xres.ExitCode != 0
}

func (c *Ctx) reportError(err error, logger *slog.Logger) {
	kind := shelferr.KindOf(err)
	logger.Error("command failed", "kind", kind.String(), "error", err)
	fmt.Fprintln(os.Stderr, err.Error())
	c.LastExitCode = 1
}

// renderPrompt gathers the Vars component J needs from the Ctx aggregate
// and decodes the configured template, per §4.9.
func renderPrompt(c *Ctx) string {
	rt := c.Runtime
	user, host := prompt.CurrentUserHost()
	wsid, ws := rt.Workspaces.Current()
	cwd := ws.Path
	short := cwd
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(cwd, home) {
		short = "~" + strings.TrimPrefix(cwd, home)
	}
	short = filepath.Base(short)

	if c.Cfg.MaxPath > 0 {
		cwd, _ = strutil.TruncateEllipsis(cwd, c.Cfg.MaxPath)
	}

	vars := prompt.Vars{
		User:       user,
		Host:       host,
		Cwd:        cwd,
		CwdShort:   short,
		WSID:       wsid,
		WSName:     ws.Name,
		ExitCode:   c.LastExitCode,
		IsRoot:     os.Geteuid() == 0,
		AutocmdSet: c.Autocmds.Active(),
		Stats: prompt.DirStats{
			Regular: rt.Stats.Files,
			Dirs:    rt.Stats.Dirs,
			Broken:  rt.Stats.Broken,
		},
		Proc: prompt.ProcState{
			SelectionCount: rt.Selection.Len(),
		},
	}
	return prompt.Render(c.Cfg.Prompt.Regular, c.Cfg.Prompt.Warning, c.LastCmdInvalid, vars, time.Now())
}
