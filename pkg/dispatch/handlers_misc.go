package dispatch

import (
	"strconv"

	"github.com/tinyland/shelf/pkg/nav"
	"github.com/tinyland/shelf/pkg/shelferr"
)

// handleBD implements `bd [pattern]`: climb to an ancestor whose
// basename matches pattern. A single match chdirs directly; several
// matches are reported as a numbered menu for a follow-up `bd N`; a
// fastback pattern ("..", "...", …) is the literal N-levels-up.
func handleBD(rt *Runtime, argv []string) (Result, error) {
	pattern := ""
	if len(argv) > 1 {
		pattern = argv[1]
	}
	cwd := rt.CWD()

	if n := nav.FastbackLevels(pattern); n > 0 {
		dest := nav.FastbackTarget(cwd, n)
		rt.Workspaces.SetPath(dest)
		rt.DirHist.Push(dest)
		return ok(true)
	}
	if idx, err := strconv.Atoi(pattern); err == nil {
		matches := nav.BackDirMatches(cwd, "", rt.Cfg.CaseSensPathComp)
		if idx < 1 || idx > len(matches) {
			return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "bd", "no such menu entry")
		}
		dest := matches[idx-1]
		rt.Workspaces.SetPath(dest)
		rt.DirHist.Push(dest)
		return ok(true)
	}

	matches := nav.BackDirMatches(cwd, pattern, rt.Cfg.CaseSensPathComp)
	switch len(matches) {
	case 0:
		return Result{Code: ExitFailure}, shelferr.New(shelferr.KindNotFound, "bd", "no matching ancestor")
	case 1:
		rt.Workspaces.SetPath(matches[0])
		rt.DirHist.Push(matches[0])
		return ok(true)
	default:
		var out string
		for i, m := range matches {
			out += strconv.Itoa(i+1) + " " + m + "\n"
		}
		return okOutput(out)
	}
}

// handleQuit implements `q`/`quit`/`exit`: requests main-loop shutdown.
func handleQuit(rt *Runtime, argv []string) (Result, error) {
	rt.Quit = true
	return ok(false)
}

// handlePath implements `path`/`cwd`: prints the current workspace path.
func handlePath(rt *Runtime, argv []string) (Result, error) {
	return okOutput(rt.CWD() + "\n")
}

// handleRefresh implements `refresh`/`rf`/`rl`: forces a relist on the
// next prompt iteration without otherwise touching navigation state.
func handleRefresh(rt *Runtime, argv []string) (Result, error) {
	return ok(true)
}

// handleOpen implements `open`/`o <eln|name>`: it returns argv[1]
// unchanged as the result's Output. It does not check the target against
// the current listing and does not launch an opener.
func handleOpen(rt *Runtime, argv []string) (Result, error) {
	if len(argv) < 2 {
		return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "open", "missing target")
	}
	return Result{Code: ExitOK, Output: argv[1]}, nil
}

// handleHist implements `hist`: prints the recorded command history.
func handleHist(rt *Runtime, argv []string) (Result, error) {
	var out string
	for i, line := range rt.History.Lines() {
		out += strconv.Itoa(i+1) + "  " + line + "\n"
	}
	return okOutput(out)
}

// handleStats implements `stats`: prints the last listing's per-kind
// counts, gathered by the caller into Runtime before each prompt.
func handleStats(rt *Runtime, argv []string) (Result, error) {
	return okOutput(rt.Stats.String())
}

// handleProp implements `p`/`prop <eln|name>`: prints the stat(2)
// fields of one entry from the current listing, resolved by the
// caller-supplied lookup since Runtime only tracks basenames.
func handleProp(rt *Runtime, argv []string) (Result, error) {
	if len(argv) < 2 {
		return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "prop", "missing target")
	}
	if rt.PropLookup == nil {
		return Result{Code: ExitFailure}, shelferr.New(shelferr.KindInternal, "prop", "no listing loaded")
	}
	line, found := rt.PropLookup(argv[1])
	if !found {
		return Result{Code: ExitFailure}, shelferr.New(shelferr.KindNotFound, "prop", "no such entry: "+argv[1])
	}
	return okOutput(line + "\n")
}

// handleColorscheme implements `cs [name]`: with no argument, reports
// the active scheme name; otherwise records the new name in
// Cfg.ColorScheme and requests a relist. The palette in use is not
// reloaded: it is loaded once, in app.New.
func handleColorscheme(rt *Runtime, argv []string) (Result, error) {
	if len(argv) == 1 {
		return okOutput(rt.Cfg.ColorScheme + "\n")
	}
	rt.Cfg.ColorScheme = argv[1]
	return ok(true)
}

// handlePrompt implements `prompt [name]`: it prints the regular prompt
// template text (Config.Prompt.Regular). Any argument is ignored; there
// is no switching among named prompt definitions.
func handlePrompt(rt *Runtime, argv []string) (Result, error) {
	return okOutput(rt.Cfg.Prompt.Regular + "\n")
}

// handleSplash implements `splash`: it only flips (or sets, given an
// argument) Cfg.SplashScreen and does not draw the splash screen.
func handleSplash(rt *Runtime, argv []string) (Result, error) {
	rt.Cfg.SplashScreen = toggleArg(argv, rt.Cfg.SplashScreen)
	return ok(false)
}

// handleTrash is the external-collaborator stub for `t`: the
// trash/undelete subsystem is out of this specification's core
// (§1) and is invoked here only to confirm dispatch routing and report
// that it is unimplemented in this build.
func handleTrash(rt *Runtime, argv []string) (Result, error) {
	return Result{Code: ExitFailure}, shelferr.New(shelferr.KindUnimplemented, "t", "trash is an external collaborator, not part of this build")
}

// handleProfile is the external-collaborator stub for `pf` (§1).
func handleProfile(rt *Runtime, argv []string) (Result, error) {
	return Result{Code: ExitFailure}, shelferr.New(shelferr.KindUnimplemented, "pf", "profile management is an external collaborator, not part of this build")
}

// handleMime is the external-collaborator stub for `mm` (MIME-type
// dispatch rules live with the out-of-scope opener/associations file).
func handleMime(rt *Runtime, argv []string) (Result, error) {
	return Result{Code: ExitFailure}, shelferr.New(shelferr.KindUnimplemented, "mm", "mime association editing is an external collaborator, not part of this build")
}

// handleKeybinds is the external-collaborator stub for `kb` (§1: keybinding
// table loading is specified only as a contract the core consumes).
func handleKeybinds(rt *Runtime, argv []string) (Result, error) {
	return Result{Code: ExitFailure}, shelferr.New(shelferr.KindUnimplemented, "kb", "keybinding table editing is an external collaborator, not part of this build")
}

// handleLog is the external-collaborator stub for `log` (§1: logging is
// specified only as a contract the core consumes).
func handleLog(rt *Runtime, argv []string) (Result, error) {
	return Result{Code: ExitFailure}, shelferr.New(shelferr.KindUnimplemented, "log", "log viewing is an external collaborator, not part of this build")
}

// handleArchive is the external-collaborator stub for `ac` (§1: archive
// support).
func handleArchive(rt *Runtime, argv []string) (Result, error) {
	return Result{Code: ExitFailure}, shelferr.New(shelferr.KindUnimplemented, "ac", "archive creation is an external collaborator, not part of this build")
}

// handleDearchive is the external-collaborator stub for `ad` (§1: archive
// support).
func handleDearchive(rt *Runtime, argv []string) (Result, error) {
	return Result{Code: ExitFailure}, shelferr.New(shelferr.KindUnimplemented, "ad", "archive extraction is an external collaborator, not part of this build")
}

// handleMountpoints is the external-collaborator stub for `mp` (§1: the
// remotes/mountpoints helper).
func handleMountpoints(rt *Runtime, argv []string) (Result, error) {
	return Result{Code: ExitFailure}, shelferr.New(shelferr.KindUnimplemented, "mp", "mountpoint listing is an external collaborator, not part of this build")
}

// handleActions is the external-collaborator stub for `actions` (§1: the
// plugin dispatcher).
func handleActions(rt *Runtime, argv []string) (Result, error) {
	return Result{Code: ExitFailure}, shelferr.New(shelferr.KindUnimplemented, "actions", "the plugin dispatcher is an external collaborator, not part of this build")
}

// handleIcons is the external-collaborator stub for `icons` (§1: the icons
// subsystem).
func handleIcons(rt *Runtime, argv []string) (Result, error) {
	return Result{Code: ExitFailure}, shelferr.New(shelferr.KindUnimplemented, "icons", "icon rendering is an external collaborator, not part of this build")
}

// handleView implements `view`: it sets Cfg.LongView, which stays set
// afterwards, and requests a relist. The listing renderer does not read
// LongView, so the relisted layout is unchanged.
func handleView(rt *Runtime, argv []string) (Result, error) {
	rt.Cfg.LongView = true
	return ok(true)
}

