package dispatch

import (
	"strconv"
	"time"

	"github.com/tinyland/shelf/pkg/nav"
	"github.com/tinyland/shelf/pkg/shelferr"
)

func handleCD(rt *Runtime, argv []string) (Result, error) {
	target := ""
	if len(argv) > 1 {
		target = argv[1]
	}
	dest, err := nav.Resolve(target, rt.CWD(), rt.CDPath, rt.PinnedDir)
	if err != nil {
		return Result{Code: ExitFailure}, shelferr.Wrap(shelferr.KindNotFound, "cd", target, err)
	}
	rt.Workspaces.SetPath(dest)
	rt.DirHist.Push(dest)
	rt.JumpDB.Visit(dest, time.Now())
	return ok(true)
}

// handleBack implements `b` (back in dirhistory).
func handleBack(rt *Runtime, argv []string) (Result, error) {
	dest, err := rt.DirHist.Back()
	if err != nil {
		return Result{Code: ExitFailure}, shelferr.Wrap(shelferr.KindNotFound, "b", "", err)
	}
	rt.Workspaces.SetPath(dest)
	return ok(true)
}

// handleForth implements `f` (forward in dirhistory).
func handleForth(rt *Runtime, argv []string) (Result, error) {
	dest, err := rt.DirHist.Forth()
	if err != nil {
		return Result{Code: ExitFailure}, shelferr.Wrap(shelferr.KindNotFound, "f", "", err)
	}
	rt.Workspaces.SetPath(dest)
	return ok(true)
}

// handleWS implements `ws [N|name|+|-] [unset]`: with no argument, lists
// every slot; `ws N|name unset` clears that slot; otherwise switches.
func handleWS(rt *Runtime, argv []string) (Result, error) {
	opts := currentPerWSOpts(rt)

	if len(argv) == 1 {
		var out string
		for i, w := range rt.Workspaces.All() {
			out += wsLine(i, w, rt.Workspaces)
		}
		return okOutput(out)
	}

	arg := argv[1]
	if len(argv) > 2 && argv[2] == "unset" {
		n, err := strconv.Atoi(arg)
		if err == nil {
			n--
		} else if idx, found := rt.Workspaces.IndexByName(arg); found {
			n = idx
		} else {
			return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "ws", "unknown workspace "+arg)
		}
		if err := rt.Workspaces.Unset(n); err != nil {
			return Result{Code: ExitMisuse}, err
		}
		return ok(false)
	}
	switch arg {
	case "+":
		w, err := rt.Workspaces.Rotate(1, opts)
		return applyWSSwitch(rt, w, err)
	case "-":
		w, err := rt.Workspaces.Rotate(-1, opts)
		return applyWSSwitch(rt, w, err)
	}
	if n, err := strconv.Atoi(arg); err == nil {
		w, err := rt.Workspaces.Switch(n-1, opts)
		return applyWSSwitch(rt, w, err)
	}
	if n, found := rt.Workspaces.IndexByName(arg); found {
		w, err := rt.Workspaces.Switch(n, opts)
		return applyWSSwitch(rt, w, err)
	}
	return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "ws", "unknown workspace "+arg)
}

func currentPerWSOpts(rt *Runtime) nav.PerWSOpts {
	return nav.PerWSOpts{
		Sort:        string(rt.SortKey),
		SortReverse: rt.SortRev,
		ShowHidden:  rt.ListOpts.ShowHidden,
	}
}

func applyWSSwitch(rt *Runtime, w nav.Workspace, err error) (Result, error) {
	if err != nil {
		return Result{Code: ExitFailure}, err
	}
	if rt.Cfg != nil && rt.Cfg.PrivateWSSettings {
		rt.SortKey = listingSortKeyOrDefault(w.Opts.Sort, rt.SortKey)
		rt.SortRev = w.Opts.SortReverse
		rt.ListOpts.ShowHidden = w.Opts.ShowHidden
	}
	return ok(true)
}

func wsLine(i int, w nav.Workspace, ws *nav.Workspaces) string {
	cur, _ := ws.Current()
	marker := " "
	if cur == i {
		marker = "*"
	}
	name := w.Name
	if name == "" {
		name = "-"
	}
	path := w.Path
	if path == "" {
		path = "(unset)"
	}
	return marker + " " + strconv.Itoa(i+1) + " " + name + " " + path + "\n"
}
