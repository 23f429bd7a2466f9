package dispatch

import (
	"time"

	"github.com/tinyland/shelf/pkg/shelferr"
)

// handleJump implements `j <words>…`: the highest-ranked directory whose
// path contains every word as an in-order substring.
func handleJump(rt *Runtime, argv []string) (Result, error) {
	if len(argv) < 2 {
		return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "j", "missing search words")
	}
	dest := rt.JumpDB.Query(argv[1:], time.Now(), rt.Cfg.CaseSensDirJump)
	if dest == "" {
		return Result{Code: ExitFailure}, shelferr.New(shelferr.KindNotFound, "j", "no match")
	}
	rt.Workspaces.SetPath(dest)
	rt.DirHist.Push(dest)
	rt.JumpDB.Visit(dest, time.Now())
	return ok(true)
}

// handleJumpList implements `jl`: lists every jump DB entry by rank.
func handleJumpList(rt *Runtime, argv []string) (Result, error) {
	var out string
	for _, e := range rt.JumpDB.List(time.Now()) {
		out += e.Path + "\n"
	}
	return okOutput(out)
}

// handleJumpChildren implements `jc`: entries that are children of CWD.
func handleJumpChildren(rt *Runtime, argv []string) (Result, error) {
	var out string
	for _, e := range rt.JumpDB.Children(rt.CWD(), time.Now()) {
		out += e.Path + "\n"
	}
	return okOutput(out)
}

// handleJumpParent implements `jp`: CWD's parent entry, if tracked.
func handleJumpParent(rt *Runtime, argv []string) (Result, error) {
	e, found := rt.JumpDB.Parent(rt.CWD())
	if !found {
		return Result{Code: ExitFailure}, shelferr.New(shelferr.KindNotFound, "jp", "parent not tracked")
	}
	rt.Workspaces.SetPath(e.Path)
	rt.DirHist.Push(e.Path)
	return ok(true)
}
