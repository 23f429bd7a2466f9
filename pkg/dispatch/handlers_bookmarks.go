package dispatch

import "github.com/tinyland/shelf/pkg/shelferr"

// handleBookmark implements `bm`: `bm` lists, `bm add name [shortcut]
// [path]` adds (path defaults to CWD, shortcut to none), `bm del name`
// removes, and a bare `bm key` jumps to the bookmark by name or
// shortcut.
func handleBookmark(rt *Runtime, argv []string) (Result, error) {
	if len(argv) == 1 {
		var out string
		for _, b := range rt.Bookmarks.List() {
			out += "[" + b.Shortcut + "] " + b.Name + " -> " + b.Path + "\n"
		}
		return okOutput(out)
	}

	switch argv[1] {
	case "add":
		return bmAdd(rt, argv[2:])
	case "del", "rm":
		if len(argv) < 3 {
			return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "bm del", "missing bookmark name")
		}
		if err := rt.Bookmarks.Remove(argv[2]); err != nil {
			return Result{Code: ExitFailure}, err
		}
		return ok(false)
	default:
		bmk, found := rt.Bookmarks.Resolve(argv[1])
		if !found {
			return Result{Code: ExitFailure}, shelferr.New(shelferr.KindNotFound, "bm", "no such bookmark: "+argv[1])
		}
		rt.Workspaces.SetPath(bmk.Path)
		rt.DirHist.Push(bmk.Path)
		return ok(true)
	}
}

func bmAdd(rt *Runtime, rest []string) (Result, error) {
	if len(rest) == 0 {
		return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "bm add", "missing bookmark name")
	}
	name := rest[0]
	shortcut := ""
	path := rt.CWD()
	if len(rest) > 1 {
		shortcut = rest[1]
	}
	if len(rest) > 2 {
		path = rest[2]
	}
	if err := rt.Bookmarks.Add(name, shortcut, path); err != nil {
		return Result{Code: ExitFailure}, err
	}
	return ok(false)
}
