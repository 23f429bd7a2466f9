package dispatch

import (
	"path/filepath"

	"github.com/tinyland/shelf/pkg/expand"
)

// handleSelect implements `sel <specs>…`: each spec is an ELN, an ELN
// range, a glob, an absolute path, the literal "sel" (no-op, matches the
// command name itself appearing as its own argument), or `~user`.
func handleSelect(rt *Runtime, argv []string) (Result, error) {
	paths := resolveSelectionSpecs(rt, argv[1:])
	if len(paths) == 0 {
		return ok(false)
	}
	if err := rt.Selection.Add(paths...); err != nil {
		return Result{Code: ExitFailure}, err
	}
	return ok(false)
}

// handleDeselect implements `desel <specs>|*`.
func handleDeselect(rt *Runtime, argv []string) (Result, error) {
	if len(argv) > 1 && argv[1] == "*" {
		if err := rt.Selection.Clear(); err != nil {
			return Result{Code: ExitFailure}, err
		}
		return ok(false)
	}
	paths := resolveSelectionSpecs(rt, argv[1:])
	if len(paths) == 0 {
		return ok(false)
	}
	if err := rt.Selection.Remove(paths...); err != nil {
		return Result{Code: ExitFailure}, err
	}
	return ok(false)
}

// handleSelboxList implements `sb`: prints the current selection.
func handleSelboxList(rt *Runtime, argv []string) (Result, error) {
	var out string
	for _, p := range rt.Selection.List() {
		out += p + "\n"
	}
	return okOutput(out)
}

func resolveSelectionSpecs(rt *Runtime, specs []string) []string {
	names := rt.listingNames()
	cwd := rt.CWD()
	var out []string
	for _, spec := range specs {
		if spec == "sel" {
			continue
		}
		if names, ok := expand.ExpandELN(spec, names); ok {
			for _, n := range names {
				out = append(out, filepath.Join(cwd, n))
			}
			continue
		}
		if filepath.IsAbs(spec) {
			out = append(out, expand.ExpandGlob(spec, cwd)...)
			continue
		}
		resolved := expand.ExpandTilde(spec)
		if resolved != spec {
			out = append(out, resolved)
			continue
		}
		for _, m := range expand.ExpandGlob(spec, cwd) {
			if filepath.IsAbs(m) {
				out = append(out, m)
			} else {
				out = append(out, filepath.Join(cwd, m))
			}
		}
	}
	return out
}

func (rt *Runtime) listingNames() []string {
	if rt.Names == nil {
		return nil
	}
	return rt.Names()
}
