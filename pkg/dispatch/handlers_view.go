package dispatch

import (
	"github.com/tinyland/shelf/pkg/listing"
	"github.com/tinyland/shelf/pkg/shelferr"
)

func listingSortKeyOrDefault(s string, fallback listing.SortKey) listing.SortKey {
	if s == "" {
		return fallback
	}
	return listing.SortKey(s)
}

// handleSort implements `st`/`sort [key] [rev]`.
func handleSort(rt *Runtime, argv []string) (Result, error) {
	if len(argv) == 1 {
		return okOutput(string(rt.SortKey))
	}
	rt.SortKey = listing.SortKey(argv[1])
	rt.SortRev = len(argv) > 2 && (argv[2] == "rev" || argv[2] == "reverse")
	return ok(true)
}

// handleDirsFirst implements `ff`/`dirs-first [on|off]`.
func handleDirsFirst(rt *Runtime, argv []string) (Result, error) {
	rt.Cfg.ListDirsFirst = toggleArg(argv, rt.Cfg.ListDirsFirst)
	return ok(true)
}

// handleHidden implements `hf`/`hidden [on|off]`.
func handleHidden(rt *Runtime, argv []string) (Result, error) {
	rt.ListOpts.ShowHidden = toggleArg(argv, rt.ListOpts.ShowHidden)
	return ok(true)
}

// handleFilter implements `ft`/`filter [spec]`; an empty spec clears the
// active filter.
func handleFilter(rt *Runtime, argv []string) (Result, error) {
	if len(argv) == 1 {
		rt.ListOpts.Filter = listing.FilterSpec{}
		return ok(true)
	}
	spec := parseFilterArg(argv[1])
	if _, err := listing.Compile(spec); err != nil {
		return Result{Code: ExitMisuse}, shelferr.Wrap(shelferr.KindUsage, "filter", argv[1], err)
	}
	rt.ListOpts.Filter = spec
	return ok(true)
}

// parseFilterArg accepts "t:d" (file-type code), "r:^foo" (regex), a
// leading "!" to invert, and otherwise treats the argument as a glob.
func parseFilterArg(arg string) listing.FilterSpec {
	spec := listing.FilterSpec{Kind: listing.FilterGlob}
	if len(arg) > 0 && arg[0] == '!' {
		spec.Inverted = true
		arg = arg[1:]
	}
	if len(arg) > 2 && arg[1] == ':' {
		switch arg[0] {
		case 't':
			spec.Kind = listing.FilterFileType
			spec.Pattern = arg[2:]
			return spec
		case 'r':
			spec.Kind = listing.FilterRegex
			spec.Pattern = arg[2:]
			return spec
		}
	}
	spec.Pattern = arg
	return spec
}

// handleLong implements `lv`/`long [on|off]`.
func handleLong(rt *Runtime, argv []string) (Result, error) {
	rt.Cfg.LongView = toggleArg(argv, rt.Cfg.LongView)
	return ok(true)
}

// handlePager implements `pg`/`pager [on|off]`.
func handlePager(rt *Runtime, argv []string) (Result, error) {
	rt.Cfg.Pager = toggleArg(argv, rt.Cfg.Pager)
	return ok(false)
}

// handleMaxFiles implements `mf [N]`, the max-files-listed cap.
func handleMaxFiles(rt *Runtime, argv []string) (Result, error) {
	if len(argv) == 1 {
		return okOutput(itoaResult(rt.ListOpts.MaxFiles))
	}
	n, ok2 := parsePositiveInt(argv[1])
	if !ok2 {
		return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "mf", "expected a non-negative integer")
	}
	rt.ListOpts.MaxFiles = n
	return ok(true)
}

// handleLightMode implements `ll` (toggle light mode: skip costly stats).
func handleLightMode(rt *Runtime, argv []string) (Result, error) {
	rt.ListOpts.LightMode = toggleArg(argv, rt.ListOpts.LightMode)
	return ok(true)
}

func toggleArg(argv []string, cur bool) bool {
	if len(argv) < 2 {
		return !cur
	}
	switch argv[1] {
	case "on":
		return true
	case "off":
		return false
	default:
		return !cur
	}
}

func parsePositiveInt(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

func itoaResult(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}
