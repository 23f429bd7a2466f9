package nav

import (
	"path/filepath"
	"strings"
)

// BackDirMatches returns every ancestor of cwd (nearest first) whose
// basename matches pattern, for the `bd [pattern]` command. caseSens
// governs case sensitivity of the match, per config's
// case_sens_path_comp. A pattern of repeated ".." (fastback) is handled
// by the caller before reaching here, per §4.2: "pattern = `..` repeated
// N times is the literal N-levels-up".
func BackDirMatches(cwd, pattern string, caseSens bool) []string {
	if !caseSens {
		pattern = strings.ToLower(pattern)
	}

	var matches []string
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
		base := filepath.Base(dir)
		name := base
		if !caseSens {
			name = strings.ToLower(base)
		}
		if pattern == "" || strings.Contains(name, pattern) {
			matches = append(matches, dir)
		}
	}
	return matches
}

// FastbackLevels reports how many ".." components pattern consists of
// (e.g. "../.." -> 2), or 0 if it isn't a pure fastback pattern.
func FastbackLevels(pattern string) int {
	if pattern == "" {
		return 0
	}
	parts := strings.Split(pattern, "/")
	for _, p := range parts {
		if p != ".." {
			return 0
		}
	}
	return len(parts)
}

// FastbackTarget climbs n levels up from cwd.
func FastbackTarget(cwd string, n int) string {
	dir := cwd
	for i := 0; i < n; i++ {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return dir
}
