package expand

import "path/filepath"

// ExpandGlob expands tok against the filesystem relative to dir. A token
// with no glob metacharacters, or one that matches nothing, is kept
// literal ("shell-compatible no-match"), per §4.5 step 8.
func ExpandGlob(tok, dir string) []string {
	if !hasGlobMeta(tok) {
		return []string{tok}
	}

	pattern := tok
	if !filepath.IsAbs(tok) {
		pattern = filepath.Join(dir, tok)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return []string{tok}
	}

	if filepath.IsAbs(tok) {
		return matches
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		rel, err := filepath.Rel(dir, m)
		if err != nil {
			rel = m
		}
		out[i] = rel
	}
	return out
}

func hasGlobMeta(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '[':
			return true
		}
	}
	return false
}
