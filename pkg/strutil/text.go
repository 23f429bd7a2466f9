// Package strutil provides the UTF-8-aware string primitives shared by
// the listing engine, prompt renderer, and completion engine: display
// width, truncation with an ellipsis mark, padding, case-folded search,
// and natural (version-aware) comparison.
package strutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible character width of s in terminal cells.
// ANSI escape sequences are ignored. Wide characters (CJK, emoji) are
// counted as width 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate truncates s to at most maxWidth visible characters, preserving
// any ANSI escape sequences that appear before the cut point. If s is
// already within maxWidth, it is returned unchanged.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// TruncateEllipsis truncates s to at most maxWidth visible columns,
// reserving the last column for a single ellipsis rune when truncation
// occurs, and reports whether truncation happened (§4.1 step 4: the
// listing engine records this to display a mark next to the name).
func TruncateEllipsis(s string, maxWidth int) (truncated string, didTruncate bool) {
	if maxWidth <= 0 {
		return "", VisibleLen(s) > 0
	}
	if VisibleLen(s) <= maxWidth {
		return s, false
	}
	if maxWidth == 1 {
		return "…", true
	}
	return ansi.Truncate(s, maxWidth, "…"), true
}

// PadRight pads s with trailing spaces so that its visible width equals
// width. If s is already wider than width, it is returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadLeft pads s with leading spaces so that its visible width equals
// width. If s is already wider than width, it is returned unchanged.
func PadLeft(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return strings.Repeat(" ", width-vis) + s
}

// ContainsFold reports whether substr appears in s under Unicode
// case-folding.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Escape backslash-escapes characters that are significant to the
// tokenizer (space, tab, quotes, backslash, and the glob/brace/variable
// sigils) so that a name can be safely re-entered at the prompt.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '\t', '\'', '"', '\\', '`', '$', '&', ';', '|', '(', ')', '{', '}', '[', ']', '*', '?', '~':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Unescape reverses Escape: each backslash removes itself and preserves
// the following byte literally.
func Unescape(s string) string {
	var b strings.Builder
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		b.WriteByte(c)
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}
