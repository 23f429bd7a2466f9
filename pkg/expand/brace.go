package expand

import (
	"strconv"
	"strings"
)

// ExpandBrace expands every `{a,b,c}` and `{n..m}` brace group in s,
// taking the Cartesian product across multiple groups in the token, per
// §4.5 step 4 and §8 invariant 6 ("echo {a,b,c}{1..2}" expands to
// "a1 a2 b1 b2 c1 c2" in that order). An unmatched brace is left
// literal rather than erroring.
func ExpandBrace(s string) []string {
	start, end, ok := findBraceGroup(s)
	if !ok {
		return []string{s}
	}

	prefix, group, suffix := s[:start], s[start+1:end], s[end+1:]
	alternatives := braceAlternatives(group)

	var out []string
	for _, alt := range alternatives {
		for _, rest := range ExpandBrace(suffix) {
			out = append(out, prefix+alt+rest)
		}
	}
	return out
}

// findBraceGroup locates the first top-level {...} span in s, returning
// its start/end byte indices (end pointing at the closing brace). ok is
// false if there is no matched pair.
func findBraceGroup(s string) (start, end int, ok bool) {
	start = strings.IndexByte(s, '{')
	if start < 0 {
		return 0, 0, false
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return start, i, true
			}
		}
	}
	return 0, 0, false
}

// braceAlternatives expands one brace group's contents: a comma list, or
// a numeric range "n..m".
func braceAlternatives(group string) []string {
	if alts, ok := numericRange(group); ok {
		return alts
	}
	if !strings.Contains(group, ",") {
		return []string{"{" + group + "}"} // not a real brace group; keep literal
	}
	return splitTopLevelCommas(group)
}

// numericRange parses "n..m" (optionally with a leading sign) into the
// inclusive list of decimal strings from n to m, ascending or descending
// as the bounds dictate.
func numericRange(group string) ([]string, bool) {
	idx := strings.Index(group, "..")
	if idx < 0 {
		return nil, false
	}
	lo, err1 := strconv.Atoi(group[:idx])
	hi, err2 := strconv.Atoi(group[idx+2:])
	if err1 != nil || err2 != nil {
		return nil, false
	}

	var out []string
	if lo <= hi {
		for n := lo; n <= hi; n++ {
			out = append(out, strconv.Itoa(n))
		}
	} else {
		for n := lo; n >= hi; n-- {
			out = append(out, strconv.Itoa(n))
		}
	}
	return out, true
}

// splitTopLevelCommas splits group on commas that are not nested inside
// another brace group.
func splitTopLevelCommas(group string) []string {
	var out []string
	depth := 0
	last := 0
	for i := 0; i < len(group); i++ {
		switch group[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, group[last:i])
				last = i + 1
			}
		}
	}
	out = append(out, group[last:])
	return out
}
