package listing

import (
	"path/filepath"
	"regexp"

	"github.com/tinyland/shelf/pkg/entry"
)

// FilterKind names the filter mode of a FilterSpec.
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterGlob
	FilterRegex
	FilterFileType
)

// FilterSpec is §3's FilterSpec entity: an optional filter applied to
// the basename (Glob/Regex) or to the resolved Kind (FileType), with an
// Inverted flag to negate the match.
type FilterSpec struct {
	Kind     FilterKind
	Pattern  string
	Inverted bool
}

// compiled lazily rather than up front: filters are set rarely (the `ft`
// command) and applied on every relist, so caching the compiled regex
// on the spec avoids recompiling per entry within one listing.
type compiledFilter struct {
	spec FilterSpec
	re   *regexp.Regexp
}

// Compile validates spec and returns a matcher usable across one
// listing pass. For FilterNone it returns a matcher that accepts
// everything.
func Compile(spec FilterSpec) (*compiledFilter, error) {
	cf := &compiledFilter{spec: spec}
	if spec.Kind == FilterRegex {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, err
		}
		cf.re = re
	}
	return cf, nil
}

// Match reports whether e passes the filter, after applying Inverted.
func (cf *compiledFilter) Match(e entry.FileEntry) bool {
	if cf == nil || cf.spec.Kind == FilterNone {
		return true
	}

	var ok bool
	switch cf.spec.Kind {
	case FilterGlob:
		ok, _ = filepath.Match(cf.spec.Pattern, e.Name)
	case FilterRegex:
		ok = cf.re.MatchString(e.Name)
	case FilterFileType:
		ok = matchFileType(e, cf.spec.Pattern)
	}

	if cf.spec.Inverted {
		return !ok
	}
	return ok
}

// matchFileType compares a single-letter file-type code (as the `ft`
// command accepts: d, f, l, s, p, b, c) against e's Kind.
func matchFileType(e entry.FileEntry, code string) bool {
	if len(code) == 0 {
		return false
	}
	switch code[0] {
	case 'd':
		return e.Kind == entry.KindDirectory
	case 'f':
		return e.Kind == entry.KindRegular
	case 'l':
		return e.Kind == entry.KindSymlink
	case 's':
		return e.Kind == entry.KindSocket
	case 'p':
		return e.Kind == entry.KindFifo
	case 'b':
		return e.Kind == entry.KindBlockDev
	case 'c':
		return e.Kind == entry.KindCharDev
	default:
		return false
	}
}
