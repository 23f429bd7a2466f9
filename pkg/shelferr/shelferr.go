// Package shelferr provides the error taxonomy described by spec.md §7:
// every error the dispatcher or a subsystem returns carries a Kind so the
// prompt loop can choose a message and exit behavior without string
// matching.
package shelferr

import (
	"errors"
	"fmt"
)

// Kind classifies an Error for display and exit-code purposes.
type Kind int

const (
	KindUnknown Kind = iota
	KindUsage          // bad command arguments
	KindNotFound       // path/entry/bookmark/tag does not exist
	KindPermission     // permission denied on a filesystem operation
	KindNotADirectory  // operation required a directory and got a file
	KindNoSuchFile     // a named file argument does not exist
	KindUnterminated   // unterminated quote/brace during tokenization
	KindInternal       // a bug or invariant violation, not user error
	KindSignal         // operation was interrupted by a signal
	KindUnimplemented  // command recognized but not wired (stub handler)
)

// String names a Kind for logging.
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindNotFound:
		return "not-found"
	case KindPermission:
		return "permission"
	case KindNotADirectory:
		return "not-a-directory"
	case KindNoSuchFile:
		return "no-such-file"
	case KindUnterminated:
		return "unterminated"
	case KindInternal:
		return "internal"
	case KindSignal:
		return "signal"
	case KindUnimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Error is the wrapped error type every package in shelf returns for a
// user-facing failure. Op names the operation that failed (a command
// name, an internal function), Path is the filesystem path involved if
// any, and Err is the underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Path, e.Err.Error())
	case e.Err != nil:
		return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Path)
	default:
		return e.Op
	}
}

// Unwrap returns the underlying cause so errors.Is/As see through Error.
func (e *Error) Unwrap() error {
	return e.Err
}

var _ error = &Error{}

// New builds an *Error with no wrapped cause and no path, for failures
// that originate inside shelf itself (e.g. bad command syntax).
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.New(msg)}
}

// Wrap attaches a Kind and Op to an underlying error, e.g. one returned
// by os.Open, without discarding it.
func Wrap(kind Kind, op, path string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf extracts the Kind of err if it is (or wraps) a *shelferr.Error,
// and KindUnknown otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err is a *shelferr.Error of the given Kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
