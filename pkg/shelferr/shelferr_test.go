package shelferr

import (
	"errors"
	"os"
	"testing"
)

func TestWrapUnwrap(t *testing.T) {
	cause := os.ErrNotExist
	err := Wrap(KindNoSuchFile, "cd", "/no/such/dir", cause)

	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected errors.Is to see through to the wrapped cause")
	}
	if KindOf(err) != KindNoSuchFile {
		t.Fatalf("expected KindNoSuchFile, got %v", KindOf(err))
	}
	if !Is(err, KindNoSuchFile) {
		t.Fatalf("expected Is(err, KindNoSuchFile) to be true")
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if Wrap(KindInternal, "op", "", nil) != nil {
		t.Fatalf("expected Wrap(nil) to return nil")
	}
}

func TestKindOfPlainError(t *testing.T) {
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Fatalf("expected KindUnknown for a plain error")
	}
}

func TestNewErrorMessage(t *testing.T) {
	err := New(KindUsage, "mv", "missing destination argument")
	if err.Error() != "mv: missing destination argument" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestKindString(t *testing.T) {
	if KindNotFound.String() != "not-found" {
		t.Fatalf("unexpected Kind string: %q", KindNotFound.String())
	}
}
