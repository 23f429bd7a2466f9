package prompt

import (
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, time.July, 29, 14, 30, 0, 0, time.UTC)
}

func TestDecodeUserHostCwd(t *testing.T) {
	vars := Vars{User: "ana", Host: "box.example.com", Cwd: "/home/ana", CwdShort: "~"}
	got := Decode(`\u@\h \w`, vars, fixedNow())
	if got != "ana@box /home/ana" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodePromptCharRoot(t *testing.T) {
	got := Decode(`\p`, Vars{IsRoot: true}, fixedNow())
	if got != "#" {
		t.Fatalf("got %q", got)
	}
	got = Decode(`\p`, Vars{IsRoot: false}, fixedNow())
	if got != "$" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeWorkspaceAndExitCode(t *testing.T) {
	vars := Vars{WSID: 2, WSName: "work", ExitCode: 1}
	got := Decode(`\S \z`, vars, fixedNow())
	if got != "2:work 1" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeSelectionCountEmptyWhenZero(t *testing.T) {
	vars := Vars{Proc: ProcState{SelectionCount: 0}}
	got := Decode(`[\*]`, vars, fixedNow())
	if got != "[]" {
		t.Fatalf("got %q", got)
	}
	vars.Proc.SelectionCount = 3
	got = Decode(`[\*]`, vars, fixedNow())
	if got != "[3]" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeColorEscapeWrappedInIgnoreMarkers(t *testing.T) {
	got := Decode("\x1b[36mfoo\x1b[0m", Vars{}, fixedNow())
	if !strings.Contains(got, ignoreStart) || !strings.Contains(got, ignoreEnd) {
		t.Fatalf("expected color codes wrapped in ignore markers, got %q", got)
	}
	if !strings.Contains(got, "foo") {
		t.Fatalf("expected literal text to survive, got %q", got)
	}
}

func TestDecodeAutocmdMark(t *testing.T) {
	got := Decode(`\@`, Vars{AutocmdSet: true}, fixedNow())
	if got != "*" {
		t.Fatalf("got %q", got)
	}
	got = Decode(`\@`, Vars{AutocmdSet: false}, fixedNow())
	if got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeCommandSubstitution(t *testing.T) {
	got := Decode(`hi $(echo there)`, Vars{}, fixedNow())
	if got != "hi there" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderPicksWarningVariant(t *testing.T) {
	got := Render(`\p `, `! `, true, Vars{}, fixedNow())
	if got != "! " {
		t.Fatalf("got %q", got)
	}
	got = Render(`\p `, `! `, false, Vars{}, fixedNow())
	if got != "$ " {
		t.Fatalf("got %q", got)
	}
}

func TestShortHost(t *testing.T) {
	if shortHost("box.example.com") != "box" {
		t.Fatalf("got %q", shortHost("box.example.com"))
	}
	if shortHost("box") != "box" {
		t.Fatalf("got %q", shortHost("box"))
	}
}
