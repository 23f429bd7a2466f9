package listing

import (
	"strings"
	"testing"
)

type fakeKeys struct {
	keys []rune
	i    int
}

func (f *fakeKeys) ReadKey() (rune, error) {
	if f.i >= len(f.keys) {
		return 'q', nil
	}
	k := f.keys[f.i]
	f.i++
	return k, nil
}

func TestPageQuitStopsEarly(t *testing.T) {
	var buf strings.Builder
	rendered := strings.Join([]string{"1", "2", "3", "4", "5", "6"}, "\n")
	err := Page(&buf, rendered, 4, &fakeKeys{keys: []rune{'q'}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "2") || strings.Contains(buf.String(), "3") {
		t.Fatalf("expected only the first page before quitting, got %q", buf.String())
	}
}

func TestPageAdvancesFullPages(t *testing.T) {
	var buf strings.Builder
	lines := []string{"1", "2", "3", "4", "5", "6"}
	rendered := strings.Join(lines, "\n")
	err := Page(&buf, rendered, 4, &fakeKeys{keys: []rune{' ', ' '}})
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range lines {
		if !strings.Contains(buf.String(), l) {
			t.Fatalf("expected output to contain line %q", l)
		}
	}
}

func TestShouldPage(t *testing.T) {
	rendered := strings.Repeat("x\n", 30)
	if !ShouldPage(rendered, 10) {
		t.Fatalf("expected ShouldPage true for tall output")
	}
	if ShouldPage("a\nb\n", 10) {
		t.Fatalf("expected ShouldPage false for short output")
	}
}
