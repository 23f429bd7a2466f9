package listing

import (
	"testing"

	"github.com/tinyland/shelf/pkg/entry"
)

func names(entries []entry.FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSortNameStableDirsFirst(t *testing.T) {
	entries := []entry.FileEntry{
		{Name: "b.txt", Kind: entry.KindRegular},
		{Name: "sub", Kind: entry.KindDirectory},
		{Name: "a.txt", Kind: entry.KindRegular},
	}
	Sort(entries, SortName, false, true, true)
	got := names(entries)
	want := []string{"sub", "a.txt", "b.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSortReverse(t *testing.T) {
	entries := []entry.FileEntry{
		{Name: "a.txt"},
		{Name: "b.txt"},
		{Name: "c.txt"},
	}
	Sort(entries, SortName, true, false, true)
	got := names(entries)
	want := []string{"c.txt", "b.txt", "a.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSortVersionNatural(t *testing.T) {
	entries := []entry.FileEntry{
		{Name: "img10.txt"},
		{Name: "img2.txt"},
		{Name: "img1.txt"},
	}
	Sort(entries, SortVersion, false, false, true)
	got := names(entries)
	want := []string{"img1.txt", "img2.txt", "img10.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSortSize(t *testing.T) {
	entries := []entry.FileEntry{
		{Name: "big", Stat: entry.Stat{Size: 300}},
		{Name: "small", Stat: entry.Stat{Size: 10}},
		{Name: "mid", Stat: entry.Stat{Size: 100}},
	}
	Sort(entries, SortSize, false, false, true)
	got := names(entries)
	want := []string{"small", "mid", "big"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
