package complete

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFuzzyScoreExactMatchBeatsNothing(t *testing.T) {
	score, ok := FuzzyScore("readme", "readme")
	if !ok || score <= 0 {
		t.Fatalf("expected exact match to score positively, got %d ok=%v", score, ok)
	}
}

func TestFuzzyScorePrefixBeatsScattered(t *testing.T) {
	prefixScore, ok := FuzzyScore("rea", "readme.md")
	if !ok {
		t.Fatal("expected prefix match")
	}
	scatteredScore, ok := FuzzyScore("rme", "readme.md")
	if !ok {
		t.Fatal("expected scattered match")
	}
	if prefixScore <= scatteredScore {
		t.Fatalf("expected prefix score %d > scattered score %d", prefixScore, scatteredScore)
	}
}

func TestFuzzyScoreNoMatch(t *testing.T) {
	if _, ok := FuzzyScore("xyz", "readme.md"); ok {
		t.Fatalf("expected no match")
	}
}

func TestFuzzyScoreCaseInsensitive(t *testing.T) {
	score, ok := FuzzyScore("README", "readme.md")
	if !ok || score <= 0 {
		t.Fatalf("expected case-insensitive prefix match, got %d ok=%v", score, ok)
	}
}

func TestFilterAndRankOrdersByScoreDescending(t *testing.T) {
	pool := []string{"zzz_readme", "readme.md", "xreadmex"}
	ranked := FilterAndRank("readme", pool)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(ranked), ranked)
	}
	if ranked[0].Text != "readme.md" {
		t.Fatalf("expected prefix match to rank first, got %q", ranked[0].Text)
	}
}

func TestCompletePrefixCaseInsensitive(t *testing.T) {
	got := Complete("doc", []string{"Documents", "downloads", "docs"}, Options{})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}
}

func TestCompletePrefixCaseSensitive(t *testing.T) {
	got := Complete("Doc", []string{"Documents", "docs"}, Options{CaseSensitive: true})
	if len(got) != 1 || got[0] != "Documents" {
		t.Fatalf("got %v", got)
	}
}

func TestCompleteFuzzy(t *testing.T) {
	got := Complete("dwn", []string{"downloads", "documents"}, Options{Fuzzy: true})
	if len(got) != 1 || got[0] != "downloads" {
		t.Fatalf("got %v", got)
	}
}

func TestResolveContextSigils(t *testing.T) {
	if ResolveContext([]string{"open"}, "b:work") != CtxBookmark {
		t.Fatalf("expected b: sigil to force bookmark context")
	}
	if ResolveContext([]string{"open"}, "$HOME") != CtxVariable {
		t.Fatalf("expected $ sigil to force variable context")
	}
}

func TestResolveContextFirstTokenIsCommand(t *testing.T) {
	if ResolveContext(nil, "") != CtxCommand {
		t.Fatalf("expected empty argv to resolve to command context")
	}
	if ResolveContext([]string{"l"}, "l") != CtxCommand {
		t.Fatalf("expected first token to resolve to command context")
	}
}

func TestResolveContextInternalParam(t *testing.T) {
	if ResolveContext([]string{"bm", "my"}, "my") != CtxBookmark {
		t.Fatalf("expected bm subcommand args to resolve to bookmark context")
	}
}

func TestResolveContextDefaultsToPath(t *testing.T) {
	if ResolveContext([]string{"cd", "sub"}, "sub") != CtxPath {
		t.Fatalf("expected cd args to resolve to path context")
	}
}

func TestSuggestFixedStrategyOrder(t *testing.T) {
	src := SuggestSources{
		Aliases:   map[string]string{"ll": "ls -l"},
		Bookmarks: []string{"llama-notes"},
		Opts:      Options{},
	}
	sug, ok := Suggest("ll", src)
	if !ok || sug.Strategy != StrategyAlias {
		t.Fatalf("expected alias strategy to win first, got %+v ok=%v", sug, ok)
	}
}

func TestSuggestFallsThroughToFilename(t *testing.T) {
	src := SuggestSources{
		Filenames: []string{"report.pdf"},
		Opts:      Options{},
	}
	sug, ok := Suggest("rep", src)
	if !ok || sug.Strategy != StrategyFilename || sug.Text != "report.pdf" {
		t.Fatalf("got %+v ok=%v", sug, ok)
	}
}

func TestSuggestELN(t *testing.T) {
	src := SuggestSources{ELNNames: []string{"a.txt", "b.txt"}}
	sug, ok := Suggest("2", src)
	if !ok || sug.Strategy != StrategyELN || sug.Text != "b.txt" {
		t.Fatalf("got %+v ok=%v", sug, ok)
	}
}

func TestSuggestNoMatchReturnsFalse(t *testing.T) {
	if _, ok := Suggest("zzz", SuggestSources{}); ok {
		t.Fatalf("expected no suggestion")
	}
}

func TestPathCandidatesListsDir(t *testing.T) {
	dir := t.TempDir()
	mustTouch(t, dir, "alpha.txt")
	mustTouch(t, dir, "beta.txt")
	got := PathCandidates(dir, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", got)
	}
}

func mustTouch(t *testing.T, dir, name string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
}
