package complete

import "strings"

// Strategy names the fixed suggestion order from §4.8: alias, bookmark,
// completion, ELN, filename, history, jumpdb. The first strategy that
// yields a non-empty match wins.
type Strategy int

const (
	StrategyAlias Strategy = iota
	StrategyBookmark
	StrategyCompletion
	StrategyELN
	StrategyFilename
	StrategyHistory
	StrategyJumpDB
)

var strategyOrder = []Strategy{
	StrategyAlias,
	StrategyBookmark,
	StrategyCompletion,
	StrategyELN,
	StrategyFilename,
	StrategyHistory,
	StrategyJumpDB,
}

// Suggestion is the winning ghost-text candidate plus which strategy
// produced it.
type Suggestion struct {
	Text     string
	Strategy Strategy
}

// SuggestSources bundles the lookup pools each strategy draws from. A
// nil or empty source is simply skipped, falling through to the next
// strategy in order.
type SuggestSources struct {
	Aliases   map[string]string
	Bookmarks []string
	Commands  []string
	ELNNames  []string
	Filenames []string
	History   []string
	JumpPaths []string
	Opts      Options
}

// Suggest runs the fixed strategy order against the current input line
// and returns the first non-empty match, or (Suggestion{}, false) if no
// strategy produced one.
func Suggest(line string, src SuggestSources) (Suggestion, bool) {
	if line == "" {
		return Suggestion{}, false
	}

	for _, strat := range strategyOrder {
		if text, ok := runStrategy(strat, line, src); ok {
			return Suggestion{Text: text, Strategy: strat}, true
		}
	}
	return Suggestion{}, false
}

func runStrategy(strat Strategy, line string, src SuggestSources) (string, bool) {
	switch strat {
	case StrategyAlias:
		return firstWithPrefixFromMap(line, src.Aliases)
	case StrategyBookmark:
		return firstWithPrefix(line, src.Bookmarks, src.Opts)
	case StrategyCompletion:
		return firstWithPrefix(line, src.Commands, src.Opts)
	case StrategyELN:
		return elnSuggestion(line, src.ELNNames)
	case StrategyFilename:
		return firstWithPrefix(line, src.Filenames, src.Opts)
	case StrategyHistory:
		return firstWithPrefix(line, src.History, src.Opts)
	case StrategyJumpDB:
		return firstWithPrefix(line, src.JumpPaths, src.Opts)
	default:
		return "", false
	}
}

func firstWithPrefixFromMap(prefix string, m map[string]string) (string, bool) {
	best := ""
	for k := range m {
		if strings.HasPrefix(k, prefix) && (best == "" || k < best) {
			best = k
		}
	}
	return best, best != ""
}

func firstWithPrefix(prefix string, pool []string, opts Options) (string, bool) {
	matches := Complete(prefix, pool, opts)
	for _, m := range matches {
		if m != prefix {
			return m, true
		}
	}
	return "", false
}

func elnSuggestion(line string, names []string) (string, bool) {
	n := 0
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			return "", false
		}
		n = n*10 + int(line[i]-'0')
	}
	if n < 1 || n > len(names) {
		return "", false
	}
	return names[n-1], true
}
