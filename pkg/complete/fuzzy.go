// Package complete implements component H: fuzzy filename matching and
// the inline suggestion engine that picks one "ghost text" candidate
// ahead of the cursor from a fixed strategy order.
package complete

import "strings"

// Fuzzy match bonuses, ported from original_source/src/fuzzy_match.h's
// native matcher (itself adapted from fzy, MIT licensed): an exact match
// scores highest, then a prefix match, then a match starting at a word
// boundary, then a run of consecutive characters, then a scattered
// subsequence.
const (
	bonusTargetBeginning = 1000
	bonusFirstChar       = 10
	bonusIncluded        = 8
	bonusWordBeginning   = 5
	bonusConsecutiveChar = 4
	bonusSingleChar      = 2
	bonusExactMatch      = 1
)

// isWordSeparator mirrors IS_WORD_SEPARATOR from the source.
func isWordSeparator(c byte) bool {
	switch c {
	case '-', '_', ' ', '.', ',', ';', ':', '@', '=', '+', '*', '&':
		return true
	default:
		return false
	}
}

// FuzzyScore returns a match score for pattern against target (both
// compared case-insensitively), or (0, false) if pattern is not a
// subsequence of target at all. Higher scores are better matches; the
// weight ordering follows fuzzy_match.c: exact > prefix > word-boundary
// > consecutive-run > scattered-subsequence.
func FuzzyScore(pattern, target string) (int, bool) {
	if pattern == "" {
		return 0, true
	}
	lp := strings.ToLower(pattern)
	lt := strings.ToLower(target)

	if lp == lt {
		return bonusTargetBeginning + bonusExactMatch, true
	}
	if strings.HasPrefix(lt, lp) {
		return bonusTargetBeginning + bonusFirstChar, true
	}

	score := 0
	ti := 0
	consecutive := 0
	matchedAny := false
	for pi := 0; pi < len(lp); pi++ {
		idx := strings.IndexByte(lt[ti:], lp[pi])
		if idx < 0 {
			return 0, false
		}
		matchedAny = true
		abs := ti + idx
		if abs == 0 || isWordSeparator(lt[abs-1]) {
			score += bonusWordBeginning
		} else if idx == 0 && consecutive > 0 {
			consecutive++
			score += bonusConsecutiveChar
		} else {
			score += bonusSingleChar
		}
		if idx == 0 {
			consecutive++
		} else {
			consecutive = 0
		}
		ti = abs + 1
	}
	if !matchedAny {
		return 0, false
	}
	score += bonusIncluded
	return score, true
}

// Candidate is one fuzzy-ranked match, paired with its source score.
type Candidate struct {
	Text  string
	Score int
}

// FilterAndRank scores every item in pool against pattern, discarding
// non-matches, and returns the survivors sorted by descending score
// (ties broken by shorter, then lexically earlier, text).
func FilterAndRank(pattern string, pool []string) []Candidate {
	var out []Candidate
	for _, item := range pool {
		if score, ok := FuzzyScore(pattern, item); ok {
			out = append(out, Candidate{Text: item, Score: score})
		}
	}
	sortCandidates(out)
	return out
}

func sortCandidates(cands []Candidate) {
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && less(cands[j], cands[j-1]); j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}
}

func less(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if len(a.Text) != len(b.Text) {
		return len(a.Text) < len(b.Text)
	}
	return a.Text < b.Text
}
