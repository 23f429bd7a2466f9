// Package expand implements component G: splitting one raw input line
// into argv, then running it through alias, brace, tilde, variable,
// ELN, and glob expansion, in that order, per §4.5.
package expand

import (
	"strings"

	"github.com/tinyland/shelf/pkg/shelferr"
)

// Token is one element of a tokenized line. SingleQuoted tracks whether the
// token came from a single-quoted span, which suppresses every later
// expansion pass for that token (per step 1: "'…' preserves literally").
type Token struct {
	Text         string
	SingleQuoted bool
	DoubleQuoted bool
}

// Tokenize splits line into whitespace-separated tokens honoring quotes
// and backslash escapes, per §4.5 steps 1-2. Returns
// shelferr.KindUnterminated if a quote is left open.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token
	var cur strings.Builder
	var curSingleQuoted, curDoubleQuoted bool
	hasCur := false

	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == '\'':
			end := strings.IndexByte(line[i+1:], '\'')
			if end < 0 {
				return nil, shelferr.New(shelferr.KindUnterminated, "tokenize", "unterminated single quote")
			}
			cur.WriteString(line[i+1 : i+1+end])
			curSingleQuoted = true
			hasCur = true
			i += end + 2
		case c == '"':
			content, n, err := readDoubleQuoted(line[i:])
			if err != nil {
				return nil, err
			}
			cur.WriteString(content)
			curDoubleQuoted = true
			hasCur = true
			i += n
		case c == '\\':
			if i+1 >= len(line) {
				return nil, shelferr.New(shelferr.KindUnterminated, "tokenize", "trailing backslash")
			}
			cur.WriteByte(line[i+1])
			hasCur = true
			i += 2
		case c == ' ' || c == '\t':
			if hasCur {
				tokens = append(tokens, Token{Text: cur.String(), SingleQuoted: curSingleQuoted, DoubleQuoted: curDoubleQuoted})
				cur.Reset()
				curSingleQuoted = false
				curDoubleQuoted = false
				hasCur = false
			}
			i++
		default:
			cur.WriteByte(c)
			hasCur = true
			i++
		}
	}
	if hasCur {
		tokens = append(tokens, Token{Text: cur.String(), SingleQuoted: curSingleQuoted, DoubleQuoted: curDoubleQuoted})
	}
	return tokens, nil
}

// readDoubleQuoted consumes a double-quoted span starting at s[0]=='"',
// unescaping backslash-escapes within it but leaving $-expansion for the
// variable-expansion pass. Returns the content, the number of bytes of
// s consumed (including both quote characters), and an error if the
// quote is unterminated.
func readDoubleQuoted(s string) (content string, consumed int, err error) {
	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			return b.String(), i + 1, nil
		case '\\':
			if i+1 < len(s) {
				b.WriteByte(s[i+1])
				i += 2
				continue
			}
			return "", 0, shelferr.New(shelferr.KindUnterminated, "tokenize", "trailing backslash in quote")
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, shelferr.New(shelferr.KindUnterminated, "tokenize", "unterminated double quote")
}
