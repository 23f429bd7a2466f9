package expand

import "github.com/tinyland/shelf/pkg/shelferr"

// MaxAliasDepth bounds alias substitution chains, per §8 invariant 5:
// "no input line causes more than a fixed number of substitutions (≤8)".
const MaxAliasDepth = 8

// ExpandAlias substitutes argv[0] against aliases (name -> command-line
// body) recursively, up to MaxAliasDepth times, then prepends the parsed
// alias body's tokens ahead of the rest of argv. A chain exceeding the
// depth limit reports an AliasLoop-equivalent error rather than looping
// forever.
func ExpandAlias(tokens []Token, aliases map[string]string) ([]Token, error) {
	if len(tokens) == 0 {
		return tokens, nil
	}

	depth := 0
	for {
		head := tokens[0]
		if head.SingleQuoted {
			return tokens, nil
		}
		body, ok := aliases[head.Text]
		if !ok {
			return tokens, nil
		}
		depth++
		if depth > MaxAliasDepth {
			return nil, shelferr.New(shelferr.KindInternal, "alias", "alias expansion exceeded maximum depth (loop?)")
		}

		bodyTokens, err := Tokenize(body)
		if err != nil {
			return nil, err
		}
		tokens = append(bodyTokens, tokens[1:]...)
		if len(tokens) == 0 {
			return tokens, nil
		}
	}
}
