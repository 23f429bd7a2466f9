package expand

// Context carries everything the expansion pipeline needs beyond the
// raw line: the current listing's basenames (for ELN), the alias table,
// and the user-variable table, mirroring the Ctx aggregate §9 calls for
// ("collect pervasive global mutable state... into a single Ctx value").
type Context struct {
	Dir        string
	Names      []string // current listing's basenames, index 0 == ELN 1
	Aliases    map[string]string
	UserVars   map[string]string
	ELNOff     bool
}

// Expand runs the full §4.5 pipeline — tokenize, alias, brace, tilde,
// variable, ELN, glob — and returns the final argv. argv[0] (after alias
// substitution) is never subject to ELN expansion, per step 7.
func Expand(line string, ctx Context) ([]string, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}

	tokens, err = ExpandAlias(tokens, ctx.Aliases)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	var argv []string
	for i, tok := range tokens {
		if tok.SingleQuoted {
			argv = append(argv, tok.Text)
			continue
		}

		for _, braced := range ExpandBrace(tok.Text) {
			text := braced
			if !tok.SingleQuoted && !tok.DoubleQuoted {
				text = ExpandTilde(text)
			}
			if !tok.SingleQuoted {
				text = ExpandVariable(text, ctx.UserVars)
			}

			if i > 0 && !ctx.ELNOff && !tok.SingleQuoted && !tok.DoubleQuoted {
				if fb, ok := ExpandFastback(text); ok {
					argv = append(argv, fb)
					continue
				}
				if names, ok := ExpandELN(text, ctx.Names); ok {
					argv = append(argv, names...)
					continue
				}
			}

			if tok.DoubleQuoted {
				argv = append(argv, text)
				continue
			}

			argv = append(argv, ExpandGlob(text, ctx.Dir)...)
		}
	}

	return argv, nil
}
