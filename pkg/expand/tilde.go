package expand

import (
	"os"
	"os/user"
	"strings"
)

// ExpandTilde resolves a leading "~/" to the current user's home, or
// "~user" to that user's home via the password database, per §4.5
// step 5. Tokens not starting with "~" are returned unchanged.
func ExpandTilde(s string) string {
	if !strings.HasPrefix(s, "~") {
		return s
	}
	rest := s[1:]
	var name, tail string
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		name, tail = rest[:idx], rest[idx:]
	} else {
		name = rest
	}

	if name == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return s
		}
		return home + tail
	}

	u, err := user.Lookup(name)
	if err != nil {
		return s // unknown user: leave literal
	}
	return u.HomeDir + tail
}
