// Package prompt implements component J: the `\`-escape prompt template
// decoder, time/date formatting, and the warning-prompt variant.
package prompt

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ignoreStart and ignoreEnd are readline's non-printing-sequence markers
// (RL_PROMPT_START_IGNORE / RL_PROMPT_END_IGNORE). Any raw escape
// sequence emitted into the prompt — color codes, cursor moves — must be
// wrapped in these so readline's cursor-column math stays correct.
const (
	ignoreStart = "\x01"
	ignoreEnd   = "\x02"
)

// wrapIgnore wraps s in readline's ignore markers.
func wrapIgnore(s string) string {
	return ignoreStart + s + ignoreEnd
}

// Decode expands every `\`-escape and `$(...)` command substitution in
// template against vars, returning the final byte string ready to print.
// Color escape sequences (anything starting with \x1b) are wrapped in
// readline ignore markers; literal bytes are passed through unchanged.
func Decode(template string, vars Vars, now time.Time) string {
	var out strings.Builder
	i := 0
	for i < len(template) {
		c := template[i]
		switch {
		case c == '\\' && i+1 < len(template):
			seq, n := decodeEscape(template[i:], vars, now)
			out.WriteString(seq)
			i += n
		case c == '$' && i+1 < len(template) && template[i+1] == '(':
			sub, n := decodeCommandSub(template[i:])
			out.WriteString(sub)
			i += n
		case c == '\x1b':
			j := i
			for j < len(template) && template[j] != 'm' {
				j++
			}
			if j < len(template) {
				j++ // include the 'm'
			}
			out.WriteString(wrapIgnore(template[i:j]))
			i = j
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// decodeEscape decodes one `\X` escape starting at s[0]=='\\' and
// returns its expansion plus the number of template bytes consumed.
func decodeEscape(s string, vars Vars, now time.Time) (string, int) {
	if len(s) < 2 {
		return s, len(s)
	}
	switch s[1] {
	case 'u':
		return vars.User, 2
	case 'h':
		return shortHost(vars.Host), 2
	case 'H':
		return vars.Host, 2
	case 'w':
		return vars.Cwd, 2
	case 'W':
		return vars.CwdShort, 2
	case 'p':
		return promptChar(vars.IsRoot), 2
	case 't':
		return now.Format("15:04:05"), 2
	case 'd':
		return now.Format("Mon Jan 02"), 2
	case 'S':
		return fmt.Sprintf("%d:%s", vars.WSID, vars.WSName), 2
	case 'z':
		return strconv.Itoa(vars.ExitCode), 2
	case '*':
		return countOrEmpty(vars.Proc.SelectionCount), 2
	case '%':
		return countOrEmpty(vars.Proc.TrashCount), 2
	case '(':
		return countOrEmpty(vars.Proc.Errors), 2
	case ')':
		return countOrEmpty(vars.Proc.Warnings), 2
	case '=':
		return countOrEmpty(vars.Proc.Notices), 2
	case '#':
		if vars.IsRoot {
			return "#", 2
		}
		return "", 2
	case '@':
		if vars.AutocmdSet {
			return "*", 2
		}
		return "", 2
	case 'n':
		return "\n", 2
	case '\\':
		return "\\", 2
	default:
		return s[:2], 2
	}
}

func shortHost(host string) string {
	if idx := strings.IndexByte(host, '.'); idx >= 0 {
		return host[:idx]
	}
	return host
}

func promptChar(isRoot bool) string {
	if isRoot {
		return "#"
	}
	return "$"
}

func countOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// decodeCommandSub runs the shell command inside a leading "$(...)" group
// in s and returns its trimmed stdout, plus the number of bytes of s the
// group consumed. A malformed (unterminated) group is passed through
// literally.
func decodeCommandSub(s string) (string, int) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				cmdline := s[2:i]
				out, err := exec.Command("/bin/sh", "-c", cmdline).Output()
				if err != nil {
					return "", i + 1
				}
				return strings.TrimRight(string(out), "\n"), i + 1
			}
		}
	}
	return s, len(s)
}

// CurrentUserHost returns the username from $USER (or $LOGNAME when
// $USER is empty) and the OS hostname, falling back to "localhost" when
// the hostname cannot be read.
func CurrentUserHost() (user, host string) {
	user = os.Getenv("USER")
	if user == "" {
		user = os.Getenv("LOGNAME")
	}
	host, _ = os.Hostname()
	if host == "" {
		host = "localhost"
	}
	return user, host
}
