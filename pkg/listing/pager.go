package listing

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PagerKeyReader abstracts single-key input so the pager can be tested
// without a real terminal. RuneReader below implements it over any
// io.Reader; terminal.RawSession does not implement it.
type PagerKeyReader interface {
	ReadKey() (rune, error)
}

// RuneReader adapts a bufio.Reader to PagerKeyReader for production use
// against stdin in raw mode.
type RuneReader struct {
	R *bufio.Reader
}

// ReadKey reads one rune, satisfying PagerKeyReader.
func (rr RuneReader) ReadKey() (rune, error) {
	r, _, err := rr.R.ReadRune()
	return r, err
}

// Page writes rendered lines to w, stopping to wait for a key whenever
// termLines-2 rows have been emitted, per §4.1 step 5. 'q' quits (the
// remaining lines are discarded); space or enter advances a full page;
// 'n' advances a single line. The pager never itself polls the FS
// watcher; callers check that flag between Page calls, not during one.
func Page(w io.Writer, rendered string, termLines int, keys PagerKeyReader) error {
	lines := strings.Split(rendered, "\n")
	pageSize := termLines - 2
	if pageSize < 1 {
		pageSize = 1
	}

	i := 0
	for i < len(lines) {
		end := i + pageSize
		if end > len(lines) {
			end = len(lines)
		}
		for _, line := range lines[i:end] {
			fmt.Fprintln(w, line)
		}
		i = end
		if i >= len(lines) {
			break
		}

		fmt.Fprint(w, "--More--")
		key, err := keys.ReadKey()
		fmt.Fprint(w, "\r        \r")
		if err != nil {
			return err
		}
		switch key {
		case 'q', 'Q':
			return nil
		case 'n':
			i -= pageSize - 1 // already advanced a full page; back off to +1 line
		case ' ', '\r', '\n':
			// advance a full page, already positioned
		default:
			i -= pageSize // unrecognized key: hold position, wait again
		}
	}
	return nil
}

// ShouldPage reports whether rendered output taller than termLines-2
// rows warrants entering the pager, per §4.1 step 5.
func ShouldPage(rendered string, termLines int) bool {
	return strings.Count(rendered, "\n") > termLines-2
}
