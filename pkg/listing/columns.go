package listing

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tinyland/shelf/pkg/color"
	"github.com/tinyland/shelf/pkg/entry"
	"github.com/tinyland/shelf/pkg/strutil"
)

// RenderOptions controls column packing and the divider line (§4.1 step 4).
type RenderOptions struct {
	TermCols     int
	MaxNameLen   int
	FilesCounter bool
	ELNOff       bool
	Palette      *color.Palette
}

// cell is one entry's fully formatted, not-yet-padded row text, used to
// compute the shared column width before emitting anything.
type cell struct {
	text  string
	width int
}

// Render packs entries into columns and writes them to w, followed by a
// divider line of "=" in the SlotDivider color, per §4.1 step 4.
func Render(w io.Writer, entries []entry.FileEntry, opts RenderOptions) {
	cells := make([]cell, len(entries))
	maxWidth := 0
	for i := range entries {
		e := &entries[i]
		text, width := formatCell(i+1, e, opts)
		cells[i] = cell{text: text, width: width}
		if width > maxWidth {
			maxWidth = width
		}
	}

	cols := opts.TermCols / (maxWidth + 1)
	if cols < 1 {
		cols = 1
	}

	rows := (len(cells) + cols - 1) / cols
	for r := 0; r < rows; r++ {
		var line strings.Builder
		for c := 0; c < cols; c++ {
			idx := r + c*rows
			if idx >= len(cells) {
				continue
			}
			padded := strutil.PadRight(cells[idx].text, maxWidth)
			line.WriteString(padded)
			if c < cols-1 {
				line.WriteByte(' ')
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	divider := strings.Repeat("=", maxWidth)
	if opts.Palette != nil {
		fmt.Fprintln(w, opts.Palette.Lookup(color.SlotDivider)+divider+color.Reset())
	} else {
		fmt.Fprintln(w, divider)
	}
}

// formatCell renders one entry's ELN-prefixed, possibly truncated and
// dir-count-suffixed text, and returns its printed column width:
// digits(eln) + 1 + display_name_cols + (dir_count_suffix ? digits(count)+1 : 0),
// where the suffix is printed as "/N" (one "/" plus the digits).
func formatCell(eln int, e *entry.FileEntry, opts RenderOptions) (string, int) {
	name, truncated := strutil.TruncateEllipsis(e.Name, maxNameLenOr(opts.MaxNameLen))
	e.Truncated = truncated

	var b strings.Builder
	width := 0
	if !opts.ELNOff {
		elnStr := strconv.Itoa(eln)
		b.WriteString(elnStr)
		b.WriteByte(' ')
		width += len(elnStr) + 1
	}

	colorCode := ""
	if opts.Palette != nil {
		if ext := extOf(e.Name); ext != "" {
			if c := opts.Palette.LookupExt(ext); c != "" && e.Color == color.SlotReg {
				colorCode = c
			}
		}
		if colorCode == "" {
			colorCode = opts.Palette.Lookup(e.Color)
		}
	}

	if colorCode != "" {
		b.WriteString(colorCode)
		b.WriteString(name)
		b.WriteString(color.Reset())
	} else {
		b.WriteString(name)
	}
	width += strutil.VisibleLen(name)

	if opts.FilesCounter && e.DirCount >= 0 {
		suffix := fmt.Sprintf("/%d", e.DirCount)
		b.WriteString(suffix)
		width += len(suffix)
	}

	return b.String(), width
}

func maxNameLenOr(n int) int {
	if n <= 0 {
		return 1 << 30
	}
	return n
}
