package entry

import "github.com/tinyland/shelf/pkg/color"

// FileEntry is one listed file: spec.md §3's FileEntry entity. Name is
// the basename only; the path is implicit in the owning workspace's
// current directory. One FileEntry exists per visible row of a listing;
// the whole slice is discarded and rebuilt on relist.
type FileEntry struct {
	Name       string
	DisplayLen int // wide-character column count of Name

	Stat Stat
	Kind Kind

	// LinkTargetKind is the resolved Kind of a symlink's target, valid
	// only when Kind == KindSymlink and the target is reachable.
	LinkTargetKind Kind
	LinkBroken     bool

	// DirCount is the number of children (excluding "." and "..") for a
	// readable+executable directory; -1 if unreadable or not a directory,
	// and not computed at all unless files_counter is enabled.
	DirCount int

	Exec     bool
	HasXattr bool
	HasCaps  bool

	// Truncated records whether Name's displayed form was cut short by
	// max_name_len (§4.1 step 4), so the renderer can append a mark.
	Truncated bool

	// Color is the resolved palette slot for this entry; computed once
	// by Classify and cached here rather than recomputed per redraw.
	Color color.Slot
}

// Classify fills Kind, Exec, and Color from st and the entry's extension,
// following §4.1 step 2's color-selection order: type first (directory,
// link, fifo, socket, device, door), then within regular files by
// setuid, setgid, capability, execute bit, empty size, and finally the
// extension map.
func Classify(name string, st Stat, rawKind Kind, linkTarget Kind, linkBroken bool, hasCaps bool, palette *color.Palette) FileEntry {
	e := FileEntry{
		Name:           name,
		Stat:           st,
		Kind:           rawKind,
		LinkTargetKind: linkTarget,
		LinkBroken:     linkBroken,
		DirCount:       -1,
		HasCaps:        hasCaps,
	}

	switch rawKind {
	case KindRegular:
		e.Exec = st.IsExecutable()
	}

	e.Color = classifyColor(e, palette)
	return e
}

func classifyColor(e FileEntry, palette *color.Palette) color.Slot {
	switch e.Kind {
	case KindDirectory:
		return color.SlotDir
	case KindSymlink:
		if e.LinkBroken {
			return color.SlotOrphanLink
		}
		return color.SlotLink
	case KindFifo:
		return color.SlotFifo
	case KindSocket:
		return color.SlotSocket
	case KindBlockDev:
		return color.SlotBlockDev
	case KindCharDev:
		return color.SlotCharDev
	case KindDoor:
		return color.SlotDoor
	case KindUnknown:
		return color.SlotUnknown
	}

	// Regular file: setuid, setgid, capability, execute bit, empty size,
	// then extension map, in that priority order.
	switch {
	case e.Stat.IsSetuid():
		return color.SlotSetuid
	case e.Stat.IsSetgid():
		return color.SlotSetgid
	case e.HasCaps:
		return color.SlotCapability
	case e.Exec:
		return color.SlotExec
	case e.Stat.Size == 0:
		return color.SlotEmpty
	}

	if palette != nil {
		if ext := extensionOf(e.Name); ext != "" {
			if _, ok := palette.Extensions[ext]; ok {
				return color.SlotReg // extension colors are applied by LookupExt, not a Slot
			}
		}
	}
	return color.SlotReg
}

// extensionOf returns the lowercase extension of name without its
// leading dot, or "" if name has none (or is itself a dotfile with no
// further extension, e.g. ".bashrc").
func extensionOf(name string) string {
	dot := -1
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			dot = i
			break
		}
		if name[i] == '/' {
			break
		}
	}
	if dot <= 0 || dot == len(name)-1 {
		return ""
	}
	ext := name[dot+1:]
	for i := 0; i < len(ext); i++ {
		c := ext[i]
		if c >= 'A' && c <= 'Z' {
			ext = toLower(ext)
			break
		}
	}
	return ext
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
