package color

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Slot names the palette entries §3/B's FileEntry.color points at.
// Names follow the source's two-letter convention (di = directory,
// nd = not-readable directory, ln = symlink, or = broken-link target,
// ex = executable, uf = stat-failed/unknown).
type Slot string

const (
	SlotDir        Slot = "di"
	SlotNoRead     Slot = "nd"
	SlotReg        Slot = "fi"
	SlotExec       Slot = "ex"
	SlotEmpty      Slot = "ef" // empty regular file
	SlotLink       Slot = "ln"
	SlotOrphanLink Slot = "or" // broken symlink
	SlotFifo       Slot = "pi"
	SlotSocket     Slot = "so"
	SlotBlockDev   Slot = "bd"
	SlotCharDev    Slot = "cd"
	SlotDoor       Slot = "do"
	SlotSetuid     Slot = "su"
	SlotSetgid     Slot = "sg"
	SlotCapability Slot = "ca"
	SlotUnknown    Slot = "uf"
	SlotDivider    Slot = "dl" // listing divider line
	SlotWarning    Slot = "wp" // warning-prompt variant
)

// defaultPalette gives every slot a sane ANSI color so a scheme file is
// never required to run. Values are plain SGR codes (not true-color) so
// the default works even on terminals without 24-bit support.
var defaultPalette = map[Slot]string{
	SlotDir:        "\x1b[01;34m",
	SlotNoRead:     "\x1b[01;31;7m",
	SlotReg:        "\x1b[00m",
	SlotExec:       "\x1b[01;32m",
	SlotEmpty:      "\x1b[02;37m",
	SlotLink:       "\x1b[01;36m",
	SlotOrphanLink: "\x1b[01;31;7m",
	SlotFifo:       "\x1b[33m",
	SlotSocket:     "\x1b[01;35m",
	SlotBlockDev:   "\x1b[01;33m",
	SlotCharDev:    "\x1b[01;33m",
	SlotDoor:       "\x1b[01;35m",
	SlotSetuid:     "\x1b[37;41m",
	SlotSetgid:     "\x1b[30;43m",
	SlotCapability: "\x1b[30;41m",
	SlotUnknown:    "\x1b[01;31m",
	SlotDivider:    "\x1b[02;37m",
	SlotWarning:    "\x1b[01;33m",
}

// ExtensionPalette maps a lowercase file extension (without the dot) to
// a raw ANSI SGR sequence, used for B's "extension map" color tie-break.
type ExtensionPalette map[string]string

var defaultExtensions = ExtensionPalette{
	"tar": "\x1b[01;31m", "gz": "\x1b[01;31m", "zip": "\x1b[01;31m", "xz": "\x1b[01;31m",
	"jpg": "\x1b[01;35m", "jpeg": "\x1b[01;35m", "png": "\x1b[01;35m", "gif": "\x1b[01;35m",
	"mp3": "\x1b[00;36m", "flac": "\x1b[00;36m", "wav": "\x1b[00;36m",
	"mp4": "\x1b[01;35m", "mkv": "\x1b[01;35m", "webm": "\x1b[01;35m",
	"md": "\x1b[00;33m", "txt": "\x1b[00m",
}

// Palette is a loaded color scheme: a base slot table plus the extension
// overrides, used by pkg/entry to pick a FileEntry's color.
type Palette struct {
	Name       string
	Slots      map[Slot]string
	Extensions ExtensionPalette
}

// DefaultPalette returns the built-in scheme used when no scheme file is
// present or light_mode/colorize is off (a caller disabling colorize
// should render without consulting the palette at all, not call this).
func DefaultPalette() *Palette {
	slots := make(map[Slot]string, len(defaultPalette))
	for k, v := range defaultPalette {
		slots[k] = v
	}
	ext := make(ExtensionPalette, len(defaultExtensions))
	for k, v := range defaultExtensions {
		ext[k] = v
	}
	return &Palette{Name: "default", Slots: slots, Extensions: ext}
}

// Lookup returns the escape sequence for slot, falling back to SlotReg's
// sequence (and finally "") if the scheme omits it.
func (p *Palette) Lookup(s Slot) string {
	if p == nil {
		return ""
	}
	if v, ok := p.Slots[s]; ok {
		return v
	}
	return p.Slots[SlotReg]
}

// LookupExt returns the escape sequence registered for a lowercase
// extension (without the leading dot), or "" if none is registered.
func (p *Palette) LookupExt(ext string) string {
	if p == nil || p.Extensions == nil {
		return ""
	}
	return p.Extensions[ext]
}

// schemeFile is the on-disk shape of a color scheme: §6 describes it as
// "NAME=ANSI_CODE" lines; we accept the equivalent YAML map, one file
// per scheme, which is both easier to hand-edit and round-trips cleanly
// through gopkg.in/yaml.v3.
type schemeFile struct {
	Slots      map[string]string `yaml:"slots"`
	Extensions map[string]string `yaml:"extensions"`
}

// LoadScheme reads a named color scheme from dir/<name>.yaml, overlaying
// it on top of DefaultPalette so a scheme only needs to specify the
// slots it overrides.
func LoadScheme(dir, name string) (*Palette, error) {
	p := DefaultPalette()
	p.Name = name

	path := filepath.Join(dir, name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("color: read scheme %s: %w", path, err)
	}

	var sf schemeFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("color: parse scheme %s: %w", path, err)
	}
	for k, v := range sf.Slots {
		p.Slots[Slot(k)] = v
	}
	for k, v := range sf.Extensions {
		p.Extensions[k] = v
	}
	return p, nil
}

// TerminalSupportsColor reports whether the output terminal's detected
// color profile is anything beyond plain ASCII, so Colorize can be
// forced off on a dumb terminal or redirected pipe regardless of
// config.toml (§3: "Colorize").
func TerminalSupportsColor() bool {
	return termenv.NewOutput(os.Stdout).Profile != termenv.Ascii
}

// ListSchemes returns the base names (without .yaml) of every scheme
// file in dir, used by the `cs` command's completion context.
func ListSchemes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("color: list schemes %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if filepath.Ext(n) == ".yaml" {
			names = append(names, n[:len(n)-len(".yaml")])
		}
	}
	return names, nil
}
