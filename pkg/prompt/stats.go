package prompt

// DirStats holds per-directory file-type tallies, populated by the
// caller from the current listing (component C). No escape handled by
// Decode reads them.
type DirStats struct {
	Regular    int
	Dirs       int
	Symlinks   int
	Broken     int
	Executable int
	Setuid     int
	Setgid     int
	Caps       int
	Sticky     int
}

// ProcState carries the process-state counters the prompt's `\(`, `\)`,
// `\=`, `\*`, `\%` escapes report: selection count, trash count, and
// error/warning/notice counts accumulated since the last prompt.
type ProcState struct {
	SelectionCount int
	TrashCount     int
	Errors         int
	Warnings       int
	Notices        int
}

// Vars is everything the prompt template decoder needs to resolve every
// `\`-escape in §4.9, gathered by the caller (component M's main loop)
// from the Ctx aggregate before each redraw.
type Vars struct {
	User       string
	Host       string
	Cwd        string // full path, \w
	CwdShort   string // basename or ~-shortened, \W
	WSID       int
	WSName     string
	ExitCode   int
	IsRoot     bool
	AutocmdSet bool
	Stats      DirStats
	Proc       ProcState
}
