package complete

import (
	"os"
	"path/filepath"
	"strings"
)

// Context identifies which of the §4.8 completion contexts a given
// argv-so-far falls into.
type Context int

const (
	CtxCommand Context = iota
	CtxPath
	CtxBookmark
	CtxTag
	CtxJump
	CtxWorkspace
	CtxColorscheme
	CtxProfile
	CtxPrompt
	CtxRemote
	CtxUser
	CtxVariable
	CtxInternalParam
)

// internalParamCommands maps a first token to the completion context its
// remaining arguments fall into. Unlisted commands default to CtxPath.
var internalParamCommands = map[string]Context{
	"bm":  CtxBookmark,
	"tag": CtxTag,
	"t":   CtxTag,
	"j":   CtxJump,
	"jc":  CtxJump,
	"jp":  CtxJump,
	"ws":  CtxWorkspace,
	"cs":  CtxColorscheme,
	"pf":  CtxProfile,
	"prompt": CtxPrompt,
}

// ResolveContext picks the completion context for argv, the partial
// token being completed (last element of argv, possibly empty), and the
// sigil that can override it regardless of argv[0] (b:, t:, $, ~).
func ResolveContext(argv []string, partial string) Context {
	switch {
	case strings.HasPrefix(partial, "b:"):
		return CtxBookmark
	case strings.HasPrefix(partial, "t:"):
		return CtxTag
	case strings.HasPrefix(partial, "$"):
		return CtxVariable
	case strings.HasPrefix(partial, "~"):
		return CtxUser
	}

	if len(argv) == 0 {
		return CtxCommand
	}
	if len(argv) == 1 && partial == argv[0] {
		return CtxCommand
	}
	if ctx, ok := internalParamCommands[argv[0]]; ok {
		return ctx
	}
	return CtxPath
}

// PathCandidates lists basenames under the directory part of partial
// (relative to dir if partial has no directory part of its own),
// suffixed with "/" for subdirectories.
func PathCandidates(dir, partial string) []string {
	base := filepath.Dir(partial)
	lookIn := dir
	prefix := ""
	if base != "." {
		prefix = base + string(filepath.Separator)
		if filepath.IsAbs(base) {
			lookIn = base
		} else {
			lookIn = filepath.Join(dir, base)
		}
	}

	entries, err := os.ReadDir(lookIn)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		out = append(out, prefix+name)
	}
	return out
}

// CommandCandidates lists internal command names, PATH executables, and
// alias names, for the "command" completion context.
func CommandCandidates(internals []string, aliases map[string]string) []string {
	out := append([]string{}, internals...)
	for name := range aliases {
		out = append(out, name)
	}
	out = append(out, pathExecutables()...)
	return out
}

func pathExecutables() []string {
	pathEnv := os.Getenv("PATH")
	if pathEnv == "" {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	for _, dir := range filepath.SplitList(pathEnv) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if _, dup := seen[e.Name()]; dup {
				continue
			}
			seen[e.Name()] = struct{}{}
			out = append(out, e.Name())
		}
	}
	return out
}
