package dispatch

import "github.com/tinyland/shelf/pkg/shelferr"

// handleTag implements `tag`: `tag` lists tag names, `tag add name
// [path...]` (path defaults to the selection, or CWD if nothing is
// selected) tags files, `tag del name [path...]` untags, `tag list name`
// lists a tag's files.
func handleTag(rt *Runtime, argv []string) (Result, error) {
	if len(argv) == 1 {
		names, err := rt.Tags.Names()
		if err != nil {
			return Result{Code: ExitFailure}, err
		}
		var out string
		for _, n := range names {
			out += n + "\n"
		}
		return okOutput(out)
	}

	switch argv[1] {
	case "add":
		return tagMutate(rt, argv[2:], rt.Tags.Add)
	case "del", "rm":
		return tagMutate(rt, argv[2:], rt.Tags.Remove)
	case "list":
		if len(argv) < 3 {
			return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "tag list", "missing tag name")
		}
		files, err := rt.Tags.Files(argv[2])
		if err != nil {
			return Result{Code: ExitFailure}, err
		}
		var out string
		for _, f := range files {
			out += f + "\n"
		}
		return okOutput(out)
	default:
		return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "tag", "unknown subcommand "+argv[1])
	}
}

func tagMutate(rt *Runtime, rest []string, fn func(name, path string) error) (Result, error) {
	if len(rest) == 0 {
		return Result{Code: ExitMisuse}, shelferr.New(shelferr.KindUsage, "tag", "missing tag name")
	}
	name := rest[0]
	paths := rest[1:]
	if len(paths) == 0 {
		paths = rt.Selection.List()
	}
	if len(paths) == 0 {
		paths = []string{rt.CWD()}
	}
	for _, p := range paths {
		if err := fn(name, p); err != nil {
			return Result{Code: ExitFailure}, err
		}
	}
	return ok(false)
}
