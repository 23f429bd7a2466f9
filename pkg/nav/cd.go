package nav

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Resolve turns a `cd` argument into an absolute target directory, per
// §4.2: empty means home, absolute/relative paths are used as given (a
// relative path is also tried against each CDPATH entry, first hit
// wins), `~` / `~user` expands to a home directory, and pinned is the
// value previously recorded for the "," pinned-directory token.
func Resolve(target, cwd string, cdpath []string, pinned string) (string, error) {
	switch {
	case target == "":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return home, nil
	case target == ",":
		if pinned == "" {
			return "", errDirhistEmpty
		}
		return pinned, nil
	case strings.HasPrefix(target, "~"):
		return expandTilde(target)
	case filepath.IsAbs(target):
		return filepath.Clean(target), nil
	}

	direct := filepath.Clean(filepath.Join(cwd, target))
	if isDir(direct) {
		return direct, nil
	}
	for _, root := range cdpath {
		candidate := filepath.Clean(filepath.Join(root, target))
		if isDir(candidate) {
			return candidate, nil
		}
	}
	// No CDPATH hit: return the direct join anyway so the caller can
	// surface a proper NotFound/NoSuchFile error from the failed chdir.
	return direct, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// expandTilde resolves "~" and "~user" to a home directory.
func expandTilde(target string) (string, error) {
	rest := target[1:]
	var name, tail string
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		name, tail = rest[:idx], rest[idx:]
	} else {
		name = rest
	}

	if name == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Clean(home + tail), nil
	}

	u, err := user.Lookup(name)
	if err != nil {
		return "", err
	}
	return filepath.Clean(u.HomeDir + tail), nil
}
