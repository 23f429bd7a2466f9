package entry

import (
	"io/fs"
	"syscall"
	"time"
)

// KindFromDirEntry classifies a directory child from its readdir type
// byte alone, with no stat(2) call: the light-mode path of §4.1 step 2,
// "rely only on the directory-entry type byte". A DirEntry's Type() mode
// carries only the type bits kindOf switches on, so this is just kindOf
// under a name that documents the no-stat contract.
func KindFromDirEntry(d fs.DirEntry) Kind {
	return kindOf(d.Type())
}

// FromFileInfo builds a Stat and a raw Kind from an os.Lstat/os.Stat
// result. lightMode skips nothing here (the caller decides whether to
// lstat at all); this just converts whatever info.Sys() the caller
// already retrieved.
func FromFileInfo(info fs.FileInfo) (Stat, Kind) {
	st := Stat{
		Mode:  uint32(info.Mode().Perm()),
		Size:  info.Size(),
		Mtime: info.ModTime(),
	}
	if info.Mode()&fs.ModeSetuid != 0 {
		st.Mode |= modeSetuid
	}
	if info.Mode()&fs.ModeSetgid != 0 {
		st.Mode |= modeSetgid
	}

	if sys, ok := info.Sys().(*syscall.Stat_t); ok {
		st.Nlink = uint64(sys.Nlink)
		st.UID = sys.Uid
		st.GID = sys.Gid
		st.Dev = uint64(sys.Dev)
		st.Inode = sys.Ino
		st.Atime = time.Unix(sys.Atim.Sec, sys.Atim.Nsec)
		st.Ctime = time.Unix(sys.Ctim.Sec, sys.Ctim.Nsec)
		// Birth time is not exposed by syscall.Stat_t on Linux; callers on
		// platforms that do report it (Darwin/BSD) should prefer a
		// platform-specific path and fall back to Mtime otherwise, matching
		// §3's "None" allowance for unavailable btime.
		st.Btime = st.Mtime
	} else {
		st.Btime = st.Mtime
	}

	return st, kindOf(info.Mode())
}

// kindOf maps an fs.FileMode to a raw Kind, not yet resolving symlink
// targets (the listing engine does a second stat for that).
func kindOf(mode fs.FileMode) Kind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeNamedPipe != 0:
		return KindFifo
	case mode&fs.ModeSocket != 0:
		return KindSocket
	case mode&fs.ModeDevice != 0:
		if mode&fs.ModeCharDevice != 0 {
			return KindCharDev
		}
		return KindBlockDev
	case mode.IsRegular():
		return KindRegular
	default:
		return KindUnknown
	}
}
