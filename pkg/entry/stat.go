package entry

import "time"

// Stat holds the subset of a stat(2) result a FileEntry needs: mode bits,
// ownership, size, the four timestamps, and device/inode identity for
// the "inode" sort key and hardlink detection.
type Stat struct {
	Mode  uint32
	Nlink uint64
	UID   uint32
	GID   uint32
	Size  int64

	Atime time.Time
	Mtime time.Time
	Ctime time.Time
	Btime time.Time // birth time; the scanner fills it with Mtime

	Dev   uint64
	Inode uint64
}

// permission bits, POSIX layout, used by Exec and the SUID/SGID checks.
const (
	modeSetuid = 1 << 11
	modeSetgid = 1 << 10
	modeUserX  = 1 << 6
	modeGroupX = 1 << 3
	modeOtherX = 1 << 0
)

// IsExecutable reports whether any of the user/group/other execute bits
// are set, used to pick the "ex" palette slot for regular files.
func (s Stat) IsExecutable() bool {
	return s.Mode&(modeUserX|modeGroupX|modeOtherX) != 0
}

// IsSetuid reports whether the setuid bit is set.
func (s Stat) IsSetuid() bool {
	return s.Mode&modeSetuid != 0
}

// IsSetgid reports whether the setgid bit is set.
func (s Stat) IsSetgid() bool {
	return s.Mode&modeSetgid != 0
}
