package nav

import "github.com/tinyland/shelf/pkg/shelferr"

var (
	errOutOfRange         = shelferr.New(shelferr.KindUsage, "ws", "workspace index out of range")
	errCannotUnsetCurrent = shelferr.New(shelferr.KindUsage, "ws", "cannot unset the current workspace")
	errDirhistEmpty       = shelferr.New(shelferr.KindNotFound, "cd", "directory history is empty")
)
