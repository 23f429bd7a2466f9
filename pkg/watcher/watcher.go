// Package watcher implements component K: a filesystem watcher that
// flags the current working directory dirty without ever relisting on
// its own. The main loop consults the flag between commands and
// triggers a relist (component C) when it is set.
package watcher

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches one directory at a time for changes and exposes a
// Dirty() flag. Switching directories (Watch) replaces the watch
// target entirely, mirroring clifm's "reset the watch on every chdir"
// inotify behavior.
type Watcher struct {
	fs    *fsnotify.Watcher
	dirty atomic.Bool
	cur   string
	done  chan struct{}
}

// New starts the background event-consuming goroutine. Returns an error
// only if the underlying OS watcher cannot be created; a nil Watcher is
// never returned alongside a nil error.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{fs: fw, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

// Watch resets the watch to dir, removing any previous watch target.
func (w *Watcher) Watch(dir string) error {
	if w.cur != "" {
		_ = w.fs.Remove(w.cur)
	}
	if err := w.fs.Add(dir); err != nil {
		return err
	}
	w.cur = dir
	w.dirty.Store(false)
	return nil
}

// Dirty reports whether a relevant change has fired since the last
// ConsumeDirty call.
func (w *Watcher) Dirty() bool {
	return w.dirty.Load()
}

// ConsumeDirty reports and clears the dirty flag atomically.
func (w *Watcher) ConsumeDirty() bool {
	return w.dirty.Swap(false)
}

// Close stops the background goroutine and releases the OS watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

const relevantOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename

func (w *Watcher) loop() {
	var pendingCreate string
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create != 0 {
				pendingCreate = ev.Name
				w.dirty.Store(true)
				continue
			}
			if ev.Op&fsnotify.Remove != 0 && ev.Name == pendingCreate {
				// create-then-immediately-delete pair: the Create above
				// already marked the listing dirty, so this Remove adds
				// nothing and the pair causes a single relist.
				pendingCreate = ""
				continue
			}
			if ev.Op&relevantOps != 0 {
				w.dirty.Store(true)
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

// Stat is the minimal directory fingerprint the poll fallback compares
// across ticks: modification time and child count.
type Stat struct {
	ModTime int64
	Count   int
}

// PollStat reads dir's current fingerprint for the poll-based fallback
// watcher (used on platforms without inotify/kqueue support).
func PollStat(dir string) (Stat, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Stat{}, err
	}
	f, err := os.Open(dir)
	if err != nil {
		return Stat{}, err
	}
	defer f.Close()
	names, err := f.Readdirnames(-1)
	if err != nil {
		return Stat{}, err
	}
	return Stat{ModTime: info.ModTime().UnixNano(), Count: len(names)}, nil
}

// PollWatcher is the Poll implementation from §4.10: it remembers the
// watched directory's mtime and child count, and ConsumeDirty reports
// dirty only when both have changed since the baseline (set by
// NewPollWatcher, Watch, or the last dirty report). minInterval throttles
// repeated stat(2) calls to the configured poll_interval (§3), since
// ConsumeDirty is called once per prompt iteration and a busy script
// feeding the non-interactive line reader could otherwise poll far more
// often than the filesystem can usefully change.
type PollWatcher struct {
	dir         string
	last        Stat
	minInterval time.Duration
	lastPoll    time.Time
}

// NewPollWatcher creates a poll-based watcher seeded at dir's current
// state. minInterval <= 0 disables throttling (every ConsumeDirty call
// re-stats).
func NewPollWatcher(dir string, minInterval time.Duration) (*PollWatcher, error) {
	st, err := PollStat(dir)
	if err != nil {
		return nil, err
	}
	return &PollWatcher{dir: dir, last: st, minInterval: minInterval, lastPoll: time.Now()}, nil
}

// Watch resets the poll baseline to dir.
func (p *PollWatcher) Watch(dir string) error {
	st, err := PollStat(dir)
	if err != nil {
		return err
	}
	p.dir = dir
	p.last = st
	return nil
}

// ConsumeDirty polls the current state; if both mtime and child count
// changed since the baseline it reports dirty and rebases, otherwise it
// reports clean without rebasing (so a single real change isn't missed
// by a transient no-op poll).
func (p *PollWatcher) ConsumeDirty() bool {
	if p.minInterval > 0 && time.Since(p.lastPoll) < p.minInterval {
		return false
	}
	p.lastPoll = time.Now()

	st, err := PollStat(p.dir)
	if err != nil {
		return false
	}
	if st.ModTime != p.last.ModTime && st.Count != p.last.Count {
		p.last = st
		return true
	}
	return false
}

// Close is a no-op; PollWatcher holds no OS resources, but the method
// exists so it satisfies the same interface as the fsnotify-backed
// Watcher for callers that treat the two interchangeably.
func (p *PollWatcher) Close() error {
	return nil
}
