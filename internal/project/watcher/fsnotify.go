package watcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/cellpad/internal/project"
)

// FileWatcher watches a single file using fsnotify.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	config  Config
	target  string

	events chan Event
	errors chan error

	closeOnce sync.Once
	quit      chan struct{}
	loopDone  sync.WaitGroup
}

// New starts watching path. The file need not exist yet but its directory
// must.
func New(path string, opts ...Option) (*FileWatcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.BufferSize <= 0 {
		config.BufferSize = 16
	}
	if config.Delay <= 0 {
		config.Delay = time.Millisecond
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return nil, project.NewFileError(project.OpWatch, path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, project.NewFileError(project.OpWatch, path, fmt.Errorf("%w: %v", project.ErrWatcherFailed, err))
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		_ = fsw.Close()
		return nil, project.NewFileError(project.OpWatch, path, fmt.Errorf("%w: %v", project.ErrWatcherFailed, err))
	}

	w := &FileWatcher{
		watcher: fsw,
		config:  config,
		target:  target,
		events:  make(chan Event, config.BufferSize),
		errors:  make(chan error, config.BufferSize),
		quit:    make(chan struct{}),
	}

	w.loopDone.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *FileWatcher) Path() string {
	return w.target
}

// Events returns the event channel. It is closed by Close.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. Pending coalesced events are discarded.
// Later calls return nil.
func (w *FileWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.quit)
		w.loopDone.Wait()
		close(w.events)
		close(w.errors)
		err = w.watcher.Close()
	})
	return err
}

func (w *FileWatcher) processLoop() {
	defer w.loopDone.Done()

	var (
		pending Op
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.quit:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(fsEvent.Name) != w.target {
				continue
			}
			op := convertOp(fsEvent.Op)
			if op == 0 || (w.config.IgnoreChmod && op == OpChmod) {
				continue
			}
			pending |= op
			if timer == nil {
				timer = time.NewTimer(w.config.Delay)
			} else {
				timer.Reset(w.config.Delay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.sendEvent(Event{Path: w.target, Op: pending, Timestamp: time.Now()})
			pending = 0

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(errors.Join(project.ErrWatcherFailed, err))
		}
	}
}

var fromFsnotify = [...]struct {
	from fsnotify.Op
	to   Op
}{
	{fsnotify.Create, OpCreate},
	{fsnotify.Write, OpWrite},
	{fsnotify.Remove, OpRemove},
	{fsnotify.Rename, OpRename},
	{fsnotify.Chmod, OpChmod},
}

func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	for _, m := range fromFsnotify {
		if fsOp.Has(m.from) {
			op |= m.to
		}
	}
	return op
}

// sendEvent delivers without blocking; an undrained channel drops the
// event, as the next one carries the same news.
func (w *FileWatcher) sendEvent(event Event) {
	select {
	case w.events <- event:
	default:
	}
}

func (w *FileWatcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
