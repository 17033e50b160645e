// Package watcher reports external changes to the file being edited.
//
// A FileWatcher watches the directory holding the file, because editors and
// tools commonly replace files by renaming a temporary over them, which
// drops a watch placed on the file itself. Bursts of events for the file
// are coalesced into one Event after a short quiet period.
package watcher

import (
	"context"
	"time"
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

var opNames = []struct {
	op   Op
	name string
}{
	{OpCreate, "CREATE"},
	{OpWrite, "WRITE"},
	{OpRemove, "REMOVE"},
	{OpRename, "RENAME"},
	{OpChmod, "CHMOD"},
}

// String returns the names of the operations in op joined by "|".
func (op Op) String() string {
	s := ""
	for _, n := range opNames {
		if op.Has(n.op) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return "UNKNOWN"
	}
	return s
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event is a coalesced change to the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Op is every operation seen during the coalescing window.
	Op Op

	// Timestamp is when the event was delivered.
	Timestamp time.Time
}

// Gone reports whether the file no longer exists at its path.
func (e Event) Gone() bool {
	return (e.Op.Has(OpRemove) || e.Op.Has(OpRename)) && !e.Op.Has(OpCreate)
}

// Config holds watcher configuration options.
type Config struct {
	// Delay is the quiet period after the last raw event before an Event
	// is delivered.
	Delay time.Duration

	// BufferSize is the capacity of the event and error channels.
	BufferSize int

	// IgnoreChmod drops events that only change permissions.
	IgnoreChmod bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Delay:       100 * time.Millisecond,
		BufferSize:  16,
		IgnoreChmod: true,
	}
}

// Option configures a watcher.
type Option func(*Config)

// WithDelay sets the coalescing delay.
func WithDelay(d time.Duration) Option {
	return func(c *Config) {
		c.Delay = d
	}
}

// WithBufferSize sets the channel capacity.
func WithBufferSize(size int) Option {
	return func(c *Config) {
		c.BufferSize = size
	}
}

// WithIgnoreChmod sets whether permission-only changes are dropped.
func WithIgnoreChmod(ignore bool) Option {
	return func(c *Config) {
		c.IgnoreChmod = ignore
	}
}

// Run delivers events and errors from w to the handlers until ctx is
// cancelled or w is closed. Either handler may be nil.
func Run(ctx context.Context, w *FileWatcher, onEvent func(Event), onError func(error)) {
	events, errs := w.Events(), w.Errors()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if onEvent != nil {
				onEvent(ev)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
