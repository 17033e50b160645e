// Package app wires the editor together and runs its event loop.
package app

import (
	"context"
	"errors"
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/dshills/cellpad/internal/config"
	"github.com/dshills/cellpad/internal/dispatcher"
	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/project/filestore"
	"github.com/dshills/cellpad/internal/project/watcher"
	"github.com/dshills/cellpad/internal/renderer"
	"github.com/dshills/cellpad/internal/renderer/backend"
)

// Application owns the session, the terminal and the event loop.
type Application struct {
	mu sync.Mutex

	config     *config.Config
	logger     *Logger
	logCloser  io.Closer
	store      *filestore.Store
	session    *execctx.Session
	dispatcher *dispatcher.Dispatcher
	backend    backend.Backend
	renderer   *renderer.Renderer
	metrics    *Metrics

	// watcher reports external changes to the open file.
	watcher     *watcher.FileWatcher
	watchCancel context.CancelFunc
	ctx         context.Context

	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is an explicit configuration file.
	ConfigPath string

	// ConfigDir overrides the user configuration directory.
	ConfigDir string

	// File is the file to edit. Empty starts an unnamed document.
	File string

	// Debug enables debug logging and dispatcher metrics. A panicking
	// command then aborts the editor instead of becoming an error.
	Debug bool

	// LogLevel overrides the configured log level.
	LogLevel string

	// LogOutput overrides the configured log file.
	LogOutput io.Writer

	// Backend overrides the tcell terminal.
	Backend backend.Backend

	// Store overrides the file store.
	Store *filestore.Store
}

// New creates an Application and loads the file named in opts. A file that
// cannot be loaded leaves an empty document and a message on the command
// line; only configuration of the terminal can fail here.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		metrics: NewMetrics(),
		ctx:     context.Background(),
	}
	if err := newBootstrapper(app).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Run initialises the terminal and runs the event loop until the user
// quits, ctx is cancelled or Shutdown is called. The terminal is restored
// on every exit path, including a panic, which is logged and re-raised.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer func() {
		r := recover()
		app.stop()
		app.closeWatcher()
		app.backend.Shutdown()
		app.logMetrics()
		if r != nil {
			app.logger.Error("%v", &RecoveredPanicError{Value: r, Stack: debug.Stack()})
			panic(r)
		}
	}()

	app.mu.Lock()
	app.ctx = ctx
	app.session.WithContext(ctx)
	w, h := app.backend.Size()
	app.renderer = renderer.New(app.backend, renderer.Options{
		EmptyRow:       app.config.UI().EmptyRow,
		DirtyThreshold: renderer.DefaultOptions().DirtyThreshold,
	})
	app.mu.Unlock()

	app.resize(w, h)
	app.watch()
	app.logger.Info("editing %q (%d lines)", app.session.FilePath, app.session.Document.LinesLen())

	return app.eventLoop(ctx)
}

// Shutdown stops a running event loop. It is safe to call from another
// goroutine, for example a signal handler.
func (app *Application) Shutdown() {
	if !app.running.Load() {
		return
	}
	app.stop()
}

// stop closes done and wakes the input poller.
func (app *Application) stop() {
	app.stopOnce.Do(func() {
		close(app.done)
		_ = app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	})
}

// Close releases the log file. Call it after Run returns.
func (app *Application) Close() error {
	var errs []error
	errs = append(errs, app.closeWatcher())
	if app.logCloser != nil {
		errs = append(errs, app.logCloser.Close())
		app.logCloser = nil
	}
	return errors.Join(errs...)
}

func (app *Application) logMetrics() {
	s := app.metrics.Snapshot()
	app.logger.Debug("uptime %s, %d frames (avg %s, max %s), %d keys (%.1f%% dropped), %d notices",
		s.Uptime, s.RenderCount, s.AvgRender, s.MaxRender, s.KeyCount, s.DropRate(), s.Notices)
	if dm := app.dispatcher.Metrics(); dm != nil {
		snap := dm.Snapshot()
		app.logger.Debug("dispatch: %d commands, %d errors, %d panics, %d dropped",
			snap.TotalDispatches, snap.TotalErrors, snap.TotalPanics, snap.TotalDropped)
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Session returns the editing session. It belongs to the event loop while
// Run is active.
func (app *Application) Session() *execctx.Session {
	return app.session
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the event loop metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Dispatcher returns the dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}
