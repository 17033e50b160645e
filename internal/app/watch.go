package app

import (
	"context"

	"github.com/dshills/cellpad/internal/project/watcher"
	"github.com/dshills/cellpad/internal/renderer/backend"
)

// watch starts watching the open file when watching is enabled. Events are
// posted to the backend so the event loop handles them in order with keys.
func (app *Application) watch() {
	path := app.session.FilePath
	if path == "" || !app.config.Editor().Watch {
		return
	}

	w, err := watcher.New(path)
	if err != nil {
		app.logger.Warn("%v", err)
		return
	}

	app.mu.Lock()
	ctx, cancel := context.WithCancel(app.ctx)
	app.watcher = w
	app.watchCancel = cancel
	app.mu.Unlock()

	go watcher.Run(ctx, w,
		func(ev watcher.Event) { app.post(ev) },
		func(err error) { app.post(err) },
	)
	app.logger.Debug("watching %s", w.Path())
}

// post hands payload to the event loop.
func (app *Application) post(payload any) {
	if err := app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Payload: payload}); err != nil {
		app.logger.Debug("dropped watcher notice: %v", err)
	}
}

// closeWatcher stops the current watcher, if any.
func (app *Application) closeWatcher() error {
	app.mu.Lock()
	w, cancel := app.watcher, app.watchCancel
	app.watcher, app.watchCancel = nil, nil
	app.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if w == nil {
		return nil
	}
	return w.Close()
}
