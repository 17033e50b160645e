package app

import (
	"context"
	"errors"
	"time"

	"github.com/dshills/cellpad/internal/input/key"
	"github.com/dshills/cellpad/internal/project/filestore"
	"github.com/dshills/cellpad/internal/project/watcher"
	"github.com/dshills/cellpad/internal/renderer"
	"github.com/dshills/cellpad/internal/renderer/backend"
)

// eventLoop renders, waits for the next event and handles it until the
// user quits or the loop is stopped.
func (app *Application) eventLoop(ctx context.Context) error {
	events := app.startInputPolling()
	app.render()

	for {
		select {
		case <-ctx.Done():
			app.logger.Info("stopping: %v", ctx.Err())
			return nil

		case <-app.done:
			app.logger.Info("shutdown requested")
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			err := app.handleBackendEvent(ev)
			if errors.Is(err, ErrQuit) {
				app.logger.Info("quit")
				return nil
			}
			if err != nil {
				return err
			}
			app.render()
		}
	}
}

// startInputPolling starts a goroutine that polls the backend and sends
// events to the returned channel. PollEvent blocks, so the goroutine only
// notices done after the next event; stop posts one to wake it.
func (app *Application) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)
		for {
			ev := app.backend.PollEvent()
			select {
			case events <- ev:
			case <-app.done:
				return
			}
			if ev.Type == backend.EventClosed {
				return
			}
		}
	}()

	return events
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev.Key)
	case backend.EventResize:
		app.resize(ev.Width, ev.Height)
	case backend.EventInterrupt:
		app.handleInterrupt(ev.Payload)
	case backend.EventClosed:
		return ErrQuit
	}
	return nil
}

// handleKey dispatches k and keeps the caret on screen.
func (app *Application) handleKey(k key.Event) error {
	s := app.session
	path := s.FilePath

	start := time.Now()
	result := app.dispatcher.Handle(k, s)
	app.metrics.RecordKey(time.Since(start), result.Consumed)

	if result.Consumed {
		s.Message = result.Message
		if result.IsError() && s.Message == "" {
			s.Message = result.Error.Error()
		}
	}

	app.renderer.Apply(result.ViewUpdate)
	s.Viewport.Follow(s.Document)

	if s.FilePath != path {
		app.logger.Info("file name changed to %s", s.FilePath)
		app.closeWatcher()
		app.watch()
	}
	if s.ShouldQuit() {
		return ErrQuit
	}
	return nil
}

// resize fits the renderer and viewport to a terminal of width x height.
func (app *Application) resize(width, height int) {
	s := app.session
	app.renderer.Resize(width, height)
	s.Viewport.Resize(width, height-renderer.ChromeRows)
	s.Viewport.Follow(s.Document)
	app.logger.Debug("resized to %dx%d", width, height)
}

// handleInterrupt handles events posted by other goroutines.
func (app *Application) handleInterrupt(payload any) {
	switch p := payload.(type) {
	case watcher.Event:
		app.handleFileEvent(p)
	case error:
		app.logger.Warn("watcher: %v", p)
	}
}

// handleFileEvent tells the user when the open file changed behind the
// editor. Writes made by our own saves are recognised and ignored.
func (app *Application) handleFileEvent(ev watcher.Event) {
	app.mu.Lock()
	w := app.watcher
	app.mu.Unlock()
	if w == nil || ev.Path != w.Path() {
		return
	}

	s := app.session
	name := filestore.NewFileInfo(s.FilePath).Name
	switch {
	case ev.Gone():
		app.metrics.RecordNotice()
		s.Message = name + " was removed from disk"
		app.logger.Warn("%s: %s", ev.Path, ev.Op)
	case app.store.ChangedOnDisk(s.FilePath):
		app.metrics.RecordNotice()
		s.Message = name + " changed on disk"
		app.logger.Info("%s: %s", ev.Path, ev.Op)
	default:
		app.logger.Debug("%s: %s (own write)", ev.Path, ev.Op)
	}
}

// render paints the current session.
func (app *Application) render() {
	s := app.session
	fi := filestore.NewFileInfo(s.FilePath)
	frame := renderer.Frame{
		Document:     s.Document,
		Viewport:     s.Viewport,
		Prompt:       s.Prompt,
		PromptActive: s.Mode.IsPromptActive(),
		Message:      s.Message,
		FileName:     fi.Name,
	}
	if fi.HasPath() {
		frame.FileType = fi.Type
	}

	start := time.Now()
	app.renderer.Render(frame)
	app.metrics.RecordRender(time.Since(start))
}
