package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dshills/cellpad/internal/config"
	"github.com/dshills/cellpad/internal/dispatcher"
	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/engine/buffer"
	"github.com/dshills/cellpad/internal/project/filestore"
	"github.com/dshills/cellpad/internal/renderer/backend"
	"github.com/dshills/cellpad/internal/renderer/viewport"
)

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	app  *Application
	opts Options

	// configErr is reported once the logger and session exist.
	configErr error
}

func newBootstrapper(app *Application) *bootstrapper {
	return &bootstrapper{app: app, opts: app.opts}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap() error {
	steps := []struct {
		component string
		init      func() error
	}{
		{"config", b.initConfig},
		{"logger", b.initLogger},
		{"store", b.initStore},
		{"session", b.initSession},
		{"dispatcher", b.initDispatcher},
		{"backend", b.initBackend},
	}
	for _, step := range steps {
		if err := step.init(); err != nil {
			b.cleanup()
			return &InitError{Component: step.component, Err: err}
		}
	}
	return nil
}

// initConfig loads the configuration. A broken config file is not fatal:
// the defaults are used and the error is reported on the command line.
func (b *bootstrapper) initConfig() error {
	var opts []config.Option
	if b.opts.ConfigPath != "" {
		opts = append(opts, config.WithConfigFile(b.opts.ConfigPath))
	}
	if b.opts.ConfigDir != "" {
		opts = append(opts, config.WithConfigDir(b.opts.ConfigDir))
	}
	b.app.config = config.New(opts...)
	b.configErr = b.app.config.Load(context.Background())
	return nil
}

// initLogger opens the log file. Without a configured file, logging is off
// unless debug mode picks the default location.
func (b *bootstrapper) initLogger() error {
	logCfg := b.app.config.Log()

	level := ParseLogLevel(logCfg.Level)
	if b.opts.LogLevel != "" {
		level = ParseLogLevel(b.opts.LogLevel)
	}
	if b.opts.Debug {
		level = LogLevelDebug
	}

	var out io.Writer = b.opts.LogOutput
	if out == nil {
		path := logCfg.File
		if path == "" && b.opts.Debug {
			path = config.DefaultLogFile()
		}
		if path != "" {
			f, err := OpenLogFile(path)
			if err != nil {
				return err
			}
			b.app.logCloser = f
			out = f
		}
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Output = out
	b.app.logger = NewLogger(cfg).WithField("session", uuid.NewString())

	if b.configErr != nil {
		b.app.logger.Warn("config: %v", b.configErr)
	} else if file := b.app.config.LoadedFile(); file != "" {
		b.app.logger.Info("config loaded from %s", file)
	}
	return nil
}

func (b *bootstrapper) initStore() error {
	b.app.store = b.opts.Store
	if b.app.store == nil {
		b.app.store = filestore.New()
	}
	return nil
}

// initSession creates the session and loads the file, if any.
func (b *bootstrapper) initSession() error {
	s := execctx.New(buffer.NewDocument(), viewport.NewViewport(1, 1)).
		WithStore(b.app.store).
		WithLogger(b.app.logger.WithComponent("dispatcher"))

	keys := b.app.config.Keys()
	s.Keymap = execctx.Keymap{Quit: keys.Quit, Save: keys.Save, Find: keys.Find}
	s.QuitConfirmations = b.app.config.Editor().QuitConfirmations
	if err := s.Validate(); err != nil {
		return err
	}
	b.app.session = s

	if b.configErr != nil {
		s.Message = (&DegradedError{Err: fmt.Errorf("config error: %w", b.configErr), Fallback: "using defaults"}).Error()
	}
	if b.opts.File != "" {
		if err := b.app.loadDocument(context.Background(), b.opts.File); err != nil {
			s.Message = err.Error()
		}
	}
	return nil
}

func (b *bootstrapper) initDispatcher() error {
	cfg := dispatcher.DefaultConfig()
	if b.opts.Debug {
		cfg = cfg.WithMetrics().WithPanicRecovery(false)
	}
	b.app.dispatcher = dispatcher.NewDefault(cfg)
	return nil
}

func (b *bootstrapper) initBackend() error {
	if b.opts.Backend != nil {
		b.app.backend = b.opts.Backend
		return nil
	}
	ui := b.app.config.UI()
	term, err := backend.NewTerminal(backend.NewTheme(ui.StatusFG, ui.StatusBG))
	if err != nil {
		return err
	}
	b.app.backend = term
	return nil
}

// cleanup releases what earlier steps opened.
func (b *bootstrapper) cleanup() {
	if b.app.logCloser != nil {
		_ = b.app.logCloser.Close()
		b.app.logCloser = nil
	}
}

// loadDocument replaces the document with the file at path. A file that
// does not exist yet is an empty document under that name. Any other
// failure leaves an empty unnamed document, so a later save cannot
// overwrite a file that was never shown.
func (app *Application) loadDocument(ctx context.Context, path string) error {
	s := app.session
	lines, err := app.store.Load(ctx, path)
	if err != nil {
		s.Document.Reset(nil)
		s.FilePath = ""
		derr := &DegradedError{Err: err, Fallback: "opened an empty document"}
		app.logger.Warn("%v", derr)
		return derr
	}
	s.Document.Reset(lines)
	s.FilePath = path
	app.logger.Info("loaded %s: %d lines", path, len(lines))
	return nil
}
