package dispatcher

import "time"

// DefaultSlowCommand is the run time above which a command is logged as slow.
const DefaultSlowCommand = 50 * time.Millisecond

// Config tunes the dispatcher.
type Config struct {
	// Metrics turns on per-command timing counters.
	Metrics bool

	// RecoverPanics turns a panicking command into an error result
	// instead of crashing the editor.
	RecoverPanics bool

	// SlowCommand logs commands that run longer than this at WARN.
	// Zero disables the check.
	SlowCommand time.Duration
}

// DefaultConfig recovers panics and warns about slow commands.
func DefaultConfig() Config {
	return Config{RecoverPanics: true, SlowCommand: DefaultSlowCommand}
}

// WithMetrics returns c with metrics on.
func (c Config) WithMetrics() Config {
	c.Metrics = true
	return c
}

// WithPanicRecovery returns c with panic recovery enabled or disabled.
func (c Config) WithPanicRecovery(enabled bool) Config {
	c.RecoverPanics = enabled
	return c
}
