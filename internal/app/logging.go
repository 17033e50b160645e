package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogLevel is the severity of a log line.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel maps a config or flag value to a level. Unknown names are
// info; the config and the command line validate names before this.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	}
	return LogLevelInfo
}

// sink is the output shared by a logger and everything derived from it.
type sink struct {
	mu    sync.Mutex
	w     io.Writer
	level LogLevel
}

// Logger writes levelled lines to a file. The editor owns the terminal, so
// there is no console output. Derived loggers share the sink and its level.
type Logger struct {
	sink   *sink
	prefix string
	fields map[string]any
	// suffix is fields rendered once, sorted by key.
	suffix string
}

// LoggerConfig configures a logger.
type LoggerConfig struct {
	Level LogLevel
	// Output receives log lines. Nil discards them.
	Output io.Writer
	Prefix string
}

// DefaultLoggerConfig logs at info with the program name as prefix and no
// output.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{Level: LogLevelInfo, Prefix: "cellpad"}
}

func NewLogger(cfg LoggerConfig) *Logger {
	return &Logger{
		sink:   &sink{w: cfg.Output, level: cfg.Level},
		prefix: cfg.Prefix,
	}
}

// NullLogger discards everything.
var NullLogger = NewLogger(LoggerConfig{})

// OpenLogFile opens path for appending and creates its directory.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return f, nil
}

func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a logger that appends fields to every line. l is not
// changed.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, merged[k])
	}

	return &Logger{sink: l.sink, prefix: l.prefix, fields: merged, suffix: sb.String()}
}

// WithComponent tags lines with the part of the editor that wrote them.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// SetLevel changes the level of l and every logger sharing its output.
func (l *Logger) SetLevel(level LogLevel) {
	l.sink.mu.Lock()
	l.sink.level = level
	l.sink.mu.Unlock()
}

func (l *Logger) Level() LogLevel {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.level
}

func (l *Logger) Debug(msg string, args ...any) { l.log(LogLevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.log(LogLevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(LogLevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.log(LogLevelError, msg, args) }

// log writes one line:
//
//	2006-01-02T15:04:05.000 WARN  cellpad: message key=value
func (l *Logger) log(level LogLevel, msg string, args []any) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil || level < s.level {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	prefix := ""
	if l.prefix != "" {
		prefix = l.prefix + ": "
	}
	_, _ = fmt.Fprintf(s.w, "%s %-5s %s%s%s\n",
		time.Now().Format("2006-01-02T15:04:05.000"), level, prefix, msg, l.suffix)
}
