package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/cellpad/internal/config/loader"
	"github.com/dshills/cellpad/internal/input/key"
)

// EnvPrefix is the prefix of environment variables read as settings.
const EnvPrefix = "CELLPAD_"

// Config holds the merged settings.
type Config struct {
	mu sync.RWMutex

	data map[string]any

	fs         loader.FileSystem
	configDir  string
	configFile string
	envPrefix  string

	// loadedFile is the config file that supplied settings, if any.
	loadedFile string
}

// Option configures a Config instance.
type Option func(*Config)

// WithConfigDir sets the directory searched for config.toml/yaml/yml.
func WithConfigDir(dir string) Option {
	return func(c *Config) {
		c.configDir = dir
	}
}

// WithConfigFile sets an explicit config file. Its extension selects the
// format.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		c.configFile = path
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithFileSystem sets the file system config files are read from.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// New creates a Config holding the defaults.
func New(opts ...Option) *Config {
	c := &Config{
		data:      defaultConfig(),
		fs:        loader.DefaultFS(),
		envPrefix: EnvPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.configDir == "" {
		c.configDir = DefaultConfigDir()
	}
	return c
}

// Load merges the config file and environment over the defaults and
// validates the result. On error the previous settings are kept.
func (c *Config) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := defaultConfig()

	fileData, file, err := c.loadFile()
	if err != nil {
		return err
	}
	data = loader.DeepMerge(data, fileData)

	envData, err := loader.NewEnvLoader(c.envPrefix).Load()
	if err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}
	data = loader.DeepMerge(data, envData)

	if err := validate(data); err != nil {
		return err
	}

	c.mu.Lock()
	c.data = data
	c.loadedFile = file
	c.mu.Unlock()
	return nil
}

func (c *Config) loadFile() (map[string]any, string, error) {
	candidates := []string{c.configFile}
	if c.configFile == "" {
		candidates = candidates[:0]
		for _, ext := range loader.Extensions {
			candidates = append(candidates, filepath.Join(c.configDir, "config"+ext))
		}
	}

	for _, path := range candidates {
		l, err := loader.ForPath(c.fs, path)
		if err != nil {
			return nil, "", err
		}
		data, err := l.Load()
		if err != nil {
			return nil, "", err
		}
		if data != nil {
			return data, path, nil
		}
	}
	return nil, "", nil
}

// LoadedFile returns the config file the settings came from, or "".
func (c *Config) LoadedFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedFile
}

// Get returns the value at the given path.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getPath(c.data, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Want: "string", Got: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	return toInt(path, v)
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Want: "bool", Got: typeName(v)}
	}
	return b, nil
}

// Set validates and stores a value at the given path.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, known := getPath(defaultConfig(), path); !known {
		return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	data := loader.DeepMerge(nil, c.data)
	if err := setPath(data, path, value); err != nil {
		return err
	}
	if err := validate(data); err != nil {
		return err
	}
	c.data = data
	return nil
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
}

// EditorConfig holds editing behaviour settings.
type EditorConfig struct {
	// QuitConfirmations is how many extra quit presses a modified document
	// needs.
	QuitConfirmations int
	// Watch reports external changes to the open file.
	Watch bool
}

// KeysConfig holds the bindings of the instant and find commands.
type KeysConfig struct {
	Quit key.Event
	Save key.Event
	Find key.Event
}

// UIConfig holds display settings.
type UIConfig struct {
	StatusFG colorful.Color
	StatusBG colorful.Color
	EmptyRow string
}

// Log returns the logging settings.
func (c *Config) Log() LogConfig {
	level, _ := c.GetString("log.level")
	file, _ := c.GetString("log.file")
	return LogConfig{Level: level, File: expandHome(file)}
}

// Editor returns the editing settings.
func (c *Config) Editor() EditorConfig {
	n, _ := c.GetInt("editor.quit_confirmations")
	watch, _ := c.GetBool("editor.watch")
	return EditorConfig{QuitConfirmations: n, Watch: watch}
}

// Keys returns the parsed key bindings. Settings are validated on load, so
// parse failures fall back to the defaults.
func (c *Config) Keys() KeysConfig {
	parse := func(path string) key.Event {
		spec, _ := c.GetString(path)
		ev, err := key.Parse(spec)
		if err != nil {
			def, _ := getPath(defaultConfig(), path)
			ev = key.MustParse(def.(string))
		}
		return ev
	}
	return KeysConfig{
		Quit: parse("keys.quit"),
		Save: parse("keys.save"),
		Find: parse("keys.find"),
	}
}

// UI returns the display settings.
func (c *Config) UI() UIConfig {
	color := func(path string) colorful.Color {
		hex, _ := c.GetString(path)
		col, err := colorful.Hex(hex)
		if err != nil {
			def, _ := getPath(defaultConfig(), path)
			col, _ = colorful.Hex(def.(string))
		}
		return col
	}
	empty, _ := c.GetString("ui.empty_row")
	return UIConfig{
		StatusFG: color("ui.status_fg"),
		StatusBG: color("ui.status_bg"),
		EmptyRow: empty,
	}
}

// DefaultConfigDir returns the default user configuration directory.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cellpad")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cellpad")
}

// DefaultLogFile returns the log file used in debug mode when log.file is
// empty.
func DefaultLogFile() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "cellpad", "cellpad.log")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "cellpad", "cellpad.log")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"log": map[string]any{
			"level": "info",
			"file":  "",
		},
		"editor": map[string]any{
			"quit_confirmations": 1,
			"watch":              true,
		},
		"keys": map[string]any{
			"quit": "Ctrl+Q",
			"save": "Ctrl+S",
			"find": "Ctrl+F",
		},
		"ui": map[string]any{
			"status_fg": "#000000",
			"status_bg": "#c0c0c0",
			"empty_row": "~",
		},
	}
}

var logLevels = []string{"debug", "info", "warn", "error"}

// validate checks every known setting and returns all failures joined.
func validate(data map[string]any) error {
	var errs []error
	fail := func(path, msg string, v any) {
		errs = append(errs, &ValidationError{Path: path, Value: v, Reason: msg})
	}
	str := func(path string) (string, bool) {
		v, _ := getPath(data, path)
		s, ok := v.(string)
		if !ok {
			fail(path, "expected string, got "+typeName(v), v)
		}
		return s, ok
	}

	if level, ok := str("log.level"); ok && !contains(logLevels, strings.ToLower(level)) {
		fail("log.level", "must be one of "+strings.Join(logLevels, ", "), level)
	}
	str("log.file")

	v, _ := getPath(data, "editor.quit_confirmations")
	if n, err := toInt("editor.quit_confirmations", v); err != nil {
		fail("editor.quit_confirmations", err.Error(), v)
	} else if n < 0 {
		fail("editor.quit_confirmations", "must not be negative", n)
	}
	if v, _ := getPath(data, "editor.watch"); typeName(v) != "bool" {
		fail("editor.watch", "expected bool, got "+typeName(v), v)
	}

	bound := make(map[string]string)
	for _, name := range []string{"quit", "save", "find"} {
		path := "keys." + name
		spec, ok := str(path)
		if !ok {
			continue
		}
		ev, err := key.Parse(spec)
		if err != nil {
			fail(path, err.Error(), spec)
			continue
		}
		if other, dup := bound[ev.String()]; dup {
			fail(path, "same key as keys."+other, spec)
		}
		bound[ev.String()] = name
	}

	for _, path := range []string{"ui.status_fg", "ui.status_bg"} {
		if hex, ok := str(path); ok {
			if _, err := colorful.Hex(hex); err != nil {
				fail(path, "expected a hex colour like #1e1e2e", hex)
			}
		}
	}
	str("ui.empty_row")

	return errors.Join(errs...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func toInt(path string, v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	}
	return 0, &TypeError{Path: path, Want: "int", Got: typeName(v)}
}

func expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = cm[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}

	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, ".") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
