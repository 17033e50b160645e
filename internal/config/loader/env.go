package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "CELLPAD_")
	mapping map[string]string // Env var -> config path
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "CELLPAD_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		environ: os.Environ,
	}
}

// defaultEnvMapping maps variables whose setting names contain underscores,
// which the generic SECTION_NAME rule cannot express.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "EDITOR_QUIT_CONFIRMATIONS": "editor.quit_confirmations",
		prefix + "UI_STATUS_FG":              "ui.status_fg",
		prefix + "UI_STATUS_BG":              "ui.status_bg",
		prefix + "UI_EMPTY_ROW":              "ui.empty_row",
	}
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Load reads prefixed environment variables and returns a configuration
// map. Empty values are kept, not treated as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setByPath(config, path, parseValue(value))
	}

	return config, nil
}

// envToPath converts CELLPAD_LOG_LEVEL to log.level. The first word names
// the section; the rest, lowercased, name the setting.
func (l *EnvLoader) envToPath(env string) string {
	section, setting, ok := strings.Cut(strings.TrimPrefix(env, l.prefix), "_")
	if !ok || section == "" || setting == "" {
		return ""
	}
	return strings.ToLower(section) + "." + strings.ToLower(setting)
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
