package loader

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document. Nested mappings must have string
// keys. yaml.v3 only reports positions in the message text, so the line is
// scanned from there.
func ParseYAML(source string, data []byte) (map[string]any, error) {
	var out map[string]any
	err := yaml.Unmarshal(data, &out)
	if err == nil {
		return out, nil
	}
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var te *yaml.TypeError
	if !errors.As(err, &te) {
		var line int
		if _, scanErr := fmt.Sscanf(err.Error(), "yaml: line %d:", &line); scanErr == nil {
			pe.Line = line
		}
	}
	return nil, pe
}
