package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOML decodes a TOML document. Decode errors carry their line and
// column.
func ParseTOML(source string, data []byte) (map[string]any, error) {
	var out map[string]any
	err := toml.Unmarshal(data, &out)
	if err == nil {
		return out, nil
	}
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		pe.Line, pe.Column = de.Position()
	}
	return nil, pe
}
