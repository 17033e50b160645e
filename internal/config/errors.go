package config

import (
	"errors"
	"fmt"
)

var (
	// ErrSettingNotFound is returned for a dotted path that names no setting.
	ErrSettingNotFound = errors.New("unknown setting")

	// ErrTypeMismatch matches every *TypeError.
	ErrTypeMismatch = errors.New("wrong setting type")
)

// ValidationError reports a setting whose value the editor cannot use.
// Load joins one per bad setting.
type ValidationError struct {
	Path   string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s = %#v: %s", e.Path, e.Value, e.Reason)
}

// TypeError is returned by the typed getters when a setting holds a value
// of another type.
type TypeError struct {
	Path string
	Want string
	Got  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s is %s, want %s", e.Path, e.Got, e.Want)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
