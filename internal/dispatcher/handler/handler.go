// Package handler defines command families and the commands they produce.
//
// A Family turns a key event into a Command. Parsing never touches the
// session; only Apply mutates it. The dispatcher asks families in priority
// order and applies the first command produced.
package handler

import (
	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/input/key"
)

// Command is an action ready to run against a session.
type Command interface {
	// Name returns the action name, e.g. "cursor.moveLeft".
	Name() string

	// Apply executes the command.
	Apply(s *execctx.Session) Result
}

// Family converts key events into commands.
type Family interface {
	// Name returns the family name used in logs.
	Name() string

	// Parse returns the command for ev, or false if ev is not one of the
	// family's keys. It must not modify s.
	Parse(ev key.Event, s *execctx.Session) (Command, bool)
}

// Confirmer is implemented by delayed commands to accept prompt input.
type Confirmer interface {
	Confirm(s *execctx.Session) Result
}

// CommandFunc adapts a function to the Command interface.
type CommandFunc struct {
	name string
	fn   func(s *execctx.Session) Result
}

// NewCommandFunc creates a named command from a function.
func NewCommandFunc(name string, fn func(s *execctx.Session) Result) CommandFunc {
	return CommandFunc{name: name, fn: fn}
}

// Name implements Command.Name.
func (c CommandFunc) Name() string { return c.name }

// Apply implements Command.Apply.
func (c CommandFunc) Apply(s *execctx.Session) Result {
	if c.fn == nil {
		return Errorf("command %s has no function", c.name)
	}
	return c.fn(s)
}

// ActionTable is a Family backed by a fixed table of actions. The resolver
// maps an event to an action name; the table maps the name to its function.
type ActionTable struct {
	name    string
	resolve func(ev key.Event, s *execctx.Session) (string, bool)
	actions map[string]func(s *execctx.Session) Result
}

// NewActionTable creates an empty action table family.
func NewActionTable(name string, resolve func(ev key.Event, s *execctx.Session) (string, bool)) *ActionTable {
	return &ActionTable{
		name:    name,
		resolve: resolve,
		actions: make(map[string]func(s *execctx.Session) Result),
	}
}

// Register registers the function for an action name.
func (t *ActionTable) Register(action string, fn func(s *execctx.Session) Result) {
	t.actions[action] = fn
}

// Name implements Family.Name.
func (t *ActionTable) Name() string { return t.name }

// Parse implements Family.Parse.
func (t *ActionTable) Parse(ev key.Event, s *execctx.Session) (Command, bool) {
	action, ok := t.resolve(ev, s)
	if !ok {
		return nil, false
	}
	fn, ok := t.actions[action]
	if !ok {
		return nil, false
	}
	return NewCommandFunc(action, fn), true
}
