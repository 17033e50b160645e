package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if Ctrl, Alt or Meta is held.
// Shift is part of the character for rune events and is ignored there.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsPrintable returns true if the event types a character: a printable
// rune without Ctrl, Alt or Meta.
func (e Event) IsPrintable() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// Is reports whether e is the unmodified special key k.
func (e Event) Is(k Key) bool {
	return e.Key == k && e.Modifiers == ModNone
}

// Matches reports whether e is the same key press as binding. Rune
// comparison ignores case when Ctrl is held since terminals report Ctrl+S
// and Ctrl+s alike.
func (e Event) Matches(binding Event) bool {
	if e.Key != binding.Key {
		return false
	}
	if e.Key != KeyRune {
		return e.Modifiers == binding.Modifiers
	}
	if e.Modifiers.Has(ModCtrl) || binding.Modifiers.Has(ModCtrl) {
		em := e.Modifiers &^ ModShift
		bm := binding.Modifiers &^ ModShift
		return em == bm && unicode.ToLower(e.Rune) == unicode.ToLower(binding.Rune)
	}
	return e.Rune == binding.Rune && e.Modifiers == binding.Modifiers
}

// String returns a canonical representation such as "Ctrl+S" or "Enter".
// The result parses back to an equal event with Parse.
func (e Event) String() string {
	var name string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune && e.Modifiers.Has(ModCtrl):
		name = strings.ToUpper(string(e.Rune))
	case e.Key == KeyRune:
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}
