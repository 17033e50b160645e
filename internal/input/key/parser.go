package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Key names: "Enter", "Esc", "Tab", "Backspace", "Space", "F5"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Angle brackets: "<C-s>", "<A-f>", "<CR>", "<Esc>"
//
// Ctrl+letter is stored with a lowercase rune.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseParts(strings.Split(spec[1:len(spec)-1], "-"), spec)
	}
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseParts(strings.Split(spec, "+"), spec)
	}
	return parseKey(spec, ModNone)
}

// MustParse is like Parse but panics on error. Use it for built-in bindings.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(fmt.Sprintf("key: MustParse(%q): %v", spec, err))
	}
	return ev
}

func parseParts(parts []string, spec string) (Event, error) {
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		mods = mods.With(mod)
	}
	return parseKey(strings.TrimSpace(parts[len(parts)-1]), mods)
}

func parseKey(name string, mods Modifier) (Event, error) {
	if name == "" {
		return Event{}, ErrInvalidSpec
	}
	if strings.EqualFold(name, "space") {
		return NewRuneEvent(' ', mods), nil
	}
	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || size != len(name) {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	if mods.Has(ModCtrl) {
		r = unicode.ToLower(r)
	}
	return NewRuneEvent(r, mods), nil
}
