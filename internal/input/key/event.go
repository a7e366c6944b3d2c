package key

import "fmt"

// Event represents a single keyboard event: either a non-printable key
// or a character, together with the modifier state at press time.
type Event struct {
	// Key is the non-printable key, or KeyRune for character input.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Mod holds the modifier state.
	Mod Modifier
}

// NewKeyEvent creates an event for a non-printable key.
func NewKeyEvent(k Key, mod Modifier) Event {
	return Event{Key: k, Mod: mod}
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mod Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Mod: mod}
}

// IsRune returns true if this is a character event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// String returns a human-readable representation like "Ctrl+v" or "PageUp".
func (e Event) String() string {
	if e.IsRune() {
		if e.Mod.IsEmpty() {
			return string(e.Rune)
		}
		return fmt.Sprintf("%s+%c", e.Mod, e.Rune)
	}
	if e.Mod.IsEmpty() {
		return e.Key.String()
	}
	return fmt.Sprintf("%s+%s", e.Mod, e.Key)
}
