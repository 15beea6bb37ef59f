package key

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

// Event represents a single keydown event.
//
// The Key field is the only attribute the matching layer reads; events are
// never mutated. A rule that requires several keys at once (say Mod1 and
// Shift) can only fire if the host merges held-key state into the identity
// checks of a single event — this package does no sequence buffering, so
// hosts that report one event per held key cannot satisfy such rules.
type Event struct {
	// Key identifies the key pressed.
	Key Identity

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(id Identity) Event {
	return Event{
		Key:       id,
		Timestamp: time.Now(),
	}
}

// IsPrintable returns true if the identity is a single printable character.
func (e Event) IsPrintable() bool {
	r, size := utf8.DecodeRuneInString(string(e.Key))
	return size == len(e.Key) && size > 0 && unicode.IsPrint(r)
}

// IsModifier returns true if this event came from a modifier key.
func (e Event) IsModifier() bool {
	return e.Key.IsModifier()
}

// String returns a human-readable representation.
func (e Event) String() string {
	return e.Key.String()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %q}", string(e.Key))
}
