package key

// Identity names the key that produced an event, using the identity
// strings a host environment reports for keydown events ("Enter",
// "Control", " ", "ArrowUp", ...).
type Identity string

const (
	// Special keys
	Enter     Identity = "Enter"
	Backspace Identity = "Backspace"
	Escape    Identity = "Escape"
	Tab       Identity = "Tab"

	// Modifier keys
	Shift   Identity = "Shift"
	Control Identity = "Control"
	Meta    Identity = "Meta"
	Alt     Identity = "Alt"

	// Spacebar is reported as a single space character.
	Spacebar Identity = " "

	// Arrow keys
	ArrowUp    Identity = "ArrowUp"
	ArrowDown  Identity = "ArrowDown"
	ArrowLeft  Identity = "ArrowLeft"
	ArrowRight Identity = "ArrowRight"
)

// String returns a human-readable name for the identity.
// The spacebar renders as "Space" rather than an invisible character.
func (id Identity) String() string {
	if id == Spacebar {
		return "Space"
	}
	return string(id)
}

// IsModifier returns true if this is a modifier key.
func (id Identity) IsModifier() bool {
	switch id {
	case Shift, Control, Meta, Alt:
		return true
	default:
		return false
	}
}

// IsArrow returns true if this is an arrow key.
func (id Identity) IsArrow() bool {
	switch id {
	case ArrowUp, ArrowDown, ArrowLeft, ArrowRight:
		return true
	default:
		return false
	}
}
