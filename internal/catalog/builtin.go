package catalog

import (
	"github.com/dshills/keywatch/internal/key"
	"github.com/dshills/keywatch/internal/platform"
)

// Literal predicates, each an exact identity test.
var (
	Enter     = Is(key.Enter)
	Backspace = Is(key.Backspace)
	Shift     = Is(key.Shift)
	Escape    = Is(key.Escape)
	Tab       = Is(key.Tab)
	Control   = Is(key.Control)
	Meta      = Is(key.Meta)
	Alt       = Is(key.Alt)
	Spacebar  = Is(key.Spacebar)
	Up        = Is(key.ArrowUp)
	Down      = Is(key.ArrowDown)
	Left      = Is(key.ArrowLeft)
	Right     = Is(key.ArrowRight)
)

// OS-aware predicates bound to the default platform detector.
// The detector is consulted on every call, never cached.
var (
	CtrlWin    = CtrlWinOn(platform.Default)
	WindowsKey = WindowsKeyOn(platform.Default)
	CtrlMac    = CtrlMacOn(platform.Default)
	Command    = CommandOn(platform.Default)
	Mod1       = Mod1On(platform.Default)
	Mod2       = Mod2On(platform.Default)
)

// CtrlWinOn matches the Control key on non-macOS platforms.
func CtrlWinOn(d *platform.Detector) Predicate {
	return func(e key.Event) bool {
		return e.Key == key.Control && !d.IsMacOS()
	}
}

// WindowsKeyOn matches the Meta key on non-macOS platforms.
func WindowsKeyOn(d *platform.Detector) Predicate {
	return func(e key.Event) bool {
		return e.Key == key.Meta && !d.IsMacOS()
	}
}

// CtrlMacOn matches the Control key on macOS.
func CtrlMacOn(d *platform.Detector) Predicate {
	return func(e key.Event) bool {
		return e.Key == key.Control && d.IsMacOS()
	}
}

// CommandOn matches the Meta key on macOS.
func CommandOn(d *platform.Detector) Predicate {
	return func(e key.Event) bool {
		return e.Key == key.Meta && d.IsMacOS()
	}
}

// Mod1On matches the platform's primary shortcut modifier:
// Meta on macOS, Control elsewhere.
func Mod1On(d *platform.Detector) Predicate {
	return func(e key.Event) bool {
		if d.IsMacOS() {
			return e.Key == key.Meta
		}
		return e.Key == key.Control
	}
}

// Mod2On matches the platform-inverted modifier:
// Control on macOS, Meta elsewhere. For any single event at most one of
// Mod1 and Mod2 is true.
func Mod2On(d *platform.Detector) Predicate {
	return func(e key.Event) bool {
		if d.IsMacOS() {
			return e.Key == key.Control
		}
		return e.Key == key.Meta
	}
}
