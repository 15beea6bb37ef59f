// Package source adapts host input events into key events.
//
// Terminals cannot report a bare modifier keydown the way a browser does:
// a Control press is only visible once combined with another key. The tcell
// adapter therefore reports Control for control-chord keys, which is enough
// for the OS-aware predicates to fire in terminal programs, but hosts that
// deliver true per-key events (browsers, UI frameworks) remain the intended
// sources for modifier-heavy rule sets.
package source

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keywatch/internal/key"
)

// FromTcell converts a tcell key event into a key event. The second return
// is false when the terminal key has no identity in the event model
// (function keys, navigation keys outside the catalog).
func FromTcell(ev *tcell.EventKey) (key.Event, bool) {
	if ev == nil {
		return key.Event{}, false
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		return key.NewEvent(key.Enter), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewEvent(key.Backspace), true
	case tcell.KeyEscape:
		return key.NewEvent(key.Escape), true
	case tcell.KeyTab:
		return key.NewEvent(key.Tab), true
	case tcell.KeyUp:
		return key.NewEvent(key.ArrowUp), true
	case tcell.KeyDown:
		return key.NewEvent(key.ArrowDown), true
	case tcell.KeyLeft:
		return key.NewEvent(key.ArrowLeft), true
	case tcell.KeyRight:
		return key.NewEvent(key.ArrowRight), true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return key.NewEvent(key.Spacebar), true
		}
		return key.NewEvent(key.Identity(string(r))), true
	}

	// Control chords arrive as C0 control keys (Ctrl-A through Ctrl-Z and
	// friends). Report them as the Control key itself.
	if ev.Key() < tcell.Key(' ') || ev.Modifiers()&tcell.ModCtrl != 0 {
		return key.NewEvent(key.Control), true
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		return key.NewEvent(key.Alt), true
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		return key.NewEvent(key.Meta), true
	}

	return key.Event{}, false
}
