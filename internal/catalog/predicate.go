package catalog

import (
	"github.com/dshills/keywatch/internal/key"
)

// Predicate is a pure boolean test over a single key event.
// Predicates must not mutate the event or carry side effects.
type Predicate func(key.Event) bool

// Is returns a predicate matching exactly the given key identity.
func Is(id key.Identity) Predicate {
	return func(e key.Event) bool {
		return e.Key == id
	}
}

// And returns a predicate true iff every given predicate is true.
// With no arguments it is vacuously true. Nil entries are skipped.
func And(preds ...Predicate) Predicate {
	return func(e key.Event) bool {
		for _, p := range preds {
			if p != nil && !p(e) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate true iff at least one given predicate is true.
// With no arguments it is always false. Nil entries are skipped.
func Or(preds ...Predicate) Predicate {
	return func(e key.Event) bool {
		for _, p := range preds {
			if p != nil && p(e) {
				return true
			}
		}
		return false
	}
}

// Not returns the negation of a predicate. Not(nil) is always true.
func Not(p Predicate) Predicate {
	return func(e key.Event) bool {
		return p == nil || !p(e)
	}
}
