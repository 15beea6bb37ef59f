package dispatch

import (
	"github.com/dshills/keywatch/internal/catalog"
	"github.com/dshills/keywatch/internal/key"
)

// Callback is invoked with the event when a rule matches.
type Callback func(key.Event) error

// Rule describes one keystroke pattern and the callback it triggers.
type Rule struct {
	// Name identifies the rule in error reports and hook notifications.
	// Optional; unnamed rules are reported by their registration ID.
	Name string

	// Required predicates must all be true for the rule to match.
	// An empty list is vacuously satisfied.
	Required []catalog.Predicate

	// Excluded predicates must all be false for the rule to match.
	// An empty list is vacuously satisfied.
	Excluded []catalog.Predicate

	// Do is the callback fired on a match.
	Do Callback

	// Description provides documentation for the rule.
	Description string
}

// NewRule creates a rule requiring all given predicates.
func NewRule(do Callback, required ...catalog.Predicate) Rule {
	return Rule{
		Required: required,
		Do:       do,
	}
}

// WithName sets the rule name.
func (r Rule) WithName(name string) Rule {
	r.Name = name
	return r
}

// WithExcluded sets the excluded predicates.
func (r Rule) WithExcluded(preds ...catalog.Predicate) Rule {
	r.Excluded = preds
	return r
}

// WithDescription sets the description.
func (r Rule) WithDescription(desc string) Rule {
	r.Description = desc
	return r
}

// CheckKeystroke returns true iff every required predicate is true for the
// event and every excluded predicate is false. Both conjunctions are
// vacuous on empty lists. Nil predicates are skipped. Predicates are pure,
// so the short-circuit on first failure is not observable.
func CheckKeystroke(r Rule, ev key.Event) bool {
	for _, p := range r.Required {
		if p != nil && !p(ev) {
			return false
		}
	}
	for _, p := range r.Excluded {
		if p != nil && p(ev) {
			return false
		}
	}
	return true
}
