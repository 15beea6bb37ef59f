package dispatch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/keywatch/internal/key"
)

// PreHook runs before rule evaluation. Returning true consumes the event
// and skips evaluation for it.
type PreHook func(key.Event) bool

// PostHook runs after rule evaluation with the names/IDs of rules that
// fired, in firing order. It runs even when nothing fired.
type PostHook func(ev key.Event, fired []string)

// registered pairs a rule with its registration ID.
type registered struct {
	id   string
	rule Rule
}

// label returns the identifier used in error reports and hook payloads.
func (r registered) label() string {
	if r.rule.Name != "" {
		return r.rule.Name
	}
	return r.id
}

// Dispatcher evaluates an ordered rule set against incoming key events.
// It is safe for concurrent use; rules may be added, removed, or replaced
// while events are being dispatched.
type Dispatcher struct {
	mu        sync.RWMutex
	rules     []registered
	preHooks  []PreHook
	postHooks []PostHook
}

// NewDispatcher creates a dispatcher over the given rules, evaluated in
// the order given.
func NewDispatcher(rules ...Rule) *Dispatcher {
	d := &Dispatcher{}
	for _, r := range rules {
		d.Add(r)
	}
	return d
}

// Add appends a rule to the set and returns its registration ID.
func (d *Dispatcher) Add(r Rule) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := uuid.NewString()
	d.rules = append(d.rules, registered{id: id, rule: r})
	return id
}

// Remove deletes the rule with the given registration ID.
// Returns false if no such rule exists.
func (d *Dispatcher) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, r := range d.rules {
		if r.id == id {
			d.rules = append(d.rules[:i], d.rules[i+1:]...)
			return true
		}
	}
	return false
}

// SetRules replaces the entire rule set. Used by live reload.
func (d *Dispatcher) SetRules(rules []Rule) {
	regs := make([]registered, 0, len(rules))
	for _, r := range rules {
		regs = append(regs, registered{id: uuid.NewString(), rule: r})
	}

	d.mu.Lock()
	d.rules = regs
	d.mu.Unlock()
}

// Len returns the number of registered rules.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rules)
}

// AddPreHook registers a hook that runs before rule evaluation.
func (d *Dispatcher) AddPreHook(h PreHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, h)
}

// AddPostHook registers a hook that runs after rule evaluation.
func (d *Dispatcher) AddPostHook(h PostHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, h)
}

// Dispatch evaluates every rule against the event, in declared order, and
// fires the callback of every rule that matches. Evaluation never stops
// early: callback errors are collected and returned joined, and a later
// rule still fires after an earlier callback failed. No rule matching is
// a no-op, not an error.
//
// Callbacks run outside the dispatcher's lock, so a callback may add or
// remove rules; such changes take effect for subsequent events only.
func (d *Dispatcher) Dispatch(ev key.Event) error {
	d.mu.RLock()
	rules := make([]registered, len(d.rules))
	copy(rules, d.rules)
	pre := make([]PreHook, len(d.preHooks))
	copy(pre, d.preHooks)
	post := make([]PostHook, len(d.postHooks))
	copy(post, d.postHooks)
	d.mu.RUnlock()

	for _, h := range pre {
		if h != nil && h(ev) {
			return nil
		}
	}

	var errs []error
	var fired []string
	for _, r := range rules {
		if !CheckKeystroke(r.rule, ev) {
			continue
		}
		fired = append(fired, r.label())
		if r.rule.Do == nil {
			continue
		}
		if err := r.rule.Do(ev); err != nil {
			errs = append(errs, fmt.Errorf("rule %q: %w", r.label(), err))
		}
	}

	for _, h := range post {
		if h != nil {
			h(ev, fired)
		}
	}

	return errors.Join(errs...)
}

// Handle builds a dispatcher over the rules and returns its dispatch
// function. The closure is reusable across arbitrarily many events.
func Handle(rules ...Rule) func(key.Event) error {
	d := NewDispatcher(rules...)
	return d.Dispatch
}
