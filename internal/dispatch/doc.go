// Package dispatch matches key events against rules and fires callbacks.
//
// A Rule pairs a set of required predicates with a set of excluded
// predicates and a callback; CheckKeystroke decides satisfaction for one
// event, and a Dispatcher evaluates an ordered rule set exhaustively —
// every rule is checked and every matching callback fires, in declared
// order, even when earlier callbacks fail.
//
// Callback errors are isolated per rule and reported together via
// errors.Join, so one misbehaving rule can neither abort evaluation nor
// hide another rule's failure. Panics are not recovered.
package dispatch
