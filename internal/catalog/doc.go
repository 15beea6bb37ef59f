// Package catalog provides the named keypress predicates rules are built
// from.
//
// A Predicate is a pure boolean test over a single key event. The package
// ships a fixed set of builtins — literal identity tests (Enter, Tab,
// Spacebar, the arrows) and OS-aware composites (CtrlWin, Command, Mod1,
// Mod2) that consult the platform detector on every call — and a Catalog
// registry for looking predicates up by name, which is how declarative rule
// files refer to them.
//
// Extension is by composition: register new predicates built from Is, And,
// Or, and Not rather than subclassing anything.
package catalog
