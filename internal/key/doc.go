// Package key defines the key event model for the matching system.
//
// An Event carries a single string Identity naming the key that produced it
// ("Enter", "Control", " ", "ArrowUp"). The matching layer reads nothing
// else: modifier flags on a host's native event are deliberately not part of
// the model, so all modifier logic routes through the "Control"/"Meta"
// identities plus platform detection. This keeps the library agnostic to any
// specific host event shape.
package key
