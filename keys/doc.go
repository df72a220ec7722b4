// Package keys provides key domains: sorted, duplicate-free sets of int64
// identifiers with a per-position active marker.
//
// A Domain is the shared index behind sparse vectors. Many vectors can be
// built over the same keys without copying them; each vector that needs its
// own notion of which keys are present holds its own activation state.
//
// # Construction
//
//	d := keys.Create(30, 10, 20, 10) // sorted, deduplicated: [10 20 30]
//	d := keys.Wrap(sorted, len(sorted), true) // trusted, no copy
//
// Wrap does not validate its input. Passing unsorted or duplicated keys is
// undefined behaviour; use IsStrictlySorted first or call Create.
//
// # Lookup
//
// Index returns the position of a key, or -(insertionPoint)-1 when the key
// is not in the domain. Lookup returns the same information as a Position.
//
//	idx := d.Index(25)          // -3: insertion point 2
//	p := d.Lookup(25)           // p.Found() == false, p.InsertionPoint() == 2
//
// # Ownership
//
// A domain is either owned (its holder may change activation in place) or
// unowned (shared read-only). Mutating an unowned domain panics with
// ErrUnownedDomain. Copy and InactiveCopy are the only ways to obtain a
// writable domain from a shared one. Clone of an unowned domain returns the
// receiver itself, since unowned domains are never mutated.
//
// Keys are never modified after construction, so every copy shares the key
// slice and only the activation state is duplicated.
package keys
