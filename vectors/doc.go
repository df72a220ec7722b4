// Package vectors provides sparse vectors keyed by int64 identifiers.
//
// A sparse vector pairs a keys.Domain with a slice of float64 values
// parallel to the domain's keys. The active keys of the domain are the
// vector's entries; values at inactive positions are meaningless.
//
// # Variants
//
//   - Mutable supports scalar writes and in-place arithmetic.
//   - Immutable never changes and is safe to share between goroutines.
//
// Mutable.Freeze converts a mutable vector into an immutable one without
// copying; the mutable vector refuses further writes.
//
// # Absent values
//
// Get returns NaN for keys that are not present. NaN is a value, not an
// error: callers test it with math.IsNaN, or use Lookup for comma-ok access.
//
// # Arithmetic
//
// Add, Subtract and friends only combine keys present in both vectors.
// Keys present only in the argument are ignored and the receiver never
// gains entries; keys present only in the receiver are left unchanged.
//
//	a := vectors.Wrap([]int64{3, 5, 8}, []float64{2, 2.3, 1.7})
//	b := vectors.Wrap([]int64{5}, []float64{math.Pi})
//	a.Subtract(b) // {3: 2, 5: 2.3-π, 8: 1.7}
//
// # Iteration
//
// Entries yields independent Entry values. FastEntries yields a single
// *VectorEntry that is overwritten on every step; callers must copy what
// they need before advancing. Both iterate in key order.
package vectors
