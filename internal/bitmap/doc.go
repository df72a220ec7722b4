// Package bitmap provides the activation mask behind key domains.
//
// Mask is a fixed-width position set on top of a roaring bitmap. Dense
// masks (every key active, the common case for freshly wrapped data)
// collapse to run containers; sparse ones use array containers, so a
// domain of a million keys with a handful active stays small.
//
// Positional access maps to roaring select:
//
//	m := bitmap.NewMask(8, false)
//	m.Set(2)
//	m.Set(5)
//	m.Select(1) // 5, true
//
// Intersections of masks over the same key array use roaring AND, which is
// how vectors sharing a domain find their common keys without a merge walk.
// Otherwise a Cursor steps through active positions and skips ahead with
// roaring's AdvanceIfNeeded.
package bitmap
