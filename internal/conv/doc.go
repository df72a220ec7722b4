// Package conv provides checked conversions between Go int positions and
// the uint32 bit indices used by the active-key masks.
//
// Key domains address their entries with int positions, while the roaring
// bitmaps backing the masks are 32-bit. A domain therefore holds at most
// math.MaxUint32+1 keys; conversions outside that range are reported rather
// than silently truncated.
package conv
