package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// canonicalNaN is the bit pattern every NaN is hashed as.
const canonicalNaN = 0x7FF8000000000001

// EntryHasher accumulates a 64-bit hash over (key, value) pairs.
// The zero value is not usable; use NewEntryHasher.
type EntryHasher struct {
	d   *xxhash.Digest
	buf [16]byte
}

// NewEntryHasher returns an empty hasher.
func NewEntryHasher() *EntryHasher {
	return &EntryHasher{d: xxhash.New()}
}

// Add mixes one entry into the hash.
func (h *EntryHasher) Add(key int64, value float64) {
	binary.LittleEndian.PutUint64(h.buf[:8], uint64(key))
	binary.LittleEndian.PutUint64(h.buf[8:], ValueBits(value))
	_, _ = h.d.Write(h.buf[:])
}

// Sum64 returns the hash of the entries added so far.
func (h *EntryHasher) Sum64() uint64 {
	return h.d.Sum64()
}

// ValueBits returns the canonical bit pattern of v.
func ValueBits(v float64) uint64 {
	switch {
	case math.IsNaN(v):
		return canonicalNaN
	case v == 0:
		return 0
	default:
		return math.Float64bits(v)
	}
}
