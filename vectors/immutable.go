package vectors

import (
	"math"

	"github.com/lenskit/lenskit-sub015/internal/hash"
	"github.com/lenskit/lenskit-sub015/keys"
)

// Immutable is a sparse vector that never changes after construction.
// It may be read from any number of goroutines without synchronization.
type Immutable struct {
	vector
}

var empty = &Immutable{vector: vector{domain: keys.Empty()}}

// Empty returns the shared empty vector.
func Empty() *Immutable {
	return empty
}

// Immutable returns v itself.
func (v *Immutable) Immutable() *Immutable {
	return v
}

// Equal reports whether a and b have the same present keys with equal
// values. Domains and inactive positions are irrelevant. NaN values compare
// equal to each other.
func Equal(a, b SparseVector) bool {
	if a.Size() != b.Size() {
		return false
	}
	n := 0
	for ea, eb := range Pairs(a, b) {
		if !sameValue(ea.value, eb.value) {
			return false
		}
		n++
	}
	return n == a.Size()
}

// Hash returns a hash of the present entries consistent with Equal.
func Hash(v SparseVector) uint64 {
	h := hash.NewEntryHasher()
	for e := range v.FastEntries() {
		h.Add(e.key, e.value)
	}
	return h.Sum64()
}

func sameValue(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}
