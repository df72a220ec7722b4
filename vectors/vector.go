package vectors

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/lenskit/lenskit-sub015/keys"
)

// SparseVector is the read-only view shared by Mutable and Immutable.
//
// The interface is sealed: only this package implements it, which lets the
// arithmetic take position-aligned fast paths between vectors that share a
// key domain.
type SparseVector interface {
	// Get returns the value for key, or NaN if key is not present.
	Get(key int64) float64
	// GetOr returns the value for key, or def if key is not present.
	GetOr(key int64, def float64) float64
	// Lookup returns the value for key and whether it is present.
	Lookup(key int64) (float64, bool)
	// ContainsKey reports whether key is present.
	ContainsKey(key int64) bool

	// Size returns the number of present keys.
	Size() int
	// IsEmpty reports whether no key is present.
	IsEmpty() bool

	// Domain returns a read-only handle to the vector's key domain.
	Domain() *keys.Domain
	// KeySet returns a live view of the present keys.
	KeySet() *keys.ActiveSet
	// Keys returns the present keys in ascending order.
	Keys() []int64
	// Values returns the present values in key order.
	Values() []float64
	// UnsetKeys returns the domain keys that are not present.
	UnsetKeys() []int64

	// Entries iterates present entries as independent values.
	Entries() iter.Seq[Entry]
	// FastEntries iterates present entries through one reused handle.
	FastEntries() iter.Seq[*VectorEntry]

	Sum() float64
	SumAbs() float64
	Mean() float64
	Norm() float64
	Dot(other SparseVector) float64
	CountCommonKeys(other SparseVector) int
	KeysByValue(descending bool) []int64

	// MutableCopy returns an independent mutable copy.
	MutableCopy() *Mutable
	// Immutable returns an immutable vector with the same entries.
	Immutable() *Immutable

	storage() *vector
}

// vector holds the state common to both variants.
type vector struct {
	domain *keys.Domain
	// values is parallel to domain.Keys().
	values []float64
}

func newVector(domain *keys.Domain, values []float64) vector {
	n := domain.DomainSize()
	if len(values) < n {
		panic(fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, n, len(values)))
	}
	return vector{domain: domain, values: values[:n:n]}
}

func (v *vector) storage() *vector {
	return v
}

// Get returns the value for key, or NaN if key is not present.
func (v *vector) Get(key int64) float64 {
	idx := v.domain.IndexIfActive(key)
	if idx < 0 {
		return math.NaN()
	}
	return v.values[idx]
}

// GetOr returns the value for key, or def if key is not present.
func (v *vector) GetOr(key int64, def float64) float64 {
	idx := v.domain.IndexIfActive(key)
	if idx < 0 {
		return def
	}
	return v.values[idx]
}

// Lookup returns the value for key and whether it is present.
func (v *vector) Lookup(key int64) (float64, bool) {
	idx := v.domain.IndexIfActive(key)
	if idx < 0 {
		return math.NaN(), false
	}
	return v.values[idx], true
}

// ContainsKey reports whether key is present.
func (v *vector) ContainsKey(key int64) bool {
	return v.domain.KeyIsActive(key)
}

// Size returns the number of present keys.
func (v *vector) Size() int {
	return v.domain.Size()
}

// IsEmpty reports whether no key is present.
func (v *vector) IsEmpty() bool {
	return v.domain.Size() == 0
}

// Domain returns an unowned handle to the key domain. Activation changes
// made later through the vector are visible through it.
func (v *vector) Domain() *keys.Domain {
	return v.domain.Unowned()
}

// KeySet returns a live view of the present keys.
func (v *vector) KeySet() *keys.ActiveSet {
	return v.domain.ActiveSet()
}

// Keys returns the present keys in ascending order.
func (v *vector) Keys() []int64 {
	return v.domain.ActiveSet().Slice()
}

// Values returns the present values in key order.
func (v *vector) Values() []float64 {
	if v.domain.IsCompletelySet() {
		return slices.Clone(v.values)
	}
	out := make([]float64, 0, v.Size())
	for pos := range v.domain.ActivePositions() {
		out = append(out, v.values[pos])
	}
	return out
}

// UnsetKeys returns the domain keys that are not present.
func (v *vector) UnsetKeys() []int64 {
	ks := v.domain.Keys()
	out := make([]int64, 0, len(ks)-v.Size())
	for i, k := range ks {
		if !v.domain.IndexIsActive(i) {
			out = append(out, k)
		}
	}
	return out
}

// dense reports whether every domain position is present, so values can be
// processed as a plain slice.
func (v *vector) dense() bool {
	return v.domain.IsCompletelySet()
}

// aligned reports whether v and o share keys and are both dense.
func (v *vector) aligned(o *vector) bool {
	return v.domain.SameKeys(o.domain) && v.dense() && o.dense()
}

// Sum returns the sum of present values, 0 when empty.
func (v *vector) Sum() float64 {
	if v.dense() {
		return floats.Sum(v.values)
	}
	var s float64
	for pos := range v.domain.ActivePositions() {
		s += v.values[pos]
	}
	return s
}

// SumAbs returns the sum of absolute present values.
func (v *vector) SumAbs() float64 {
	var s float64
	for pos := range v.domain.ActivePositions() {
		s += math.Abs(v.values[pos])
	}
	return s
}

// Mean returns the mean of present values, 0 when empty.
func (v *vector) Mean() float64 {
	n := v.Size()
	if n == 0 {
		return 0
	}
	if v.dense() {
		return stat.Mean(v.values, nil)
	}
	return v.Sum() / float64(n)
}

// Norm returns the Euclidean norm of present values, 0 when empty.
func (v *vector) Norm() float64 {
	if v.dense() {
		if len(v.values) == 0 {
			return 0
		}
		return floats.Norm(v.values, 2)
	}
	var ssq float64
	for pos := range v.domain.ActivePositions() {
		ssq += v.values[pos] * v.values[pos]
	}
	return math.Sqrt(ssq)
}

// Dot returns the sum of products over keys present in both vectors.
func (v *vector) Dot(other SparseVector) float64 {
	o := other.storage()
	if v.aligned(o) {
		return floats.Dot(v.values, o.values)
	}
	var dot float64
	intersect(v, o, func(i, j int) bool {
		dot += v.values[i] * o.values[j]
		return true
	})
	return dot
}

// CountCommonKeys returns the number of keys present in both vectors.
func (v *vector) CountCommonKeys(other SparseVector) int {
	o := other.storage()
	if v.domain.SameKeys(o.domain) {
		return v.domain.CommonActiveCount(o.domain)
	}
	n := 0
	intersect(v, o, func(_, _ int) bool {
		n++
		return true
	})
	return n
}

// KeysByValue returns the present keys ordered by value, ascending unless
// descending is set. Ties keep key order.
func (v *vector) KeysByValue(descending bool) []int64 {
	entries := slices.Collect(v.Entries())
	if descending {
		slices.SortStableFunc(entries, func(a, b Entry) int {
			return cmp.Compare(b.Value, a.Value)
		})
	} else {
		slices.SortStableFunc(entries, func(a, b Entry) int {
			return cmp.Compare(a.Value, b.Value)
		})
	}
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

// MutableCopy returns an independent mutable copy with its own domain
// state and values.
func (v *vector) MutableCopy() *Mutable {
	return &Mutable{vector: vector{
		domain: v.domain.Copy(),
		values: slices.Clone(v.values),
	}}
}

// immutableCopy returns an independent immutable copy.
func (v *vector) immutableCopy() *Immutable {
	return &Immutable{vector: vector{
		domain: v.domain.Copy().Unowned(),
		values: slices.Clone(v.values),
	}}
}

func (v *vector) String() string {
	var b []byte
	b = append(b, '{')
	first := true
	for e := range v.FastEntries() {
		if !first {
			b = append(b, ", "...)
		}
		first = false
		b = fmt.Appendf(b, "%d: %g", e.key, e.value)
	}
	b = append(b, '}')
	return string(b)
}
