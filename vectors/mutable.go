package vectors

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/lenskit/lenskit-sub015/keys"
)

// Mutable is a sparse vector supporting in-place updates.
//
// Arithmetic never changes which keys are present. Set may activate an
// inactive key of the domain, which requires the vector's domain to be
// owned; writing to a key outside the domain panics.
//
// An owned domain held by a Mutable is never shared with another writer:
// every constructor either builds a fresh domain or copies the activation
// state it is given. A Mutable over an unowned domain reads activation that
// its owner may still change.
//
// A Mutable is not safe for concurrent use.
type Mutable struct {
	vector
	frozen bool
}

// Wrap creates a mutable vector over keys and values without copying.
// keys must be strictly ascending (unchecked) and values at least as long
// as keys. Every key is present.
func Wrap(ks []int64, values []float64) *Mutable {
	if len(values) < len(ks) {
		panic(fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(ks), len(values)))
	}
	return &Mutable{vector: newVector(keys.Wrap(ks, len(ks), true), values)}
}

// WrapDomain creates a mutable vector over the keys of domain without
// copying keys or values. An owned domain is cloned, so the vector gets its
// own activation state and siblings wrapped over the same domain never see
// each other's Set or Unset. An unowned domain is used as-is: the vector
// shares it read-only and cannot activate keys.
func WrapDomain(domain *keys.Domain, values []float64) *Mutable {
	if domain.IsOwned() {
		domain = domain.Clone()
	}
	return &Mutable{vector: newVector(domain, values)}
}

// New creates an empty mutable vector over the keys of domain, with its
// own activation state.
func New(domain *keys.Domain) *Mutable {
	return &Mutable{vector: vector{
		domain: domain.InactiveCopy(),
		values: make([]float64, domain.DomainSize()),
	}}
}

// FromMap creates a mutable vector holding the entries of m.
func FromMap(m map[int64]float64) *Mutable {
	d := keys.FromSeq(maps.Keys(m))
	values := make([]float64, d.DomainSize())
	for i, k := range d.Keys() {
		values[i] = m[k]
	}
	return &Mutable{vector: newVector(d, values)}
}

// FromEntries creates a mutable vector from entries in any order. Later
// entries win over earlier ones with the same key.
func FromEntries(entries []Entry) *Mutable {
	m := make(map[int64]float64, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return FromMap(m)
}

func (v *Mutable) checkFrozen(op string) {
	if v.frozen {
		panic(fmt.Errorf("%w: %s", ErrFrozen, op))
	}
}

// IsFrozen reports whether Freeze has been called.
func (v *Mutable) IsFrozen() bool {
	return v.frozen
}

// Copy returns an independent mutable copy.
func (v *Mutable) Copy() *Mutable {
	return v.MutableCopy()
}

// Immutable returns an immutable copy. The receiver stays usable.
func (v *Mutable) Immutable() *Immutable {
	return v.immutableCopy()
}

// Freeze returns an immutable vector sharing this vector's values and marks
// the receiver frozen: later writes through it panic with ErrFrozen.
//
// An owned domain belongs to this vector alone and is handed over as is.
// An unowned domain may still be changed by its owner, so its activation
// state is copied.
func (v *Mutable) Freeze() *Immutable {
	v.checkFrozen("Freeze")
	domain := v.domain
	if !domain.IsOwned() {
		domain = domain.Copy()
	}
	im := &Immutable{vector: vector{
		domain: domain.Unowned(),
		values: v.values,
	}}
	v.frozen = true
	return im
}

// Set sets the value for key and returns the previous value (NaN if the key
// was not present). An inactive key of the domain is activated.
func (v *Mutable) Set(key int64, value float64) float64 {
	v.checkFrozen("Set")
	idx := v.domain.Index(key)
	if idx < 0 {
		panic(fmt.Errorf("%w: %d", keys.ErrKeyNotInDomain, key))
	}
	old := math.NaN()
	if v.domain.IndexIsActive(idx) {
		old = v.values[idx]
	} else {
		v.domain.SetActive(idx, true)
	}
	v.values[idx] = value
	return old
}

// SetEntry sets the value at the position of a handle yielded by this
// vector's FastEntries, without a key lookup.
func (v *Mutable) SetEntry(e *VectorEntry, value float64) {
	v.checkFrozen("SetEntry")
	if e.vec != &v.vector {
		panic(fmt.Errorf("%w: entry belongs to another vector", keys.ErrDomainMismatch))
	}
	v.values[e.index] = value
	e.value = value
}

// AddTo adds delta to the value for key and returns the new value. Absent
// keys are left absent and NaN is returned.
func (v *Mutable) AddTo(key int64, delta float64) float64 {
	v.checkFrozen("AddTo")
	idx := v.domain.IndexIfActive(key)
	if idx < 0 {
		return math.NaN()
	}
	v.values[idx] += delta
	return v.values[idx]
}

// Unset removes key. Absent keys are ignored.
func (v *Mutable) Unset(key int64) {
	v.checkFrozen("Unset")
	if idx := v.domain.IndexIfActive(key); idx >= 0 {
		v.domain.SetActive(idx, false)
	}
}

// Clear removes every key.
func (v *Mutable) Clear() {
	v.checkFrozen("Clear")
	v.domain.SetAllActive(false)
}

// Fill sets every present entry to value.
func (v *Mutable) Fill(value float64) {
	v.checkFrozen("Fill")
	for pos := range v.domain.ActivePositions() {
		v.values[pos] = value
	}
}

// Add adds other's values to the keys present in both vectors.
func (v *Mutable) Add(other SparseVector) {
	v.checkFrozen("Add")
	o := other.storage()
	if v.aligned(o) {
		floats.Add(v.values, o.values)
		return
	}
	intersect(&v.vector, o, func(i, j int) bool {
		v.values[i] += o.values[j]
		return true
	})
}

// Subtract subtracts other's values from the keys present in both vectors.
func (v *Mutable) Subtract(other SparseVector) {
	v.checkFrozen("Subtract")
	o := other.storage()
	if v.aligned(o) {
		floats.Sub(v.values, o.values)
		return
	}
	intersect(&v.vector, o, func(i, j int) bool {
		v.values[i] -= o.values[j]
		return true
	})
}

// AddScaled adds scale times other's values to the keys present in both
// vectors.
func (v *Mutable) AddScaled(other SparseVector, scale float64) {
	v.checkFrozen("AddScaled")
	o := other.storage()
	if v.aligned(o) {
		floats.AddScaled(v.values, scale, o.values)
		return
	}
	intersect(&v.vector, o, func(i, j int) bool {
		v.values[i] += scale * o.values[j]
		return true
	})
}

// MultiplyVector multiplies the keys present in both vectors by other's
// values.
func (v *Mutable) MultiplyVector(other SparseVector) {
	v.checkFrozen("MultiplyVector")
	o := other.storage()
	if v.aligned(o) {
		floats.Mul(v.values, o.values)
		return
	}
	intersect(&v.vector, o, func(i, j int) bool {
		v.values[i] *= o.values[j]
		return true
	})
}

// Multiply scales every present value by s.
func (v *Mutable) Multiply(s float64) {
	v.checkFrozen("Multiply")
	if v.dense() {
		floats.Scale(s, v.values)
		return
	}
	for pos := range v.domain.ActivePositions() {
		v.values[pos] *= s
	}
}

// AddScalar adds s to every present value.
func (v *Mutable) AddScalar(s float64) {
	v.checkFrozen("AddScalar")
	if v.dense() {
		floats.AddConst(s, v.values)
		return
	}
	for pos := range v.domain.ActivePositions() {
		v.values[pos] += s
	}
}

// CombineWith returns a new vector over the union of both vectors' present
// keys. Where both have a value, other's wins.
func (v *vector) CombineWith(other SparseVector) *Mutable {
	return combine(v, other.storage())
}

// ShrinkDomain returns a copy whose domain holds only the present keys.
func (v *vector) ShrinkDomain() *Mutable {
	ks := v.Keys()
	return Wrap(ks, v.Values())
}

// WithDomain returns a copy re-homed onto the keys of domain, with its own
// activation state. Present keys that domain lacks are dropped.
func (v *vector) WithDomain(domain *keys.Domain) *Mutable {
	out := New(domain)
	for e := range v.FastEntries() {
		if idx := out.domain.Index(e.key); idx >= 0 {
			out.domain.SetActive(idx, true)
			out.values[idx] = e.value
		}
	}
	return out
}

func combine(a, b *vector) *Mutable {
	ak := a.Keys()
	bk := b.Keys()
	union := make([]int64, 0, len(ak)+len(bk))
	i, j := 0, 0
	for i < len(ak) || j < len(bk) {
		switch {
		case j == len(bk) || (i < len(ak) && ak[i] < bk[j]):
			union = append(union, ak[i])
			i++
		case i == len(ak) || bk[j] < ak[i]:
			union = append(union, bk[j])
			j++
		default:
			union = append(union, ak[i])
			i++
			j++
		}
	}
	union = slices.Clip(union)

	values := make([]float64, len(union))
	out := Wrap(union, values)
	for e := range a.FastEntries() {
		values[out.domain.Index(e.key)] = e.value
	}
	for e := range b.FastEntries() {
		values[out.domain.Index(e.key)] = e.value
	}
	return out
}
