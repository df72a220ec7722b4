package keys

import (
	"fmt"
	"iter"
	"slices"

	"github.com/lenskit/lenskit-sub015/internal/bitmap"
)

// Domain is an ordered, duplicate-free sequence of int64 keys with an
// active marker per position.
//
// The zero value is not usable; construct domains with Wrap or Create.
// A Domain is not safe for concurrent mutation. Unowned domains may be read
// from many goroutines as long as their owner no longer mutates them.
type Domain struct {
	// keys is strictly ascending and never modified or resized.
	keys []int64

	// active holds one bit per position in keys.
	active *bitmap.Mask

	// owned is false for shared read-only handles.
	owned bool
}

var empty = Wrap(nil, 0, false).Unowned()

// Empty returns the shared empty domain.
func Empty() *Domain {
	return empty
}

// Wrap creates an owned domain over the first size entries of keys without
// copying them. The caller guarantees that keys[:size] is strictly
// ascending; this is not checked. Every position starts active if allActive
// is true and inactive otherwise.
//
// The domain takes ownership of keys[:size]; the caller must not modify it.
func Wrap(keys []int64, size int, allActive bool) *Domain {
	if size < 0 || size > len(keys) {
		panic(fmt.Errorf("%w: size %d for %d keys", ErrIndexOutOfRange, size, len(keys)))
	}
	return &Domain{
		keys:   keys[:size:size],
		active: bitmap.NewMask(size, allActive),
		owned:  true,
	}
}

// Create creates an owned, fully active domain from keys in any order.
// The input is copied, sorted and deduplicated.
func Create(keys ...int64) *Domain {
	ks := slices.Clone(keys)
	slices.Sort(ks)
	ks = slices.Compact(ks)
	return Wrap(ks, len(ks), true)
}

// FromSeq creates a domain like Create from a sequence of keys.
func FromSeq(seq iter.Seq[int64]) *Domain {
	ks := slices.Sorted(seq)
	ks = slices.Compact(ks)
	return Wrap(ks, len(ks), true)
}

// IsStrictlySorted reports whether keys is ascending without duplicates,
// i.e. whether it is safe to pass to Wrap.
func IsStrictlySorted(keys []int64) bool {
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			return false
		}
	}
	return true
}

// Index returns the position of key, or -(insertionPoint)-1 if the key is
// not in the domain.
func (d *Domain) Index(key int64) int {
	idx, found := slices.BinarySearch(d.keys, key)
	if found {
		return idx
	}
	return -idx - 1
}

// Lookup returns the position of key as a Position.
func (d *Domain) Lookup(key int64) Position {
	idx, found := slices.BinarySearch(d.keys, key)
	if found {
		return FoundAt(idx)
	}
	return MissingAt(idx)
}

// IndexIfActive is like Index, but also returns a negative value (encoding
// the key's own position as insertion point) when the key is in the domain
// but inactive.
func (d *Domain) IndexIfActive(key int64) int {
	idx := d.Index(key)
	if idx >= 0 && !d.active.Contains(idx) {
		return -idx - 1
	}
	return idx
}

// IndexIsActive reports whether position idx is active. Positions outside
// the domain are never active.
func (d *Domain) IndexIsActive(idx int) bool {
	return d.active.Contains(idx)
}

// KeyIsActive reports whether key is in the domain and active.
func (d *Domain) KeyIsActive(key int64) bool {
	return d.IndexIfActive(key) >= 0
}

// Keys returns every key in the domain, active or not.
// The returned slice is shared and must not be modified.
func (d *Domain) Keys() []int64 {
	return d.keys
}

// Key returns the key at position idx.
func (d *Domain) Key(idx int) int64 {
	if idx < 0 || idx >= len(d.keys) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, len(d.keys)))
	}
	return d.keys[idx]
}

// ActiveSet returns a live read-only view of the active keys.
func (d *Domain) ActiveSet() *ActiveSet {
	return &ActiveSet{domain: d}
}

// ActivePositions returns an iterator over active positions in ascending order.
func (d *Domain) ActivePositions() iter.Seq[int] {
	return d.active.Positions()
}

// Size returns the number of active keys.
func (d *Domain) Size() int {
	return d.active.Cardinality()
}

// DomainSize returns the number of keys, active or not.
func (d *Domain) DomainSize() int {
	return len(d.keys)
}

// IsCompletelySet reports whether every key is active.
func (d *Domain) IsCompletelySet() bool {
	return d.active.IsFull()
}

// IsOwned reports whether the domain may be mutated in place.
func (d *Domain) IsOwned() bool {
	return d.owned
}

// SetActive activates or deactivates position idx.
func (d *Domain) SetActive(idx int, active bool) {
	d.checkOwned("SetActive")
	if idx < 0 || idx >= len(d.keys) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, len(d.keys)))
	}
	d.active.Put(idx, active)
}

// SetAllActive activates or deactivates every position.
func (d *Domain) SetAllActive(active bool) {
	d.checkOwned("SetAllActive")
	d.active.SetAll(active)
}

// Invert complements the active state of every position.
func (d *Domain) Invert() {
	d.checkOwned("Invert")
	d.active.Invert()
}

// Clone returns an owned domain with the same keys and an independent copy
// of the active state. On an unowned domain Clone returns d itself.
func (d *Domain) Clone() *Domain {
	if !d.owned {
		return d
	}
	return &Domain{keys: d.keys, active: d.active.Clone(), owned: true}
}

// Copy returns an owned domain with the same keys and an independent copy
// of the active state. Unlike Clone it always copies, also for unowned
// domains.
func (d *Domain) Copy() *Domain {
	return &Domain{keys: d.keys, active: d.active.Clone(), owned: true}
}

// InactiveCopy returns an owned domain with the same keys and every
// position inactive.
func (d *Domain) InactiveCopy() *Domain {
	return &Domain{keys: d.keys, active: bitmap.NewMask(len(d.keys), false), owned: true}
}

// Unowned returns a handle to this domain that refuses mutation. It shares
// keys and active state with d, so later changes made through d are visible
// through it.
func (d *Domain) Unowned() *Domain {
	if !d.owned {
		return d
	}
	return &Domain{keys: d.keys, active: d.active, owned: false}
}

// SameKeys reports whether both domains are backed by the same key slice,
// so that positions in one are positions in the other.
func (d *Domain) SameKeys(other *Domain) bool {
	if len(d.keys) != len(other.keys) {
		return false
	}
	return len(d.keys) == 0 || &d.keys[0] == &other.keys[0]
}

// CommonActivePositions returns the positions active in both domains.
// It panics with ErrDomainMismatch unless d.SameKeys(other).
func (d *Domain) CommonActivePositions(other *Domain) iter.Seq[int] {
	d.checkSameKeys(other)
	return d.active.And(other.active).Positions()
}

// CommonActiveCount returns the number of positions active in both
// domains. It panics with ErrDomainMismatch unless d.SameKeys(other).
func (d *Domain) CommonActiveCount(other *Domain) int {
	d.checkSameKeys(other)
	return d.active.AndCardinality(other.active)
}

// Equal reports whether both domains have the same keys and active set.
func (d *Domain) Equal(other *Domain) bool {
	if d == other {
		return true
	}
	return slices.Equal(d.keys, other.keys) && d.active.Equal(other.active)
}

func (d *Domain) String() string {
	return fmt.Sprintf("Domain(%d/%d active, owned=%t)", d.Size(), len(d.keys), d.owned)
}

func (d *Domain) checkOwned(op string) {
	if !d.owned {
		panic(fmt.Errorf("%w: %s", ErrUnownedDomain, op))
	}
}

func (d *Domain) checkSameKeys(other *Domain) {
	if !d.SameKeys(other) {
		panic(fmt.Errorf("%w: %d and %d keys", ErrDomainMismatch, len(d.keys), len(other.keys)))
	}
}
