package vectors

import (
	"iter"
)

// Entry is an independent (key, value) pair.
type Entry struct {
	Key   int64
	Value float64
}

// VectorEntry is the reused handle yielded by fast iteration.
//
// Its contents are only valid until the iterator advances: the next step
// overwrites the same VectorEntry. Use Entry to keep a copy.
type VectorEntry struct {
	vec   *vector
	index int
	key   int64
	value float64
}

// Key returns the entry's key.
func (e *VectorEntry) Key() int64 {
	return e.key
}

// Value returns the entry's value.
func (e *VectorEntry) Value() float64 {
	return e.value
}

// Index returns the entry's position in the vector's key domain.
func (e *VectorEntry) Index() int {
	return e.index
}

// Entry returns an independent copy of the entry.
func (e *VectorEntry) Entry() Entry {
	return Entry{Key: e.key, Value: e.value}
}

func (e *VectorEntry) load(v *vector, pos int) {
	e.vec = v
	e.index = pos
	e.key = v.domain.Keys()[pos]
	e.value = v.values[pos]
}

// Entries returns an iterator over present entries in key order. Each
// yielded Entry is an independent value.
func (v *vector) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		ks := v.domain.Keys()
		for pos := range v.domain.ActivePositions() {
			if !yield(Entry{Key: ks[pos], Value: v.values[pos]}) {
				return
			}
		}
	}
}

// FastEntries returns an iterator over present entries in key order that
// yields the same *VectorEntry on every step, overwritten in place.
//
// Do not retain the handle past the next step. Collecting the handles of a
// pass yields N pointers to one entry holding the last values.
func (v *vector) FastEntries() iter.Seq[*VectorEntry] {
	return func(yield func(*VectorEntry) bool) {
		var e VectorEntry
		for pos := range v.domain.ActivePositions() {
			e.load(v, pos)
			if !yield(&e) {
				return
			}
		}
	}
}

// Pairs returns an iterator over the keys present in both a and b, in key
// order, yielding one reused handle per vector.
//
// As with FastEntries, the handles are overwritten on every step.
func Pairs(a, b SparseVector) iter.Seq2[*VectorEntry, *VectorEntry] {
	return func(yield func(*VectorEntry, *VectorEntry) bool) {
		va, vb := a.storage(), b.storage()
		var ea, eb VectorEntry
		intersect(va, vb, func(i, j int) bool {
			ea.load(va, i)
			eb.load(vb, j)
			return yield(&ea, &eb)
		})
	}
}

// intersect calls fn with the positions, in a and b respectively, of every
// key present in both, in key order, until fn returns false.
func intersect(a, b *vector, fn func(i, j int) bool) {
	if a.domain.SameKeys(b.domain) {
		for pos := range a.domain.CommonActivePositions(b.domain) {
			if !fn(pos, pos) {
				return
			}
		}
		return
	}

	if a.Size() == 0 || b.Size() == 0 {
		return
	}

	ak, bk := a.domain.Keys(), b.domain.Keys()
	ca, cb := a.domain.ActiveCursor(), b.domain.ActiveCursor()
	for {
		i, ok := ca.Peek()
		if !ok {
			return
		}
		j, ok := cb.Seek(ak[i])
		if !ok {
			return
		}
		if bk[j] == ak[i] {
			if !fn(i, j) {
				return
			}
			ca.Next()
			cb.Next()
			continue
		}
		ca.Seek(bk[j])
	}
}
