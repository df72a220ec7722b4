package keys

import (
	"fmt"
	"iter"
	"slices"
)

// ActiveSet is a read-only, ordered view of the active keys of a domain.
//
// It is not a snapshot: activation changes made to the domain after the
// view was obtained are reflected by it.
type ActiveSet struct {
	domain *Domain
}

// Len returns the number of active keys.
func (s *ActiveSet) Len() int {
	return s.domain.Size()
}

// At returns the i-th smallest active key.
func (s *ActiveSet) At(i int) int64 {
	pos, ok := s.domain.active.Select(i)
	if !ok {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, s.Len()))
	}
	return s.domain.keys[pos]
}

// Contains reports whether key is active.
func (s *ActiveSet) Contains(key int64) bool {
	return s.domain.KeyIsActive(key)
}

// All returns an iterator over the active keys in ascending order.
func (s *ActiveSet) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for pos := range s.domain.active.Positions() {
			if !yield(s.domain.keys[pos]) {
				return
			}
		}
	}
}

// Slice returns a freshly allocated slice of the active keys.
func (s *ActiveSet) Slice() []int64 {
	out := make([]int64, 0, s.Len())
	return slices.AppendSeq(out, s.All())
}
