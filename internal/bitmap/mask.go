package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/lenskit/lenskit-sub015/internal/conv"
)

// Mask is a fixed-width set of positions in [0, width).
// It wraps the official roaring implementation; contiguous runs (the common
// "everything active" case) collapse to run containers.
//
// A Mask is not safe for concurrent mutation.
type Mask struct {
	rb    *roaring.Bitmap
	width int
}

// NewMask creates a mask over width positions, all set or all clear.
// It panics if width cannot be addressed by a 32-bit bitmap.
func NewMask(width int, all bool) *Mask {
	if err := conv.CheckDomainSize(width); err != nil {
		panic(err)
	}
	m := &Mask{rb: roaring.New(), width: width}
	if all {
		m.rb.AddRange(0, uint64(width))
	}
	return m
}

// Set marks position i.
func (m *Mask) Set(i int) {
	m.rb.Add(conv.MustBitIndex(i))
}

// Unset clears position i.
func (m *Mask) Unset(i int) {
	m.rb.Remove(conv.MustBitIndex(i))
}

// Put sets or clears position i.
func (m *Mask) Put(i int, on bool) {
	if on {
		m.Set(i)
	} else {
		m.Unset(i)
	}
}

// Contains reports whether position i is set. Out-of-range positions are
// never set.
func (m *Mask) Contains(i int) bool {
	if i < 0 || i >= m.width {
		return false
	}
	return m.rb.Contains(uint32(i))
}

// Cardinality returns the number of set positions.
func (m *Mask) Cardinality() int {
	return int(m.rb.GetCardinality())
}

// IsFull returns true if every position is set.
func (m *Mask) IsFull() bool {
	return m.Cardinality() == m.width
}

// SetAll sets or clears every position.
func (m *Mask) SetAll(on bool) {
	m.rb.Clear()
	if on && m.width > 0 {
		m.rb.AddRange(0, uint64(m.width))
	}
}

// Invert complements every position in [0, width).
func (m *Mask) Invert() {
	if m.width > 0 {
		m.rb.Flip(0, uint64(m.width))
	}
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	return &Mask{rb: m.rb.Clone(), width: m.width}
}

// Select returns the position of the rank-th set bit (0-based).
func (m *Mask) Select(rank int) (int, bool) {
	if rank < 0 || rank >= m.Cardinality() {
		return -1, false
	}
	bit, err := m.rb.Select(uint32(rank))
	if err != nil {
		return -1, false
	}
	return conv.Position(bit), true
}

// Positions returns an iterator over set positions in ascending order.
func (m *Mask) Positions() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := m.rb.Iterator()
		for it.HasNext() {
			if !yield(conv.Position(it.Next())) {
				return
			}
		}
	}
}

// Cursor returns a cursor over set positions in ascending order.
func (m *Mask) Cursor() *Cursor {
	return &Cursor{it: m.rb.Iterator()}
}

// And returns a new mask holding the positions set in both masks.
// Both masks must have the same width.
func (m *Mask) And(other *Mask) *Mask {
	return &Mask{rb: roaring.And(m.rb, other.rb), width: m.width}
}

// AndCardinality returns the number of positions set in both masks.
func (m *Mask) AndCardinality(other *Mask) int {
	return int(m.rb.AndCardinality(other.rb))
}

// Equal reports whether both masks have the same width and set positions.
func (m *Mask) Equal(other *Mask) bool {
	return m.width == other.width && m.rb.Equals(other.rb)
}

// Cursor walks the set positions of a mask in ascending order and can skip
// ahead. A Cursor is invalidated by changes to its mask.
type Cursor struct {
	it roaring.IntPeekable
}

// Peek returns the next set position without consuming it.
func (c *Cursor) Peek() (int, bool) {
	if !c.it.HasNext() {
		return -1, false
	}
	return conv.Position(c.it.PeekNext()), true
}

// Next consumes and returns the next set position.
func (c *Cursor) Next() (int, bool) {
	if !c.it.HasNext() {
		return -1, false
	}
	return conv.Position(c.it.Next()), true
}

// AdvanceTo skips every set position below pos.
func (c *Cursor) AdvanceTo(pos int) {
	if pos <= 0 {
		return
	}
	c.it.AdvanceIfNeeded(conv.MustBitIndex(pos))
}
