package keys

import (
	"slices"

	"github.com/lenskit/lenskit-sub015/internal/bitmap"
)

// ActiveCursor walks the active positions of a domain in ascending order
// and can skip ahead by key. It is invalidated by activation changes.
type ActiveCursor struct {
	keys []int64
	c    *bitmap.Cursor
}

// ActiveCursor returns a cursor positioned before the first active key.
func (d *Domain) ActiveCursor() *ActiveCursor {
	return &ActiveCursor{keys: d.keys, c: d.active.Cursor()}
}

// Peek returns the next active position without consuming it.
func (c *ActiveCursor) Peek() (int, bool) {
	return c.c.Peek()
}

// Next consumes and returns the next active position.
func (c *ActiveCursor) Next() (int, bool) {
	return c.c.Next()
}

// Seek skips every active position whose key is below key and returns the
// next active position without consuming it.
func (c *ActiveCursor) Seek(key int64) (int, bool) {
	pos, _ := slices.BinarySearch(c.keys, key)
	if pos >= len(c.keys) {
		c.c.AdvanceTo(len(c.keys))
		return -1, false
	}
	c.c.AdvanceTo(pos)
	return c.c.Peek()
}
