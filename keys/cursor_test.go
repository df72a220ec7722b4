package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveCursor(t *testing.T) {
	d := Create(10, 20, 30, 40, 50)
	d.SetActive(1, false)

	c := d.ActiveCursor()
	pos, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = c.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, pos, "inactive positions are skipped")

	pos, ok = c.Seek(35)
	require.True(t, ok)
	assert.Equal(t, 3, pos)

	pos, ok = c.Seek(40)
	require.True(t, ok)
	assert.Equal(t, 3, pos, "Seek does not consume")

	_, ok = c.Seek(51)
	assert.False(t, ok)
	_, ok = c.Next()
	assert.False(t, ok)
}

func TestActiveCursorEmptyDomain(t *testing.T) {
	c := Empty().ActiveCursor()
	_, ok := c.Seek(1)
	assert.False(t, ok)
}
