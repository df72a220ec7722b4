//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitIndex(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := BitIndex(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := BitIndex(123)
		assert.NoError(t, err)
		assert.Equal(t, uint32(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := BitIndex(-1)
		assert.ErrorIs(t, err, ErrPositionOverflow)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := BitIndex(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := BitIndex(math.MaxUint32 + 1)
		assert.ErrorIs(t, err, ErrPositionOverflow)
	})
}

func TestMustBitIndex(t *testing.T) {
	assert.Equal(t, uint32(7), MustBitIndex(7))
	assert.Panics(t, func() { MustBitIndex(-3) })
}

func TestPositionRoundTrip(t *testing.T) {
	for _, pos := range []int{0, 1, 65535, 65536, math.MaxUint32} {
		b, err := BitIndex(pos)
		require.NoError(t, err)
		assert.Equal(t, pos, Position(b))
	}
}

func TestCheckDomainSize(t *testing.T) {
	assert.NoError(t, CheckDomainSize(0))
	assert.NoError(t, CheckDomainSize(MaxPositions))
	assert.ErrorIs(t, CheckDomainSize(-1), ErrPositionOverflow)
	assert.ErrorIs(t, CheckDomainSize(MaxPositions+1), ErrPositionOverflow)
}
