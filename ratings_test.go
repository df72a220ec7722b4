package lenskit

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRatings() []Rating {
	return []Rating{
		{User: 1, Item: 10, Value: 4},
		{User: 1, Item: 20, Value: 3},
		{User: 2, Item: 10, Value: 5},
		{User: 2, Item: 30, Value: 2},
		{User: 3, Item: 20, Value: 1},
	}
}

func TestNewRatingIndex(t *testing.T) {
	idx, err := NewRatingIndex(sampleRatings())
	require.NoError(t, err)

	assert.Equal(t, 5, idx.Len())
	assert.Equal(t, []int64{1, 2, 3}, idx.Users().Keys())
	assert.Equal(t, []int64{10, 20, 30}, idx.Items().Keys())
	assert.False(t, idx.Users().IsOwned())
	assert.InDelta(t, 3.0, idx.GlobalMean(), 1e-12)

	u1 := idx.UserVector(1)
	assert.Equal(t, []int64{10, 20}, u1.Keys())
	assert.Equal(t, []float64{4, 3}, u1.Values())

	i10 := idx.ItemVector(10)
	assert.Equal(t, []int64{1, 2}, i10.Keys())
	assert.Equal(t, []float64{4, 5}, i10.Values())
}

func TestNewRatingIndexLogs(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewRatingIndex(sampleRatings(), WithLogger(newBufferLogger(&buf)))
	require.NoError(t, err)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "rating index built", lines[0]["msg"])
	assert.Equal(t, float64(5), lines[0]["ratings"])
	assert.Equal(t, float64(3), lines[0]["users"])
	assert.Equal(t, float64(3), lines[0]["items"])

	_, err = NewRatingIndex(sampleRatings(), WithLogger(nil))
	require.NoError(t, err)
}

func TestRatingIndexUnknownIDs(t *testing.T) {
	idx, err := NewRatingIndex(sampleRatings())
	require.NoError(t, err)

	assert.True(t, idx.UserVector(99).IsEmpty())
	assert.True(t, idx.ItemVector(99).IsEmpty())
	assert.False(t, idx.HasUser(99))
	assert.True(t, idx.HasUser(3))
}

func TestRatingIndexDuplicateLastWins(t *testing.T) {
	idx, err := NewRatingIndex([]Rating{
		{User: 1, Item: 1, Value: 1},
		{User: 1, Item: 1, Value: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, 5.0, idx.UserVector(1).Get(1))
	assert.Equal(t, 5.0, idx.ItemVector(1).Get(1))
}

func TestRatingIndexErrors(t *testing.T) {
	_, err := NewRatingIndex(nil)
	assert.ErrorIs(t, err, ErrNoRatings)

	_, err = NewRatingIndex([]Rating{{User: 1, Item: 2, Value: math.NaN()}})
	var oor *ErrRatingOutOfRange
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, int64(2), oor.Item)
	assert.Contains(t, err.Error(), "user 1")

	_, err = NewRatingIndex([]Rating{{User: 1, Item: 2, Value: math.Inf(1)}})
	assert.Error(t, err)
}
