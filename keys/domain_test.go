package keys

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicErr runs fn and returns the error it panicked with, if any.
func panicErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		want []int64
	}{
		{"Empty", nil, []int64{}},
		{"Sorted", []int64{1, 2, 3}, []int64{1, 2, 3}},
		{"Unsorted", []int64{30, 10, 20}, []int64{10, 20, 30}},
		{"Duplicates", []int64{5, 1, 5, 3, 1}, []int64{1, 3, 5}},
		{"Negative", []int64{0, -7, 42}, []int64{-7, 0, 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Create(tt.in...)
			assert.Equal(t, tt.want, append([]int64{}, d.Keys()...))
			assert.Equal(t, d.DomainSize(), d.Size())
			assert.True(t, d.IsCompletelySet())
			assert.True(t, d.IsOwned())
		})
	}
}

func TestCreateCopiesInput(t *testing.T) {
	in := []int64{3, 1, 2}
	d := Create(in...)
	assert.Equal(t, []int64{3, 1, 2}, in)
	assert.Equal(t, []int64{1, 2, 3}, d.Keys())
}

func TestWrap(t *testing.T) {
	ks := []int64{1, 4, 9, 16, 25}

	t.Run("AllActive", func(t *testing.T) {
		d := Wrap(ks, 5, true)
		assert.Equal(t, 5, d.DomainSize())
		assert.Equal(t, 5, d.Size())
	})

	t.Run("AllInactive", func(t *testing.T) {
		d := Wrap(ks, 5, false)
		assert.Equal(t, 5, d.DomainSize())
		assert.Equal(t, 0, d.Size())
		assert.False(t, d.IsCompletelySet())
	})

	t.Run("Prefix", func(t *testing.T) {
		d := Wrap(ks, 3, true)
		assert.Equal(t, []int64{1, 4, 9}, d.Keys())
		assert.Negative(t, d.Index(16))
	})

	t.Run("NoCopy", func(t *testing.T) {
		d := Wrap(ks, 5, true)
		assert.Same(t, &ks[0], &d.Keys()[0])
	})

	t.Run("BadSize", func(t *testing.T) {
		assert.ErrorIs(t, panicErr(func() { Wrap(ks, 6, true) }), ErrIndexOutOfRange)
		assert.ErrorIs(t, panicErr(func() { Wrap(ks, -1, true) }), ErrIndexOutOfRange)
	})
}

func TestFromSeq(t *testing.T) {
	d := FromSeq(slices.Values([]int64{9, 3, 9, 1}))
	assert.Equal(t, []int64{1, 3, 9}, d.Keys())
}

func TestIsStrictlySorted(t *testing.T) {
	assert.True(t, IsStrictlySorted(nil))
	assert.True(t, IsStrictlySorted([]int64{1, 2, 5}))
	assert.False(t, IsStrictlySorted([]int64{1, 1, 5}))
	assert.False(t, IsStrictlySorted([]int64{3, 2}))
}

func TestIndex(t *testing.T) {
	d := Create(10, 20, 30, 40)

	for i, k := range d.Keys() {
		assert.Equal(t, i, d.Index(k))
		p := d.Lookup(k)
		assert.True(t, p.Found())
		assert.Equal(t, i, p.Index())
	}

	tests := []struct {
		key int64
		ip  int
	}{
		{5, 0},
		{15, 1},
		{25, 2},
		{35, 3},
		{45, 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("Missing%d", tt.key), func(t *testing.T) {
			code := d.Index(tt.key)
			require.Negative(t, code)
			assert.Equal(t, tt.ip, -code-1)
			assert.Equal(t, tt.ip, Decode(code).InsertionPoint())

			p := d.Lookup(tt.key)
			assert.False(t, p.Found())
			assert.Equal(t, -1, p.Index())
			assert.Equal(t, tt.ip, p.InsertionPoint())
			assert.Equal(t, code, p.Encode())
		})
	}
}

func TestIndexEmptyDomain(t *testing.T) {
	d := Empty()
	assert.Equal(t, -1, d.Index(42))
	assert.Equal(t, 0, d.Size())
	assert.True(t, d.IsCompletelySet())
}

func TestIndexIfActive(t *testing.T) {
	d := Create(1, 2, 3)
	d.SetActive(1, false)

	assert.Equal(t, 0, d.IndexIfActive(1))
	assert.Equal(t, -2, d.IndexIfActive(2))
	assert.Equal(t, 2, d.IndexIfActive(3))
	assert.Equal(t, -4, d.IndexIfActive(7))

	assert.True(t, d.KeyIsActive(1))
	assert.False(t, d.KeyIsActive(2))
	assert.False(t, d.KeyIsActive(7))
	assert.True(t, d.IndexIsActive(2))
	assert.False(t, d.IndexIsActive(1))
	assert.False(t, d.IndexIsActive(-1))
	assert.False(t, d.IndexIsActive(3))
}

func TestActivationScenario(t *testing.T) {
	d := Create(10, 20, 30)

	d.SetActive(1, false)
	assert.Equal(t, 2, d.Size())
	assert.Equal(t, []int64{10, 30}, d.ActiveSet().Slice())
	assert.False(t, d.IsCompletelySet())

	d.SetActive(1, true)
	assert.True(t, d.IsCompletelySet())
	assert.Equal(t, 3, d.Size())
}

func TestActiveSetIsLive(t *testing.T) {
	d := Create(1, 2, 3, 4)
	view := d.ActiveSet()
	assert.Equal(t, 4, view.Len())

	d.SetActive(0, false)
	d.SetActive(2, false)
	assert.Equal(t, 2, view.Len())
	assert.Equal(t, []int64{2, 4}, slices.Collect(view.All()))
	assert.Equal(t, int64(4), view.At(1))
	assert.True(t, view.Contains(2))
	assert.False(t, view.Contains(3))
	err := panicErr(func() { view.At(2) })
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "2 not in [0, 2)")
}

func TestSetActiveOutOfRange(t *testing.T) {
	d := Create(1, 2)
	assert.ErrorIs(t, panicErr(func() { d.SetActive(2, true) }), ErrIndexOutOfRange)
	assert.ErrorIs(t, panicErr(func() { d.SetActive(-1, true) }), ErrIndexOutOfRange)
}

func TestSetAllActive(t *testing.T) {
	d := Create(1, 2, 3)
	d.SetAllActive(false)
	assert.Equal(t, 0, d.Size())
	d.SetAllActive(true)
	assert.True(t, d.IsCompletelySet())
}

func TestInvert(t *testing.T) {
	d := Create(1, 2, 3, 4, 5)
	d.SetActive(0, false)
	d.SetActive(3, false)
	before := d.ActiveSet().Slice()

	d.Invert()
	assert.Equal(t, []int64{1, 4}, d.ActiveSet().Slice())

	d.Invert()
	assert.Equal(t, before, d.ActiveSet().Slice())
}

func TestClone(t *testing.T) {
	d := Create(1, 2, 3)
	c := d.Clone()

	require.NotSame(t, d, c)
	assert.True(t, d.Equal(c))
	assert.True(t, c.IsOwned())
	assert.True(t, d.SameKeys(c))

	c.SetActive(0, false)
	assert.True(t, d.KeyIsActive(1))
	assert.False(t, c.KeyIsActive(1))

	d.SetActive(2, false)
	assert.True(t, c.KeyIsActive(3))
	assert.False(t, d.Equal(c))
}

func TestUnownedClone(t *testing.T) {
	d := Create(1, 2, 3)
	u := d.Unowned()

	assert.False(t, u.IsOwned())
	assert.Same(t, u, u.Clone())
	assert.Same(t, u, u.Unowned())
	assert.NotSame(t, d, d.Clone())
}

func TestUnownedRefusesMutation(t *testing.T) {
	u := Create(1, 2, 3).Unowned()

	assert.ErrorIs(t, panicErr(func() { u.SetActive(0, false) }), ErrUnownedDomain)
	assert.ErrorIs(t, panicErr(func() { u.SetAllActive(false) }), ErrUnownedDomain)
	assert.ErrorIs(t, panicErr(func() { u.Invert() }), ErrUnownedDomain)
	assert.Equal(t, 3, u.Size())
}

func TestUnownedSharesActiveState(t *testing.T) {
	d := Create(1, 2, 3)
	u := d.Unowned()
	d.SetActive(1, false)
	assert.False(t, u.KeyIsActive(2))
}

func TestInactiveCopy(t *testing.T) {
	d := Create(1, 2, 3).Unowned()
	c := d.InactiveCopy()

	assert.True(t, c.IsOwned())
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, 3, c.DomainSize())
	assert.True(t, d.SameKeys(c))

	c.SetActive(1, true)
	assert.Equal(t, []int64{2}, c.ActiveSet().Slice())
	assert.Equal(t, 3, d.Size())
}

func TestCommonActivePositions(t *testing.T) {
	d := Create(1, 2, 3, 4)
	a := d.InactiveCopy()
	b := d.InactiveCopy()
	a.SetActive(0, true)
	a.SetActive(2, true)
	b.SetActive(2, true)
	b.SetActive(3, true)

	assert.Equal(t, []int{2}, slices.Collect(a.CommonActivePositions(b)))
	assert.Equal(t, 1, a.CommonActiveCount(b))

	other := Create(1, 2, 3, 4)
	err := panicErr(func() { a.CommonActiveCount(other) })
	assert.True(t, errors.Is(err, ErrDomainMismatch))
}

func TestKey(t *testing.T) {
	d := Create(7, 8)
	assert.Equal(t, int64(8), d.Key(1))
	assert.ErrorIs(t, panicErr(func() { d.Key(2) }), ErrIndexOutOfRange)
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "Found(3)", FoundAt(3).String())
	assert.Equal(t, "Missing(0)", MissingAt(0).String())
	assert.Equal(t, FoundAt(2), Decode(2))
	assert.Equal(t, MissingAt(0), Decode(-1))
}

func TestCopyOfUnowned(t *testing.T) {
	d := Create(1, 2, 3)
	d.SetActive(0, false)
	u := d.Unowned()

	c := u.Copy()
	require.NotSame(t, u, c)
	assert.True(t, c.IsOwned())
	assert.True(t, c.Equal(u))

	c.SetActive(0, true)
	assert.False(t, d.KeyIsActive(1))
}
