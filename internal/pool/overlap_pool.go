// Package pool provides reusable scratch buffers for overlap computations.
// Uses sync.Pool for automatic memory reuse across similarity and metric
// evaluations.
package pool

import (
	"sync"

	"github.com/lenskit/lenskit-sub015/vectors"
)

const (
	// DefaultCapacity is the initial capacity of each value buffer.
	DefaultCapacity = 256

	// MaxRetainedCapacity bounds the buffers kept in the pool, so one
	// huge overlap does not pin its memory forever.
	MaxRetainedCapacity = 1 << 16
)

// Overlap holds the values of the keys two vectors have in common, in key
// order: X[i] and Y[i] belong to the same key.
type Overlap struct {
	X []float64
	Y []float64
}

var overlapPool = sync.Pool{
	New: func() any {
		return &Overlap{
			X: make([]float64, 0, DefaultCapacity),
			Y: make([]float64, 0, DefaultCapacity),
		}
	},
}

// Get retrieves an empty Overlap from the pool.
func Get() *Overlap {
	o := overlapPool.Get().(*Overlap)
	o.Reset()
	return o
}

// Put returns an Overlap to the pool for reuse. o must not be used
// afterwards.
func Put(o *Overlap) {
	if cap(o.X) > MaxRetainedCapacity {
		return
	}
	overlapPool.Put(o)
}

// Gather retrieves an Overlap from the pool and fills it with the common
// entries of a and b.
func Gather(a, b vectors.SparseVector) *Overlap {
	o := Get()
	o.Fill(a, b)
	return o
}

// Reset empties the buffers, keeping their capacity.
func (o *Overlap) Reset() {
	o.X = o.X[:0]
	o.Y = o.Y[:0]
}

// Fill replaces the contents with the common entries of a and b.
func (o *Overlap) Fill(a, b vectors.SparseVector) {
	o.Reset()
	for ea, eb := range vectors.Pairs(a, b) {
		o.X = append(o.X, ea.Value())
		o.Y = append(o.Y, eb.Value())
	}
}

// Len returns the number of common keys.
func (o *Overlap) Len() int {
	return len(o.X)
}
