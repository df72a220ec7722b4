// Package similarity computes similarity scores between sparse vectors.
//
// Every function looks only at keys present in both vectors. Vectors with
// no common keys have similarity 0.
package similarity

import (
	"errors"
	"fmt"
	"math"

	"github.com/viterin/vek"

	"github.com/lenskit/lenskit-sub015/internal/pool"
	"github.com/lenskit/lenskit-sub015/vectors"
)

// ErrUnknownSimilarity is returned by ByName for an unsupported name.
var ErrUnknownSimilarity = errors.New("unknown similarity")

// Func computes the similarity between two vectors.
type Func func(a, b vectors.SparseVector) float64

// ByName returns the similarity function registered under name.
func ByName(name string) (Func, error) {
	switch name {
	case "cosine":
		return Cosine, nil
	case "pearson":
		return Pearson, nil
	case "msd":
		return MSD, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSimilarity, name)
	}
}

// Cosine returns the cosine of the angle between a and b, restricted to
// their common keys.
func Cosine(a, b vectors.SparseVector) float64 {
	o := pool.Gather(a, b)
	defer pool.Put(o)
	return cosine(o.X, o.Y)
}

// Pearson returns the Pearson correlation of a and b over their common keys.
// Each vector is centred on the mean of all its own values.
func Pearson(a, b vectors.SparseVector) float64 {
	o := pool.Gather(a, b)
	defer pool.Put(o)
	if o.Len() == 0 {
		return 0
	}
	vek.SubNumber_Inplace(o.X, a.Mean())
	vek.SubNumber_Inplace(o.Y, b.Mean())
	return cosine(o.X, o.Y)
}

// MSD returns the mean squared difference similarity 1/(1+msd) over the
// common keys of a and b.
func MSD(a, b vectors.SparseVector) float64 {
	o := pool.Gather(a, b)
	defer pool.Put(o)
	if o.Len() == 0 {
		return 0
	}
	vek.Sub_Inplace(o.X, o.Y)
	msd := vek.Dot(o.X, o.X) / float64(o.Len())
	return 1 / (msd + 1)
}

func cosine(xs, ys []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	den := math.Sqrt(vek.Dot(xs, xs)) * math.Sqrt(vek.Dot(ys, ys))
	if den == 0 {
		return 0
	}
	return vek.Dot(xs, ys) / den
}
