package eval

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/lenskit/lenskit-sub015/internal/pool"
	"github.com/lenskit/lenskit-sub015/vectors"
)

// RMSE returns the root mean squared error of pred against truth over
// their common keys, or NaN when they share no key.
func RMSE(pred, truth vectors.SparseVector) float64 {
	o := pool.Gather(pred, truth)
	defer pool.Put(o)
	if o.Len() == 0 {
		return math.NaN()
	}
	return floats.Distance(o.X, o.Y, 2) / math.Sqrt(float64(o.Len()))
}

// MAE returns the mean absolute error of pred against truth over their
// common keys, or NaN when they share no key.
func MAE(pred, truth vectors.SparseVector) float64 {
	o := pool.Gather(pred, truth)
	defer pool.Put(o)
	if o.Len() == 0 {
		return math.NaN()
	}
	return floats.Distance(o.X, o.Y, 1) / float64(o.Len())
}

// Coverage returns the fraction of truth keys that pred has a value for,
// or NaN for an empty truth vector.
func Coverage(pred, truth vectors.SparseVector) float64 {
	if truth.IsEmpty() {
		return math.NaN()
	}
	return float64(pred.CountCommonKeys(truth)) / float64(truth.Size())
}
