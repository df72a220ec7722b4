package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lenskit/lenskit-sub015/vectors"
)

func TestAccuracyMetrics(t *testing.T) {
	pred := vectors.Wrap([]int64{1, 2, 3}, []float64{1, 2, 3})
	truth := vectors.Wrap([]int64{2, 3, 4}, []float64{4, 3, 9})

	assert.InDelta(t, math.Sqrt2, RMSE(pred, truth), 1e-12)
	assert.InDelta(t, 1.0, MAE(pred, truth), 1e-12)
	assert.InDelta(t, 2.0/3, Coverage(pred, truth), 1e-12)
}

func TestAccuracyMetricsNoOverlap(t *testing.T) {
	pred := vectors.Wrap([]int64{1}, []float64{1})
	truth := vectors.Wrap([]int64{2}, []float64{1})

	assert.True(t, math.IsNaN(RMSE(pred, truth)))
	assert.True(t, math.IsNaN(MAE(pred, truth)))
	assert.Equal(t, 0.0, Coverage(pred, truth))
	assert.True(t, math.IsNaN(Coverage(pred, vectors.Empty())))
}

func TestAccuracyMetricsIgnoreUnsetKeys(t *testing.T) {
	pred := vectors.Wrap([]int64{1, 2}, []float64{100, 2})
	pred.Unset(1)
	truth := vectors.Wrap([]int64{1, 2}, []float64{1, 2})

	assert.Equal(t, 0.0, RMSE(pred, truth))
	assert.Equal(t, 0.5, Coverage(pred, truth))
}
