package baseline

import (
	lenskit "github.com/lenskit/lenskit-sub015"
)

type options struct {
	damping          float64
	logger           *lenskit.Logger
	metricsCollector lenskit.MetricsCollector
}

// Option configures scorer training.
type Option func(*options)

// WithDamping sets the damping term added to every offset denominator.
// Damping pulls offsets of sparsely rated items and users towards zero.
// Negative values are rejected at training time.
func WithDamping(d float64) Option {
	return func(o *options) {
		o.damping = d
	}
}

// WithLogger sets the logger used to report training.
//
// If nil is passed, logging is disabled.
func WithLogger(l *lenskit.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = lenskit.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified of training and scoring.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc lenskit.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = lenskit.NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           lenskit.NoopLogger(),
		metricsCollector: lenskit.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
