package eval

import (
	"fmt"
	"runtime"

	lenskit "github.com/lenskit/lenskit-sub015"
)

type options struct {
	workers          int
	logger           *lenskit.Logger
	metricsCollector lenskit.MetricsCollector
}

// Option configures an Evaluator.
type Option func(*options)

// WithWorkers sets how many users are scored concurrently.
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger used to report evaluation runs.
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

// WithMetricsCollector sets the collector notified after each run.
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

func applyOptions(optFns []Option) (options, error) {
	o := options{
		workers:          runtime.GOMAXPROCS(0),
		logger:           lenskit.NoopLogger(),
		metricsCollector: lenskit.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.workers <= 0 {
		return o, fmt.Errorf("%w: %d", lenskit.ErrInvalidWorkers, o.workers)
	}
	return o, nil
}
