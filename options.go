package lenskit

type options struct {
	logger *Logger
}

// Option configures index construction.
type Option func(*options)

// WithLogger sets the logger that reports index construction.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	o := options{logger: NoopLogger()}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
