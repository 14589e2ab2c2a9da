package classify

import (
	"github.com/alexpejovic/MachineLearningOptimization/distance"
)

type options struct {
	k       int
	metric  distance.Metric
	workers int
	logger  *Logger
}

// Option configures Classifier construction.
type Option func(*options)

// WithK configures the number of nearest neighbors considered per vote.
// Defaults to 1.
//
// K must be at least 1 and no larger than the training set; the upper bound
// is enforced against the datasets at evaluation time.
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// WithMetric configures the distance metric.
// Defaults to MetricEuclidean.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithWorkers configures the number of parallel workers the testing set is
// partitioned across.
// Defaults to 1.
//
// Each worker scores a contiguous slice of the testing set against the full
// training set. Worker count is fixed for the run; it is not resized
// mid-evaluation.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithLogger configures the logger used for diagnostics.
//
// If nil is passed, NoopLogger() is used. Diagnostics never appear on the
// primary output stream.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
