package classify

import (
	"context"
	"fmt"

	"github.com/alexpejovic/MachineLearningOptimization/dataset"
	"github.com/alexpejovic/MachineLearningOptimization/distance"
	"github.com/alexpejovic/MachineLearningOptimization/engine"
)

// Classifier evaluates a testing set against a training set using
// k-nearest-neighbor majority vote, parallelized across a fixed worker pool.
type Classifier struct {
	opts options
	fn   distance.Func
}

// New creates a Classifier. Configuration errors (invalid k, worker count,
// or metric) are reported here, before any dataset is touched.
func New(optFns ...Option) (*Classifier, error) {
	opts := options{
		k:       1,
		metric:  distance.MetricEuclidean,
		workers: 1,
		logger:  NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidK, opts.k)
	}
	if opts.workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkerCount, opts.workers)
	}

	fn, err := distance.Provider(opts.metric)
	if err != nil {
		return nil, err
	}

	return &Classifier{opts: opts, fn: fn}, nil
}

// K returns the configured neighbor count.
func (c *Classifier) K() int { return c.opts.k }

// Metric returns the configured distance metric.
func (c *Classifier) Metric() distance.Metric { return c.opts.metric }

// Workers returns the configured worker count.
func (c *Classifier) Workers() int { return c.opts.workers }

// Evaluate classifies every image in testing against training and returns
// the number of correct predictions. It blocks until every worker has
// reported; a worker failure or a cancelled context fails the whole run.
func (c *Classifier) Evaluate(ctx context.Context, training, testing *dataset.Dataset) (int, error) {
	logger := c.opts.logger.
		WithK(c.opts.k).
		WithMetric(c.opts.metric.String()).
		WithWorkers(c.opts.workers)

	logger.Debug("starting evaluation",
		"training_items", training.Len(),
		"testing_items", testing.Len(),
		"dimension", training.Dimension(),
	)

	coord, err := engine.NewCoordinator(training, testing, c.opts.k, c.fn, c.opts.workers, logger.Logger)
	if err != nil {
		return 0, err
	}

	total, err := coord.Run(ctx)
	if err != nil {
		return 0, err
	}

	logger.Debug("evaluation complete", "correct", total, "testing_items", testing.Len())
	return total, nil
}
