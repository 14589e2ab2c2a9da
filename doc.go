// Package classify evaluates a k-nearest-neighbor image classifier in
// parallel: a testing set is partitioned into contiguous slices, each slice
// is scored against the full training set by an independent worker, and the
// per-worker correct-prediction counts are summed into a single total.
//
// # Usage
//
//	c, err := classify.New(
//	    classify.WithK(3),
//	    classify.WithMetric(distance.MetricCosine),
//	    classify.WithWorkers(4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	correct, err := c.Evaluate(ctx, training, testing)
package classify
