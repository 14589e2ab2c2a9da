package classify

import (
	"github.com/alexpejovic/MachineLearningOptimization/engine"
	"github.com/alexpejovic/MachineLearningOptimization/knn"
)

// Public error contract. The underlying package errors satisfy errors.Is /
// errors.As against these, so callers only need this package.
var (
	// ErrInvalidK is returned when k is not positive or exceeds the
	// training set size.
	ErrInvalidK = knn.ErrInvalidK

	// ErrInvalidWorkerCount is returned when the worker count is not positive.
	ErrInvalidWorkerCount = engine.ErrInvalidWorkerCount

	// ErrWorkerLost is returned when a worker terminates without reporting
	// its result.
	ErrWorkerLost = engine.ErrWorkerLost
)

// ErrDatasetMismatch indicates that the training and testing datasets do not
// share a feature dimension.
type ErrDatasetMismatch = engine.ErrDatasetMismatch
