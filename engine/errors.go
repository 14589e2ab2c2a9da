package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkerCount is returned when the worker count is not positive.
	ErrInvalidWorkerCount = errors.New("worker count must be positive")

	// ErrWorkerLost is returned when a worker terminates without reporting
	// its result. A missing partial result must never be treated as zero,
	// so the whole run fails.
	ErrWorkerLost = errors.New("worker terminated without reporting a result")
)

// ErrDatasetMismatch indicates that the training and testing datasets do not
// share a feature dimension.
type ErrDatasetMismatch struct {
	TrainingDim int
	TestingDim  int
}

func (e *ErrDatasetMismatch) Error() string {
	return fmt.Sprintf("dataset dimension mismatch: training %d, testing %d", e.TrainingDim, e.TestingDim)
}
