package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/alexpejovic/MachineLearningOptimization/dataset"
	"github.com/alexpejovic/MachineLearningOptimization/distance"
	"github.com/alexpejovic/MachineLearningOptimization/knn"
)

// Coordinator owns both datasets for the run, partitions the testing set
// across a fixed pool of workers, and folds their correct-counts into a
// single total. Workers get read-only access to the datasets; the running
// total is touched only by the coordinator.
type Coordinator struct {
	training *dataset.Dataset
	testing  *dataset.Dataset
	k        int
	fn       distance.Func
	workers  []*worker
	logger   *slog.Logger
}

// NewCoordinator validates the configuration once, before any worker
// exists: k bounds, worker count, and the cross-dataset dimension invariant.
// Workers never re-discover configuration errors mid-run.
func NewCoordinator(training, testing *dataset.Dataset, k int, fn distance.Func, numWorkers int, logger *slog.Logger) (*Coordinator, error) {
	if numWorkers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkerCount, numWorkers)
	}
	if k < 1 || k > training.Len() {
		return nil, fmt.Errorf("%w: k=%d with %d training items", knn.ErrInvalidK, k, training.Len())
	}
	if training.Dimension() != testing.Dimension() {
		return nil, &ErrDatasetMismatch{
			TrainingDim: training.Dimension(),
			TestingDim:  testing.Dimension(),
		}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	workers := make([]*worker, numWorkers)
	for i := range workers {
		workers[i] = newWorker(i)
	}

	return &Coordinator{
		training: training,
		testing:  testing,
		k:        k,
		fn:       fn,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run dispatches one slice per worker, waits for every worker, and returns
// the summed correct-count. Any worker failure is fatal for the whole run:
// the total is only meaningful if every partition was classified.
func (c *Coordinator) Run(ctx context.Context) (int, error) {
	n := c.testing.Len()
	parts, err := Partition(n, len(c.workers))
	if err != nil {
		return 0, err
	}
	if err := ValidateAssignments(parts, n); err != nil {
		return 0, fmt.Errorf("bad partition: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, w := range c.workers {
		w := w
		g.Go(func() error {
			return w.run(ctx, c.training, c.testing, c.k, c.fn, c.logger)
		})
	}

	for i, w := range c.workers {
		w.assignCh <- parts[i]
		close(w.assignCh)
	}

	// Every worker closes its result channel on exit, so each receive
	// terminates: with a value on success, closed-empty on failure.
	total := 0
	lost := false
	for _, w := range c.workers {
		result, ok := <-w.resultCh
		if !ok {
			lost = true
			continue
		}
		total += result
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	if lost {
		return 0, ErrWorkerLost
	}

	c.logger.Debug("all workers reported", "workers", len(c.workers), "total", total)
	return total, nil
}
