package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/alexpejovic/MachineLearningOptimization/dataset"
	"github.com/alexpejovic/MachineLearningOptimization/distance"
	"github.com/alexpejovic/MachineLearningOptimization/knn"
)

// progressInterval bounds how often a worker emits a debug progress line.
const progressInterval = time.Second

// worker is one unit of parallel execution. It waits for a single
// Assignment on its private channel, classifies that slice of the testing
// set, and reports one correct-count on its private result channel. The two
// channels are point-to-point: no worker shares mutable state with another.
type worker struct {
	id       int
	assignCh chan Assignment
	resultCh chan int
}

func newWorker(id int) *worker {
	return &worker{
		id:       id,
		assignCh: make(chan Assignment, 1),
		resultCh: make(chan int, 1),
	}
}

// run executes the worker loop. The result channel is closed on exit; a
// close without a prior send is how the coordinator detects a lost result.
func (w *worker) run(ctx context.Context, training, testing *dataset.Dataset, k int, fn distance.Func, logger *slog.Logger) (err error) {
	defer close(w.resultCh)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker %d: panic: %v", w.id, r)
		}
	}()

	// The full assignment must arrive before any classification starts.
	var a Assignment
	select {
	case a = <-w.assignCh:
	case <-ctx.Done():
		return ctx.Err()
	}

	logger.Debug("assignment received", "worker", w.id, "start", a.Start, "count", a.Count)

	progress := rate.Sometimes{First: 1, Interval: progressInterval}
	correct := 0
	for i := a.Start; i < a.Start+a.Count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		predicted, err := knn.Classify(testing.Features(i), training, k, fn)
		if err != nil {
			return fmt.Errorf("worker %d: item %d: %w", w.id, i, err)
		}
		if predicted == testing.Label(i) {
			correct++
		}

		done := i - a.Start + 1
		progress.Do(func() {
			logger.Debug("progress", "worker", w.id, "done", done, "count", a.Count)
		})
	}

	w.resultCh <- correct
	logger.Debug("worker finished", "worker", w.id, "correct", correct)
	return nil
}
