package engine

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexpejovic/MachineLearningOptimization/distance"
)

func TestWorkerEmptyAssignment(t *testing.T) {
	training := trainingFixture(t)
	testSet := testingFixture(t)

	w := newWorker(0)
	w.assignCh <- Assignment{Start: 0, Count: 0}

	err := w.run(context.Background(), training, testSet, 1, distance.Euclidean, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	result, ok := <-w.resultCh
	require.True(t, ok)
	assert.Equal(t, 0, result)

	// Channel must be closed after the single report.
	_, ok = <-w.resultCh
	assert.False(t, ok)
}

func TestWorkerReportsSlice(t *testing.T) {
	training := trainingFixture(t)
	testSet := testingFixture(t)

	w := newWorker(1)
	w.assignCh <- Assignment{Start: 0, Count: testSet.Len()}

	err := w.run(context.Background(), training, testSet, 1, distance.Euclidean, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	result, ok := <-w.resultCh
	require.True(t, ok)
	assert.Equal(t, 1, result)
}

// A panicking worker must surface an error and close its result channel
// without sending, so the coordinator sees a lost result, not a zero.
func TestWorkerPanicReportsNoResult(t *testing.T) {
	training := trainingFixture(t)
	testSet := testingFixture(t)

	exploding := func(a, b []float32) float64 {
		panic("broken distance kernel")
	}

	w := newWorker(3)
	w.assignCh <- Assignment{Start: 0, Count: testSet.Len()}

	err := w.run(context.Background(), training, testSet, 1, exploding, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.ErrorContains(t, err, "panic")

	_, ok := <-w.resultCh
	assert.False(t, ok)
}

// A worker that cannot finish closes its result channel without sending,
// which is how the coordinator distinguishes a lost result from a zero.
func TestWorkerCancelledBeforeAssignment(t *testing.T) {
	training := trainingFixture(t)
	testSet := testingFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := newWorker(2)
	err := w.run(ctx, training, testSet, 1, distance.Euclidean, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.ErrorIs(t, err, context.Canceled)

	_, ok := <-w.resultCh
	assert.False(t, ok)
}
