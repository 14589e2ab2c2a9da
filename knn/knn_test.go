package knn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexpejovic/MachineLearningOptimization/dataset"
	"github.com/alexpejovic/MachineLearningOptimization/distance"
)

func mustDataset(t *testing.T, dim int, items []dataset.Image) *dataset.Dataset {
	t.Helper()
	d, err := dataset.FromImages(dim, items)
	require.NoError(t, err)
	return d
}

func TestClassify(t *testing.T) {
	training := mustDataset(t, 2, []dataset.Image{
		{Label: 0, Features: []float32{0, 0}},
		{Label: 1, Features: []float32{10, 10}},
		{Label: 1, Features: []float32{10, 11}},
	})

	t.Run("K1Nearest", func(t *testing.T) {
		label, err := Classify([]float32{1, 1}, training, 1, distance.Euclidean)
		require.NoError(t, err)
		assert.Equal(t, int32(0), label)
	})

	t.Run("K3Majority", func(t *testing.T) {
		// All three neighbors vote; label 1 holds two of the three slots.
		label, err := Classify([]float32{1, 1}, training, 3, distance.Euclidean)
		require.NoError(t, err)
		assert.Equal(t, int32(1), label)
	})

	t.Run("Cosine", func(t *testing.T) {
		// Direction (1,0) is aligned with the label-2 item, not the
		// nearer-by-euclidean label-3 one.
		byAngle := mustDataset(t, 2, []dataset.Image{
			{Label: 2, Features: []float32{100, 0}},
			{Label: 3, Features: []float32{1, 1}},
		})
		label, err := Classify([]float32{5, 0}, byAngle, 1, distance.Cosine)
		require.NoError(t, err)
		assert.Equal(t, int32(2), label)
	})
}

func TestClassifyInvalidK(t *testing.T) {
	training := mustDataset(t, 1, []dataset.Image{
		{Label: 0, Features: []float32{0}},
		{Label: 1, Features: []float32{1}},
	})

	for _, k := range []int{0, -1, 3} {
		_, err := Classify([]float32{0}, training, k, distance.Euclidean)
		require.ErrorIs(t, err, ErrInvalidK, "k=%d", k)
	}
}

// Equidistant training items compete for the last slot; the earlier index
// must win it, so the vote sees label 5 twice.
func TestClassifySelectionTieBreak(t *testing.T) {
	training := mustDataset(t, 1, []dataset.Image{
		{Label: 5, Features: []float32{1}},
		{Label: 5, Features: []float32{-1}},
		{Label: 6, Features: []float32{1}},
		{Label: 6, Features: []float32{1}},
	})

	// Distances from 0: {1, 1, 1, 1}. K=2 selects indexes 0 and 1.
	label, err := Classify([]float32{0}, training, 2, distance.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, int32(5), label)
}

// The training-order rule also holds once the heap is full: when a closer
// item evicts one of several entries tied at the current worst distance,
// the victim must be the latest tied index, never an earlier one.
func TestClassifySelectionTieBreakEviction(t *testing.T) {
	training := mustDataset(t, 1, []dataset.Image{
		{Label: 1, Features: []float32{5}},
		{Label: 2, Features: []float32{5}},
		{Label: 1, Features: []float32{4}},
		{Label: 2, Features: []float32{4}},
	})

	// Distances from 0: {5, 5, 4, 4}. K=3 fills with indexes 0, 1, 2;
	// index 3 then evicts the later of the two tied at distance 5, so the
	// selection is {0, 2, 3} with labels {1, 1, 2}.
	label, err := Classify([]float32{0}, training, 3, distance.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, int32(1), label)
}

// With an exact vote tie, the label owning the nearest tied member wins,
// regardless of label value.
func TestClassifyVoteTieBreak(t *testing.T) {
	training := mustDataset(t, 1, []dataset.Image{
		{Label: 9, Features: []float32{2}},
		{Label: 1, Features: []float32{3}},
		{Label: 9, Features: []float32{5}},
		{Label: 1, Features: []float32{5}},
	})

	// K=4: labels 9 and 1 get two votes each. Label 9's nearest member is
	// at distance 2 vs label 1's at distance 3, so 9 wins even though 1 < 9.
	label, err := Classify([]float32{0}, training, 4, distance.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, int32(9), label)
}

func TestClassifyDeterminism(t *testing.T) {
	training := mustDataset(t, 1, []dataset.Image{
		{Label: 1, Features: []float32{1}},
		{Label: 2, Features: []float32{1}},
		{Label: 3, Features: []float32{1}},
		{Label: 4, Features: []float32{1}},
	})

	// Everything is equidistant; selection order and the vote tie-break
	// must pin the result to the lowest training index.
	for i := 0; i < 20; i++ {
		label, err := Classify([]float32{0}, training, 3, distance.Euclidean)
		require.NoError(t, err)
		assert.Equal(t, int32(1), label)
	}
}

func TestNearestExcluding(t *testing.T) {
	training := mustDataset(t, 2, []dataset.Image{
		{Label: 0, Features: []float32{0, 0}},
		{Label: 1, Features: []float32{3, 4}},
		{Label: 2, Features: []float32{6, 8}},
	})

	t.Run("SkipsSelf", func(t *testing.T) {
		idx, dist, err := NearestExcluding(training.Features(0), training, 0, distance.Euclidean)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.InDelta(t, 5.0, dist, 1e-5)
	})

	t.Run("TieGoesToEarlierIndex", func(t *testing.T) {
		tied := mustDataset(t, 1, []dataset.Image{
			{Label: 0, Features: []float32{0}},
			{Label: 1, Features: []float32{1}},
			{Label: 2, Features: []float32{-1}},
		})
		idx, _, err := NearestExcluding(tied.Features(0), tied, 0, distance.Euclidean)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})

	t.Run("NoCandidates", func(t *testing.T) {
		single := mustDataset(t, 1, []dataset.Image{
			{Label: 0, Features: []float32{0}},
		})
		_, _, err := NearestExcluding(single.Features(0), single, 0, distance.Euclidean)
		require.Error(t, err)
	})
}
