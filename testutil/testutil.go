// Package testutil provides testing utilities for the classifier.
//
// This package is intended for use in tests and benchmarks only. It provides
// seeded random dataset generation and a naive reference classifier used as
// ground truth.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/alexpejovic/MachineLearningOptimization/dataset"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// FillUniform fills vec with uniform samples in [0, 1).
func (r *RNG) FillUniform(vec []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range vec {
		vec[i] = r.rand.Float32()
	}
}

// Intn returns a uniform int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// RandomDataset generates n labeled images of the given dimension with
// labels drawn uniformly from [0, numLabels).
func RandomDataset(rng *RNG, n, dim, numLabels int) *dataset.Dataset {
	items := make([]dataset.Image, n)
	for i := range items {
		features := make([]float32, dim)
		rng.FillUniform(features)
		items[i] = dataset.Image{
			Label:    int32(rng.Intn(numLabels)),
			Features: features,
		}
	}
	d, err := dataset.FromImages(dim, items)
	if err != nil {
		panic(err)
	}
	return d
}

// CountCorrect is the naive serial reference: it classifies every testing
// item with the provided classify func and counts matches against the true
// labels. Parallel runs must agree with it exactly.
func CountCorrect(training, testing *dataset.Dataset, classifyFn func(query dataset.FeatureVector) (int32, error)) (int, error) {
	correct := 0
	for i := 0; i < testing.Len(); i++ {
		predicted, err := classifyFn(testing.Features(i))
		if err != nil {
			return 0, err
		}
		if predicted == testing.Label(i) {
			correct++
		}
	}
	return correct, nil
}

// MustDataset builds a dataset from images and panics on error.
// For test fixtures only.
func MustDataset(dim int, items []dataset.Image) *dataset.Dataset {
	d, err := dataset.FromImages(dim, items)
	if err != nil {
		panic(err)
	}
	return d
}
