// Package distance provides the distance metrics used for image comparison.
// Vector kernels are SIMD-accelerated via vek when the CPU supports it.
package distance

import (
	"fmt"
	"math"

	"github.com/viterin/vek/vek32"
)

// maxCosine is the value returned when cosine distance is undefined because
// one of the vectors has zero magnitude. It is the upper bound of the cosine
// distance range, so degenerate vectors rank behind every well-defined one.
const maxCosine = 2.0

// Euclidean calculates the L2 distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Euclidean(a, b []float32) float64 {
	return float64(vek32.Distance(a, b))
}

// Cosine calculates the cosine distance (1 - cosine similarity) between two
// vectors, so smaller means more similar, matching Euclidean's convention.
// If either vector has zero magnitude the result is maxCosine.
// Assumes vectors are the same length (caller's responsibility).
func Cosine(a, b []float32) float64 {
	na := float64(vek32.Dot(a, a))
	nb := float64(vek32.Dot(b, b))
	if na == 0 || nb == 0 {
		return maxCosine
	}
	dot := float64(vek32.Dot(a, b))
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}

// Metric represents the distance metric used for image comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "euclidean"
	case MetricCosine:
		return "cosine"
	default:
		return fmt.Sprintf("unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float32) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
