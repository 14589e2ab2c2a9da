package dataset

import (
	"fmt"
)

// FeatureVector is an ordered sequence of feature samples of fixed length.
type FeatureVector = []float32

// Image is a labeled feature vector.
type Image struct {
	Label    int32
	Features FeatureVector
}

// Dataset is an immutable, in-memory collection of labeled images sharing a
// fixed feature dimension. Datasets are never mutated after load, so
// concurrent readers need no locking.
type Dataset struct {
	items []Image
	dim   int
}

// FromImages builds a Dataset from pre-assembled images.
// Every image must have dim features.
func FromImages(dim int, items []Image) (*Dataset, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	for i, img := range items {
		if len(img.Features) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(img.Features), Index: i}
		}
	}
	return &Dataset{items: items, dim: dim}, nil
}

// Len returns the number of images in the dataset.
func (d *Dataset) Len() int { return len(d.items) }

// Dimension returns the feature dimension shared by all images.
func (d *Dataset) Dimension() int { return d.dim }

// At returns the image at index i.
// The returned features must be treated as read-only.
func (d *Dataset) At(i int) Image { return d.items[i] }

// Label returns the label of the image at index i.
func (d *Dataset) Label(i int) int32 { return d.items[i].Label }

// Features returns the feature vector of the image at index i.
// The returned slice must be treated as read-only.
func (d *Dataset) Features(i int) FeatureVector { return d.items[i].Features }

// ErrInvalidDimension indicates an invalid feature dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrDimensionMismatch indicates an image whose feature length disagrees
// with the dataset dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	Index    int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at item %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}
