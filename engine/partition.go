package engine

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Assignment describes a contiguous half-open slice
// [Start, Start+Count) of the testing set, classified by exactly one worker.
type Assignment struct {
	Start int
	Count int
}

// Partition splits n test items into p contiguous slices. Each slice gets
// ceil(n/p) items except the trailing ones, which shrink (possibly to zero)
// so the sizes sum exactly to n. The split is deterministic: for n=5, p=2
// the sizes are always {3, 2}.
func Partition(n, p int) ([]Assignment, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative item count: %d", n)
	}
	if p < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkerCount, p)
	}

	base := (n + p - 1) / p
	parts := make([]Assignment, p)
	cur := 0
	for i := range parts {
		size := base
		if remaining := n - cur; remaining < size {
			size = remaining
		}
		parts[i] = Assignment{Start: cur, Count: size}
		cur += size
	}
	return parts, nil
}

// ValidateAssignments proves that parts cover [0, n) exactly: no index is
// dropped, none is classified twice. The total is meaningless otherwise, so
// the coordinator refuses to dispatch a partition that fails this check.
func ValidateAssignments(parts []Assignment, n int) error {
	covered := roaring.New()
	total := 0
	for i, a := range parts {
		if a.Start < 0 || a.Count < 0 {
			return fmt.Errorf("assignment %d: negative bounds (start=%d count=%d)", i, a.Start, a.Count)
		}
		if a.Count == 0 {
			continue
		}
		slice := roaring.New()
		slice.AddRange(uint64(a.Start), uint64(a.Start+a.Count))
		if covered.Intersects(slice) {
			return fmt.Errorf("assignment %d: overlaps a previous slice (start=%d count=%d)", i, a.Start, a.Count)
		}
		covered.Or(slice)
		total += a.Count
	}

	if total != n || covered.GetCardinality() != uint64(n) {
		return fmt.Errorf("assignments cover %d of %d items", total, n)
	}
	if n > 0 && (covered.Minimum() != 0 || covered.Maximum() != uint32(n-1)) {
		return fmt.Errorf("assignments leave a gap in [0, %d)", n)
	}
	return nil
}
