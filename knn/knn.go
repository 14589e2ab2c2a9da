package knn

import (
	"errors"
	"fmt"

	"github.com/alexpejovic/MachineLearningOptimization/dataset"
	"github.com/alexpejovic/MachineLearningOptimization/distance"
	"github.com/alexpejovic/MachineLearningOptimization/internal/queue"
)

// ErrInvalidK is returned when k is not positive or exceeds the training set
// size. Silently clamping k would change the vote, so it is rejected instead.
var ErrInvalidK = errors.New("invalid k")

// Classify predicts the label of query by majority vote over its k nearest
// neighbors in training.
//
// Selection is a single pass in training order with a bounded max-heap, so a
// later item only displaces an earlier one when its distance is strictly
// smaller: equal distances keep the earlier index. A vote tie between labels
// is broken by the smallest distance among the tied labels' members, then by
// the lowest training index, so the prediction is fully deterministic.
func Classify(query dataset.FeatureVector, training *dataset.Dataset, k int, fn distance.Func) (int32, error) {
	n := training.Len()
	if k < 1 || k > n {
		return 0, fmt.Errorf("%w: k=%d with %d training items", ErrInvalidK, k, n)
	}

	h := queue.NewMaxHeap(k)
	for i := 0; i < n; i++ {
		d := fn(query, training.Features(i))
		if h.Len() < k {
			h.PushItem(queue.Item{Index: i, Distance: d})
			continue
		}
		if top, _ := h.TopItem(); d < top.Distance {
			h.ReplaceTop(queue.Item{Index: i, Distance: d})
		}
	}

	return vote(h.Items(), training), nil
}

// labelStat accumulates the vote standing of one candidate label.
type labelStat struct {
	count    int
	minDist  float64
	minIndex int
}

func vote(selected []queue.Item, training *dataset.Dataset) int32 {
	stats := make(map[int32]*labelStat, len(selected))
	for _, item := range selected {
		label := training.Label(item.Index)
		s, ok := stats[label]
		if !ok {
			stats[label] = &labelStat{count: 1, minDist: item.Distance, minIndex: item.Index}
			continue
		}
		s.count++
		if item.Distance < s.minDist || (item.Distance == s.minDist && item.Index < s.minIndex) {
			s.minDist = item.Distance
			s.minIndex = item.Index
		}
	}

	var (
		best     int32
		bestStat *labelStat
	)
	for label, s := range stats {
		if bestStat == nil || better(s, bestStat) {
			best = label
			bestStat = s
		}
	}
	return best
}

// better reports whether a beats b under the vote ordering: more votes, then
// the nearer closest member, then the earlier training index.
func better(a, b *labelStat) bool {
	if a.count != b.count {
		return a.count > b.count
	}
	if a.minDist != b.minDist {
		return a.minDist < b.minDist
	}
	return a.minIndex < b.minIndex
}

// NearestExcluding returns the index and distance of the training item
// nearest to query, skipping the item at exclude. Equal distances resolve to
// the earlier index. It is used to sanity-check a training set against
// itself, where the queried item must not match trivially.
func NearestExcluding(query dataset.FeatureVector, training *dataset.Dataset, exclude int, fn distance.Func) (int, float64, error) {
	best := -1
	bestDist := 0.0
	for i := 0; i < training.Len(); i++ {
		if i == exclude {
			continue
		}
		d := fn(query, training.Features(i))
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return 0, 0, errors.New("no candidate neighbors")
	}
	return best, bestDist, nil
}
