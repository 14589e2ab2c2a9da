// Package queue provides a value-based max-heap keyed by distance, used to
// track the k smallest distances seen during a scan.
package queue

// Item is an entry in the queue: a training-set index and its distance to
// the query.
type Item struct {
	Index    int
	Distance float64
}

// MaxHeap holds Items with the largest distance on top, so the current worst
// of the k best candidates can be inspected and evicted in O(log k).
// Value-based storage, no pointer indirection.
type MaxHeap struct {
	items []Item
}

// NewMaxHeap creates a heap with capacity for k items pre-allocated.
func NewMaxHeap(k int) *MaxHeap {
	return &MaxHeap{items: make([]Item, 0, k)}
}

// Len returns the number of items in the heap.
func (h *MaxHeap) Len() int { return len(h.items) }

// TopItem returns the item with the largest distance.
func (h *MaxHeap) TopItem() (Item, bool) {
	if len(h.items) == 0 {
		return Item{}, false
	}
	return h.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (h *MaxHeap) PushItem(item Item) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

// PopItem removes and returns the item with the largest distance.
func (h *MaxHeap) PopItem() (Item, bool) {
	n := len(h.items)
	if n == 0 {
		return Item{}, false
	}
	root := h.items[0]
	last := h.items[n-1]
	h.items[n-1] = Item{}
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.items[0] = last
		h.siftDown(0)
	}
	return root, true
}

// ReplaceTop swaps the worst item for a better one in a single sift.
func (h *MaxHeap) ReplaceTop(item Item) {
	h.items[0] = item
	h.siftDown(0)
}

// Items returns the underlying slice in heap order (not sorted).
func (h *MaxHeap) Items() []Item { return h.items }

// less orders the heap worst-first: larger distance on top, and among equal
// distances the larger index, so evicting the top always removes the latest
// of the tied entries and earlier indexes keep their slots.
func (h *MaxHeap) less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.Distance != b.Distance {
		return a.Distance > b.Distance
	}
	return a.Index > b.Index
}

func (h *MaxHeap) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *MaxHeap) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.less(r, l) {
			best = r
		}
		if !h.less(best, i) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
