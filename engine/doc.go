// Package engine provides the parallel work-distribution layer: partitioning
// of the testing set into contiguous per-worker slices, the worker loop, and
// the coordinator that dispatches assignments and aggregates results.
//
// The contract mirrors a process/pipe design: one coordinator, a fixed pool
// of workers, and point-to-point request/response channels. Workers share no
// mutable state; datasets are read-only for their lifetime.
package engine
