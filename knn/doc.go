// Package knn implements k-nearest-neighbor label prediction over a labeled
// dataset: exhaustive distance scan, bounded k-smallest selection, and a
// deterministic majority vote.
package knn
