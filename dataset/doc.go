// Package dataset provides the in-memory model and file codec for labeled
// image datasets.
//
// A dataset file is little-endian: a 16-byte header (magic "KNN1", version,
// item count, feature dimension) followed by one record per image, each an
// int32 label and dimension float32 samples. Files may additionally be
// wrapped in a zstd or lz4 frame; the loader sniffs the frame magic and
// decompresses transparently.
//
// Datasets are immutable after load and safe for concurrent readers.
package dataset
