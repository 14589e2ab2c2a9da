// Package blobstore provides storage abstraction for reading dataset files.
//
// Store is the interface for opening immutable data blobs. Implementations
// must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap support
//   - s3.Store: Amazon S3 with range reads and whole-object download
//   - minio.Store: MinIO and other S3-compatible object stores
package blobstore
