package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading immutable dataset blobs.
// Implementations must be safe for concurrent use.
type Store interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Fetcher is an optional interface for Blobs that can materialize their
// entire contents. Local blobs return the mapped region zero-copy; remote
// blobs download the object once.
type Fetcher interface {
	// Fetch returns the full contents of the blob.
	// The slice is valid until the Blob is closed.
	Fetch(ctx context.Context) ([]byte, error)
}

// ReadAll returns the full contents of a blob, using the Fetcher fast path
// when the implementation provides one.
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	if f, ok := b.(Fetcher); ok {
		return f.Fetch(ctx)
	}
	return io.ReadAll(io.NewSectionReader(b, 0, b.Size()))
}
