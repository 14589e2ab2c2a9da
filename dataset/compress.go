package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the frame compression applied to a dataset file.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// WriteOptions contains configuration options for Write.
type WriteOptions struct {
	// Compression selects the frame compression for the output stream.
	Compression Compression
}

// DefaultWriteOptions contains the default configuration options for Write.
var DefaultWriteOptions = WriteOptions{
	Compression: CompressionNone,
}

// WithCompression configures the output compression.
func WithCompression(c Compression) func(o *WriteOptions) {
	return func(o *WriteOptions) {
		o.Compression = c
	}
}

// Frame magics of the supported compression formats.
var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Decode decodes a dataset from r, transparently decompressing zstd and lz4
// frames. The format is sniffed from the frame magic, so no file naming
// convention is required.
func Decode(r io.Reader) (*Dataset, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(4)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
	}

	switch {
	case bytes.Equal(magic, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return Read(zr)
	case bytes.Equal(magic, lz4Magic):
		return Read(lz4.NewReader(br))
	default:
		return Read(br)
	}
}

// newCompressor wraps w according to the requested compression. The returned
// finish func must be called after the last write to flush the frame.
func newCompressor(w io.Writer, c Compression) (io.Writer, func() error, error) {
	switch c {
	case CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, err
		}
		return zw, zw.Close, nil
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		return lw, lw.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported compression: %v", c)
	}
}
