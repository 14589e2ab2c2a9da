package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// MagicNumber identifies dataset files (ASCII: "KNN1")
	MagicNumber = 0x4b4e4e31
	// Version is the current file format version (v1.0.0)
	Version = 0x00010000
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
	ErrTruncated      = errors.New("truncated dataset file")
)

// FileHeader is the 16-byte header at the start of every dataset file.
// All fields are little-endian.
type FileHeader struct {
	Magic     uint32 // 0x4b4e4e31 ("KNN1")
	Version   uint32 // File format version
	ItemCount uint32 // Number of image records
	Dimension uint32 // Features per image
}

// Read decodes a dataset from r. r must carry an uncompressed stream; use
// Load or Decode for transparent decompression.
func Read(r io.Reader) (*Dataset, error) {
	br := bufio.NewReader(r)
	byteOrder := binary.LittleEndian

	var header FileHeader
	if err := binary.Read(br, byteOrder, &header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	if header.Dimension == 0 {
		return nil, &ErrInvalidDimension{Dimension: 0}
	}

	dim := int(header.Dimension)
	count := int(header.ItemCount)

	// The header is untrusted; cap the up-front allocation so a bogus item
	// count fails on the first short read instead of exhausting memory.
	items := make([]Image, 0, min(count, 4096))
	// Each record is one label followed by the raw feature samples.
	record := make([]byte, 4+dim*4)
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(br, record); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrTruncated, i, err)
		}
		features := make([]float32, dim)
		for j := 0; j < dim; j++ {
			bits := byteOrder.Uint32(record[4+j*4:])
			features[j] = math.Float32frombits(bits)
		}
		items = append(items, Image{
			Label:    int32(byteOrder.Uint32(record)),
			Features: features,
		})
	}

	return &Dataset{items: items, dim: dim}, nil
}

// Write encodes the dataset to w in the binary file format.
func Write(w io.Writer, d *Dataset, optFns ...func(o *WriteOptions)) error {
	opts := DefaultWriteOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	cw, finish, err := newCompressor(w, opts.Compression)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(cw)
	byteOrder := binary.LittleEndian

	header := FileHeader{
		Magic:     MagicNumber,
		Version:   Version,
		ItemCount: uint32(d.Len()),
		Dimension: uint32(d.Dimension()),
	}
	if err := binary.Write(bw, byteOrder, &header); err != nil {
		return err
	}

	var scratch [4]byte
	for _, img := range d.items {
		byteOrder.PutUint32(scratch[:], uint32(img.Label))
		if _, err := bw.Write(scratch[:]); err != nil {
			return err
		}
		for _, f := range img.Features {
			byteOrder.PutUint32(scratch[:], math.Float32bits(f))
			if _, err := bw.Write(scratch[:]); err != nil {
				return err
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	return finish()
}
