package dataset

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/alexpejovic/MachineLearningOptimization/blobstore"
)

// Load reads a dataset blob from the given store.
func Load(ctx context.Context, store blobstore.Store, name string) (*Dataset, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open dataset %q: %w", name, err)
	}
	defer blob.Close()

	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("read dataset %q: %w", name, err)
	}

	d, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode dataset %q: %w", name, err)
	}
	return d, nil
}

// LoadFile reads a dataset from a local file.
func LoadFile(path string) (*Dataset, error) {
	return Load(context.Background(), blobstore.NewLocalStore(""), path)
}

// WriteFile writes the dataset to a local file.
func WriteFile(path string, d *Dataset, optFns ...func(o *WriteOptions)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, d, optFns...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
