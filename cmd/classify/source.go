package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/alexpejovic/MachineLearningOptimization/blobstore"
	minioblob "github.com/alexpejovic/MachineLearningOptimization/blobstore/minio"
	s3blob "github.com/alexpejovic/MachineLearningOptimization/blobstore/s3"
	"github.com/alexpejovic/MachineLearningOptimization/dataset"
)

// loadDataset resolves arg to a blob store by URI scheme and loads the
// dataset from it. Plain paths read from the local filesystem.
func loadDataset(ctx context.Context, arg string) (*dataset.Dataset, error) {
	switch {
	case strings.HasPrefix(arg, "s3://"):
		store, name, err := s3Source(ctx, arg)
		if err != nil {
			return nil, err
		}
		return dataset.Load(ctx, store, name)
	case strings.HasPrefix(arg, "minio://"):
		store, name, err := minioSource(arg)
		if err != nil {
			return nil, err
		}
		return dataset.Load(ctx, store, name)
	default:
		return dataset.Load(ctx, blobstore.NewLocalStore(""), arg)
	}
}

// s3Source builds a store for s3://bucket/key using the ambient AWS
// configuration (environment, shared config, instance role).
func s3Source(ctx context.Context, arg string) (blobstore.Store, string, error) {
	u, err := url.Parse(arg)
	if err != nil {
		return nil, "", fmt.Errorf("bad s3 URI %q: %w", arg, err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, "", fmt.Errorf("bad s3 URI %q: want s3://bucket/key", arg)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load AWS config: %w", err)
	}
	return s3blob.NewStore(awss3.NewFromConfig(cfg), bucket, ""), key, nil
}

// minioSource builds a store for minio://endpoint/bucket/key. Credentials
// come from MINIO_ACCESS_KEY / MINIO_SECRET_KEY; MINIO_USE_SSL=false
// disables TLS.
func minioSource(arg string) (blobstore.Store, string, error) {
	u, err := url.Parse(arg)
	if err != nil {
		return nil, "", fmt.Errorf("bad minio URI %q: %w", arg, err)
	}
	endpoint := u.Host
	bucket, key, ok := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	if !ok || endpoint == "" || bucket == "" || key == "" {
		return nil, "", fmt.Errorf("bad minio URI %q: want minio://endpoint/bucket/key", arg)
	}

	client, err := miniogo.New(endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") != "false",
	})
	if err != nil {
		return nil, "", fmt.Errorf("minio client: %w", err)
	}
	return minioblob.NewStore(client, bucket, ""), key, nil
}
