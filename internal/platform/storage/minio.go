package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
)

// MinioStore holds attachment content in a MinIO (or S3-compatible) bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to the object storage endpoint and ensures the
// bucket exists.
func NewMinioStore(ctx context.Context, endpoint, accessKey, secretKey string, useSSL bool, bucket string) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinioStore{client: client, bucket: bucket}, nil
}

var _ portsrepo.ObjectStore = (*MinioStore)(nil)

// PutObject streams content to the bucket under the given key.
func (m *MinioStore) PutObject(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// GetObject returns a reader over the content stored under the given key.
func (m *MinioStore) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// RemoveObject deletes the content stored under the given key.
func (m *MinioStore) RemoveObject(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}
