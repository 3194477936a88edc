package repositories

import (
	"context"
	"io"
)

// ObjectStore abstracts the object storage backend holding attachment content.
type ObjectStore interface {
	// PutObject streams content to the store under the given key.
	PutObject(ctx context.Context, key string, content io.Reader, size int64, contentType string) error

	// GetObject returns a reader over the content stored under the given key.
	// The caller must close the reader.
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)

	// RemoveObject deletes the content stored under the given key.
	RemoveObject(ctx context.Context, key string) error
}
