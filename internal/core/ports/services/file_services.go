package services

import (
	"context"
	"io"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// DocumentFileSvcFacade manages document attachments: metadata in the
// database, content in object storage.
type DocumentFileSvcFacade interface {
	// UploadDocumentFile streams an attachment to object storage and records its metadata.
	UploadDocumentFile(ctx context.Context, documentID int64, fileName, contentType string, size int64, content io.Reader, uploader *domain.User) (*domain.DocumentFile, error)

	// GetDocumentFile retrieves attachment metadata and a reader over its content.
	// The caller must close the reader.
	GetDocumentFile(ctx context.Context, fileID int64) (*domain.DocumentFile, io.ReadCloser, error)

	// ListDocumentFiles retrieves all attachment metadata for a document.
	ListDocumentFiles(ctx context.Context, documentID int64) ([]domain.DocumentFile, error)

	// DeleteDocumentFile removes an attachment's metadata and stored content.
	DeleteDocumentFile(ctx context.Context, fileID int64, actor *domain.User) error
}
