package repositories

import (
	"context"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// DocumentFileReader defines read operations for attachment metadata
type DocumentFileReader interface {
	// FindDocumentFileByID retrieves attachment metadata by its ID.
	FindDocumentFileByID(ctx context.Context, fileID int64) (*domain.DocumentFile, error)

	// FindDocumentFilesByDocumentID retrieves all attachment metadata for a document.
	FindDocumentFilesByDocumentID(ctx context.Context, documentID int64) ([]domain.DocumentFile, error)
}

// DocumentFileWriter defines write operations for attachment metadata
type DocumentFileWriter interface {
	// SaveDocumentFile persists attachment metadata, returning the created record.
	SaveDocumentFile(ctx context.Context, file domain.DocumentFile) (*domain.DocumentFile, error)

	// DeleteDocumentFile removes attachment metadata by its ID.
	DeleteDocumentFile(ctx context.Context, fileID int64) error
}

// DocumentFileRepositoryFacade combines all attachment-metadata repository interfaces
type DocumentFileRepositoryFacade interface {
	DocumentFileReader
	DocumentFileWriter
}
