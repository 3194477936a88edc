package repositories

import (
	"context"
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// DocumentReader defines read operations for document headers
type DocumentReader interface {
	// FindDocumentByID retrieves a document header by its unique identifier.
	FindDocumentByID(ctx context.Context, documentID int64) (*domain.DocumentHeader, error)
}

// DocumentWriter defines write operations for document headers
type DocumentWriter interface {
	// SaveStatus persists a status change using compare-and-swap on the version
	// column. It returns apperrors.ErrVersionConflict when the expected version
	// no longer matches the stored row.
	SaveStatus(ctx context.Context, documentID int64, status domain.DocumentStatus, expectedVersion int, updatedAt time.Time) error
}

// DocumentRepositoryFacade combines all document-header repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
