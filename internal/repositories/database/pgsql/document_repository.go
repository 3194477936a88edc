package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	"github.com/docflowhq/docflow_backend/internal/models"
	"github.com/docflowhq/docflow_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for document header data.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// FindDocumentByID retrieves a document header by its ID.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID int64) (*domain.DocumentHeader, error) {
	query := `
		SELECT id, doc_type, status, owner_user_id, version, created_at, updated_at
		FROM documents
		WHERE id = $1;
	`
	var m models.Document
	err := r.Pool.QueryRow(ctx, query, documentID).Scan(
		&m.ID,
		&m.DocType,
		&m.Status,
		&m.OwnerUserID,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find document by ID "+strconv.FormatInt(documentID, 10), err)
	}

	header := mapping.ToDomainDocument(m)
	return &header, nil
}

// SaveStatus persists a status change with a compare-and-swap on the version
// column. The UPDATE matches on both id and version; zero affected rows means
// either the document vanished or the version is stale, which is reported as
// ErrVersionConflict after a NotFound check.
func (r *PgxDocumentRepository) SaveStatus(ctx context.Context, documentID int64, status domain.DocumentStatus, expectedVersion int, updatedAt time.Time) error {
	query := `
		UPDATE documents
		SET status = $1, version = version + 1, updated_at = $2
		WHERE id = $3 AND version = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, string(status), updatedAt, documentID, expectedVersion)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for document "+strconv.FormatInt(documentID, 10), err)
	}
	if tag.RowsAffected() == 0 {
		if _, findErr := r.FindDocumentByID(ctx, documentID); errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrVersionConflict
	}
	return nil
}
