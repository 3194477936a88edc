package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDocumentFileRepository struct {
	BaseRepository
}

// newPgxDocumentFileRepository creates a new repository for attachment metadata.
func newPgxDocumentFileRepository(pool *pgxpool.Pool) portsrepo.DocumentFileRepositoryFacade {
	return &PgxDocumentFileRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DocumentFileRepositoryFacade = (*PgxDocumentFileRepository)(nil)

const documentFileSelect = `
	SELECT id, document_id, file_name, content_type, size_bytes, object_key, uploaded_by, created_at
	FROM document_files
`

func scanDocumentFile(row pgx.Row) (*domain.DocumentFile, error) {
	var f domain.DocumentFile
	err := row.Scan(
		&f.ID,
		&f.DocumentID,
		&f.FileName,
		&f.ContentType,
		&f.SizeBytes,
		&f.ObjectKey,
		&f.UploadedBy,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PgxDocumentFileRepository) FindDocumentFileByID(ctx context.Context, fileID int64) (*domain.DocumentFile, error) {
	f, err := scanDocumentFile(r.Pool.QueryRow(ctx, documentFileSelect+" WHERE id = $1;", fileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find document file by ID "+strconv.FormatInt(fileID, 10), err)
	}
	return f, nil
}

func (r *PgxDocumentFileRepository) FindDocumentFilesByDocumentID(ctx context.Context, documentID int64) ([]domain.DocumentFile, error) {
	rows, err := r.Pool.Query(ctx, documentFileSelect+" WHERE document_id = $1 ORDER BY created_at ASC, id ASC;", documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query document files for document "+strconv.FormatInt(documentID, 10), err)
	}
	defer rows.Close()

	files := []domain.DocumentFile{}
	for rows.Next() {
		f, err := scanDocumentFile(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan document file row", err)
		}
		files = append(files, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating document file rows", err)
	}
	return files, nil
}

func (r *PgxDocumentFileRepository) SaveDocumentFile(ctx context.Context, file domain.DocumentFile) (*domain.DocumentFile, error) {
	query := `
		INSERT INTO document_files (document_id, file_name, content_type, size_bytes, object_key, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		file.DocumentID,
		file.FileName,
		file.ContentType,
		file.SizeBytes,
		file.ObjectKey,
		file.UploadedBy,
		file.CreatedAt,
	).Scan(&file.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert document file", err)
	}
	return &file, nil
}

func (r *PgxDocumentFileRepository) DeleteDocumentFile(ctx context.Context, fileID int64) error {
	tag, err := r.Pool.Exec(ctx, "DELETE FROM document_files WHERE id = $1;", fileID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete document file "+strconv.FormatInt(fileID, 10), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
