package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	"github.com/docflowhq/docflow_backend/internal/models"
	"github.com/docflowhq/docflow_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

// newPgxAuditLogRepository creates a new repository for audit log data.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

// SaveAuditLog persists an audit entry. The write goes through its own pool
// connection so the entry survives independent of any caller transaction.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	m := mapping.ToModelAuditLog(log)
	query := `
		INSERT INTO audit_logs (document_id, user_id, action, from_status, to_status, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.DocumentID,
		m.UserID,
		m.Action,
		m.FromStatus,
		m.ToStatus,
		m.Note,
		m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log", err)
	}
	return nil
}

const auditLogSelect = `
	SELECT id, document_id, user_id, action, from_status, to_status, note, created_at
	FROM audit_logs
`

// queryAuditLogs runs a SELECT over audit_logs and maps the rows.
func (r *PgxAuditLogRepository) queryAuditLogs(ctx context.Context, query string, args ...interface{}) ([]domain.AuditLog, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit logs", err)
	}
	defer rows.Close()

	logs := []models.AuditLog{}
	for rows.Next() {
		var m models.AuditLog
		err := rows.Scan(&m.ID, &m.DocumentID, &m.UserID, &m.Action, &m.FromStatus, &m.ToStatus, &m.Note, &m.CreatedAt)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit log row", err)
		}
		logs = append(logs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit log rows", err)
	}
	return mapping.ToDomainAuditLogSlice(logs), nil
}

// FindAuditLogsByDocumentID retrieves the full trail for a document in
// chronological order.
func (r *PgxAuditLogRepository) FindAuditLogsByDocumentID(ctx context.Context, documentID int64) ([]domain.AuditLog, error) {
	query := auditLogSelect + `
		WHERE document_id = $1
		ORDER BY created_at ASC, id ASC;
	`
	return r.queryAuditLogs(ctx, query, documentID)
}

// FindAuditLogsByDocumentIDPaged retrieves a page of a document's audit trail,
// newest first for display.
func (r *PgxAuditLogRepository) FindAuditLogsByDocumentIDPaged(ctx context.Context, documentID int64, limit, offset int) ([]domain.AuditLog, error) {
	query := auditLogSelect + `
		WHERE document_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3;
	`
	return r.queryAuditLogs(ctx, query, documentID, limit, offset)
}

// FindAuditLogsByUserID retrieves a page of entries written by one user,
// newest first.
func (r *PgxAuditLogRepository) FindAuditLogsByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.AuditLog, error) {
	query := auditLogSelect + `
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3;
	`
	return r.queryAuditLogs(ctx, query, userID, limit, offset)
}

// FindAuditLogsByAction retrieves a page of entries with a given action label,
// newest first.
func (r *PgxAuditLogRepository) FindAuditLogsByAction(ctx context.Context, action string, limit, offset int) ([]domain.AuditLog, error) {
	query := auditLogSelect + `
		WHERE action = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3;
	`
	return r.queryAuditLogs(ctx, query, action, limit, offset)
}

// FindAuditLogsByDateRange retrieves a page of entries created within
// [from, to], newest first.
func (r *PgxAuditLogRepository) FindAuditLogsByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.AuditLog, error) {
	query := auditLogSelect + `
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4;
	`
	return r.queryAuditLogs(ctx, query, from, to, limit, offset)
}

// FindAuditLogsByDocumentIDAndAction retrieves a document's entries with a
// given action label, newest first.
func (r *PgxAuditLogRepository) FindAuditLogsByDocumentIDAndAction(ctx context.Context, documentID int64, action string) ([]domain.AuditLog, error) {
	query := auditLogSelect + `
		WHERE document_id = $1 AND action = $2
		ORDER BY created_at DESC, id DESC;
	`
	return r.queryAuditLogs(ctx, query, documentID, action)
}

// CountAuditLogsByDocumentID counts a document's audit entries.
func (r *PgxAuditLogRepository) CountAuditLogsByDocumentID(ctx context.Context, documentID int64) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM audit_logs WHERE document_id = $1;`, documentID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count audit logs for document "+strconv.FormatInt(documentID, 10), err)
	}
	return count, nil
}
