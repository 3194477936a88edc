package repositories

import (
	"context"
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// AuditLogReader defines read operations for audit trail data
type AuditLogReader interface {
	// FindAuditLogsByDocumentID retrieves the full audit trail for a document,
	// ordered by creation time ascending (entry ID breaks ties).
	FindAuditLogsByDocumentID(ctx context.Context, documentID int64) ([]domain.AuditLog, error)

	// FindAuditLogsByDocumentIDPaged retrieves a page of a document's trail,
	// newest first.
	FindAuditLogsByDocumentIDPaged(ctx context.Context, documentID int64, limit, offset int) ([]domain.AuditLog, error)

	// FindAuditLogsByUserID retrieves a page of entries written by a user, newest first.
	FindAuditLogsByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.AuditLog, error)

	// FindAuditLogsByAction retrieves a page of entries with a given action label, newest first.
	FindAuditLogsByAction(ctx context.Context, action string, limit, offset int) ([]domain.AuditLog, error)

	// FindAuditLogsByDateRange retrieves a page of entries created within [from, to], newest first.
	FindAuditLogsByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.AuditLog, error)

	// FindAuditLogsByDocumentIDAndAction retrieves a document's entries with a given action label.
	FindAuditLogsByDocumentIDAndAction(ctx context.Context, documentID int64, action string) ([]domain.AuditLog, error)

	// CountAuditLogsByDocumentID counts a document's audit entries.
	CountAuditLogsByDocumentID(ctx context.Context, documentID int64) (int64, error)
}

// AuditLogWriter defines write operations for audit trail data
type AuditLogWriter interface {
	// SaveAuditLog persists an audit entry on its own connection so the write
	// commits even when the caller's surrounding transaction rolls back.
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error
}

// AuditLogRepositoryFacade combines all audit-trail repository interfaces
type AuditLogRepositoryFacade interface {
	AuditLogReader
	AuditLogWriter
}
