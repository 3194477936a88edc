package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/middleware"
)

// auditService records and reads the per-document audit trail. Writes go
// through a repository that commits on its own connection, so an entry
// survives a rollback of the caller's business transaction.
type auditService struct {
	auditRepo portsrepo.AuditLogRepositoryFacade
	now       func() time.Time
}

// NewAuditService creates the audit trail service.
func NewAuditService(auditRepo portsrepo.AuditLogRepositoryFacade) portssvc.AuditSvc {
	return &auditService{
		auditRepo: auditRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.AuditSvc = (*auditService)(nil)

// RecordTransition appends a status-change entry for a document.
func (s *auditService) RecordTransition(ctx context.Context, documentID int64, userID int64, action string, from, to domain.DocumentStatus, note string) error {
	entry := domain.AuditLog{
		DocumentID: documentID,
		UserID:     userID,
		Action:     action,
		FromStatus: &from,
		ToStatus:   &to,
		Note:       note,
		CreatedAt:  s.now(),
	}
	return s.save(ctx, entry)
}

// RecordAction appends an entry with no status change.
func (s *auditService) RecordAction(ctx context.Context, documentID int64, userID int64, action string, note string) error {
	entry := domain.AuditLog{
		DocumentID: documentID,
		UserID:     userID,
		Action:     action,
		Note:       note,
		CreatedAt:  s.now(),
	}
	return s.save(ctx, entry)
}

func (s *auditService) save(ctx context.Context, entry domain.AuditLog) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		logger.Error("Failed to persist audit entry",
			slog.Int64("document_id", entry.DocumentID),
			slog.String("action", entry.Action),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}

// GetTrail retrieves a document's audit trail in chronological order.
func (s *auditService) GetTrail(ctx context.Context, documentID int64) ([]domain.AuditLog, error) {
	return s.auditRepo.FindAuditLogsByDocumentID(ctx, documentID)
}

// GetTrailPage retrieves a page of a document's audit trail, newest first.
func (s *auditService) GetTrailPage(ctx context.Context, documentID int64, limit, offset int) ([]domain.AuditLog, error) {
	limit, offset = normalizePage(limit, offset)
	return s.auditRepo.FindAuditLogsByDocumentIDPaged(ctx, documentID, limit, offset)
}

// GetByUser retrieves a page of entries written by a user, newest first.
func (s *auditService) GetByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.AuditLog, error) {
	limit, offset = normalizePage(limit, offset)
	return s.auditRepo.FindAuditLogsByUserID(ctx, userID, limit, offset)
}

// GetByAction retrieves a page of entries with a given action label, newest first.
func (s *auditService) GetByAction(ctx context.Context, action string, limit, offset int) ([]domain.AuditLog, error) {
	limit, offset = normalizePage(limit, offset)
	return s.auditRepo.FindAuditLogsByAction(ctx, action, limit, offset)
}

// GetByDateRange retrieves a page of entries created within [from, to], newest first.
func (s *auditService) GetByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.AuditLog, error) {
	limit, offset = normalizePage(limit, offset)
	return s.auditRepo.FindAuditLogsByDateRange(ctx, from, to, limit, offset)
}

// GetByDocumentAndAction retrieves a document's entries with a given action label.
func (s *auditService) GetByDocumentAndAction(ctx context.Context, documentID int64, action string) ([]domain.AuditLog, error) {
	return s.auditRepo.FindAuditLogsByDocumentIDAndAction(ctx, documentID, action)
}

// CountByDocument counts a document's audit entries.
func (s *auditService) CountByDocument(ctx context.Context, documentID int64) (int64, error) {
	return s.auditRepo.CountAuditLogsByDocumentID(ctx, documentID)
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
