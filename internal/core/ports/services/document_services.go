package services

import (
	"context"
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// StatusMachineSvc owns the document status transition rules. It is pure
// policy: it never touches storage.
type StatusMachineSvc interface {
	// CanTransition reports whether a document may move from its current
	// status to the target status.
	CanTransition(from, to domain.DocumentStatus) bool

	// Validate returns an InvalidTransitionError when the move is not allowed,
	// nil otherwise. A same-status move validates successfully.
	Validate(from, to domain.DocumentStatus) error

	// ValidateCancel enforces the stricter cancellation guard: only DRAFT and
	// PENDING documents may be cancelled.
	ValidateCancel(from domain.DocumentStatus) error

	// AllowedTransitions returns the statuses reachable from the given status.
	// Terminal statuses return an empty slice.
	AllowedTransitions(from domain.DocumentStatus) []domain.DocumentStatus

	// IsTerminal reports whether no transitions leave the given status.
	IsTerminal(status domain.DocumentStatus) bool
}

// ApprovalSvc decides whether an actor may approve or reject a document.
type ApprovalSvc interface {
	// AuthorizeDecision returns an UnauthorizedActionError when the actor lacks
	// approval authority for the document, nil when the decision may proceed.
	AuthorizeDecision(ctx context.Context, actor *domain.User, documentID int64, docType domain.DocumentType) error
}

// AuditSvc records and reads the per-document audit trail.
type AuditSvc interface {
	// RecordTransition appends a status-change entry for a document. The write
	// commits independently of any surrounding transaction.
	RecordTransition(ctx context.Context, documentID int64, userID int64, action string, from, to domain.DocumentStatus, note string) error

	// RecordAction appends an entry with no status change, for actions like a
	// rejected duplicate submission.
	RecordAction(ctx context.Context, documentID int64, userID int64, action string, note string) error

	// GetTrail retrieves a document's audit trail in chronological order.
	GetTrail(ctx context.Context, documentID int64) ([]domain.AuditLog, error)

	// GetTrailPage retrieves a page of a document's audit trail, newest first.
	GetTrailPage(ctx context.Context, documentID int64, limit, offset int) ([]domain.AuditLog, error)

	// GetByUser retrieves a page of entries written by a user, newest first.
	GetByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.AuditLog, error)

	// GetByAction retrieves a page of entries with a given action label, newest first.
	GetByAction(ctx context.Context, action string, limit, offset int) ([]domain.AuditLog, error)

	// GetByDateRange retrieves a page of entries created within [from, to], newest first.
	GetByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.AuditLog, error)

	// GetByDocumentAndAction retrieves a document's entries with a given action label.
	GetByDocumentAndAction(ctx context.Context, documentID int64, action string) ([]domain.AuditLog, error)

	// CountByDocument counts a document's audit entries.
	CountByDocument(ctx context.Context, documentID int64) (int64, error)
}
