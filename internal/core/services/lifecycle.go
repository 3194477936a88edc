package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/middleware"
)

// docLifecycle bundles the pieces every document service needs to run a
// status transition: the rule table, the approval policy, the audit trail and
// the version-checked header writer. Document services embed it.
type docLifecycle struct {
	machine      portssvc.StatusMachineSvc
	approval     portssvc.ApprovalSvc
	audit        portssvc.AuditSvc
	documentRepo portsrepo.DocumentRepositoryFacade
}

// applyTransition moves the header to the target status. The sequence is:
// idempotency check, rule validation, audit entry, version-checked write.
// On success the header is updated in place (status set, version bumped).
//
// A repeated request that finds the document already in the target status is
// not an error: it records a trail entry under the requested action with from
// and to both set to the current status, and leaves the header untouched.
//
// The trail entry goes in before the header write and commits on its own
// connection, so a write that then fails still leaves the attempt on record.
func (l *docLifecycle) applyTransition(ctx context.Context, header *domain.DocumentHeader, to domain.DocumentStatus, action string, note string, actor *domain.User) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if header.Status == to {
		repeatNote := fmt.Sprintf("idempotent repeat, document already %s", to)
		if note != "" {
			repeatNote = fmt.Sprintf("%s (%s)", repeatNote, note)
		}
		if err := l.audit.RecordTransition(ctx, header.ID, actor.ID, action, header.Status, header.Status, repeatNote); err != nil {
			return err
		}
		logger.Info("Duplicate transition request ignored",
			slog.Int64("document_id", header.ID),
			slog.String("status", string(to)))
		return nil
	}

	if err := l.machine.Validate(header.Status, to); err != nil {
		return err
	}

	if err := l.audit.RecordTransition(ctx, header.ID, actor.ID, action, header.Status, to, note); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := l.documentRepo.SaveStatus(ctx, header.ID, to, header.Version, now); err != nil {
		return err
	}

	logger.Info("Document status changed",
		slog.Int64("document_id", header.ID),
		slog.String("from", string(header.Status)),
		slog.String("to", string(to)),
		slog.Int64("user_id", actor.ID))

	header.Status = to
	header.Version++
	header.UpdatedAt = now
	return nil
}

// requireOwnerOrAdmin guards submit and cancel: only the document owner or
// an ADMIN may run them.
func (l *docLifecycle) requireOwnerOrAdmin(header *domain.DocumentHeader, actor *domain.User, verb string) error {
	if actor.HasRole(domain.RoleAdmin) || header.OwnerUserID == actor.ID {
		return nil
	}
	return apperrors.NewUnauthorizedActionError(
		fmt.Sprintf("only the document owner or ADMIN can %s this document", verb))
}

// requireFinanceOrAdmin guards payment recording.
func (l *docLifecycle) requireFinanceOrAdmin(actor *domain.User) error {
	if actor.HasRole(domain.RoleAdmin) || actor.HasRole(domain.RoleFinance) {
		return nil
	}
	return apperrors.NewUnauthorizedActionError("only FINANCE or ADMIN can record payments")
}
