package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// reimbursementService provides creation and lifecycle operations for
// reimbursements against approved expense claims.
type reimbursementService struct {
	docLifecycle
	reimbursementRepo portsrepo.ReimbursementRepositoryFacade
	claimRepo         portsrepo.ExpenseClaimReader
	paymentRepo       portsrepo.PaymentRepositoryFacade

	// tolerance is the maximum absolute difference allowed between the
	// reimbursed total and the claim total.
	tolerance decimal.Decimal
}

// NewReimbursementService creates a new reimbursement service.
func NewReimbursementService(
	reimbursementRepo portsrepo.ReimbursementRepositoryFacade,
	claimRepo portsrepo.ExpenseClaimReader,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	documentRepo portsrepo.DocumentRepositoryFacade,
	machine portssvc.StatusMachineSvc,
	approval portssvc.ApprovalSvc,
	audit portssvc.AuditSvc,
	tolerance decimal.Decimal,
) portssvc.ReimbursementSvcFacade {
	return &reimbursementService{
		docLifecycle: docLifecycle{
			machine:      machine,
			approval:     approval,
			audit:        audit,
			documentRepo: documentRepo,
		},
		reimbursementRepo: reimbursementRepo,
		claimRepo:         claimRepo,
		paymentRepo:       paymentRepo,
		tolerance:         tolerance,
	}
}

var _ portssvc.ReimbursementSvcFacade = (*reimbursementService)(nil)

// CreateReimbursement persists a new reimbursement in DRAFT status. The
// linked claim must be APPROVED, must not have a reimbursement already, and
// the requested total must match the claim total within the tolerance.
func (s *reimbursementService) CreateReimbursement(ctx context.Context, req dto.CreateReimbursementRequest, creator *domain.User) (*domain.Reimbursement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	claim, err := s.claimRepo.FindExpenseClaimByID(ctx, req.ExpenseClaimID)
	if err != nil {
		return nil, err
	}
	if claim.Status != domain.StatusApproved {
		return nil, apperrors.NewInvalidTransitionReason(
			fmt.Sprintf("expense claim %d must be APPROVED to be reimbursed, current status: %s", claim.ID, claim.Status))
	}

	existing, err := s.reimbursementRepo.FindReimbursementByClaimID(ctx, req.ExpenseClaimID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: expense claim %d already has reimbursement %d", apperrors.ErrDuplicate, claim.ID, existing.ID)
	}

	if req.Currency != claim.Currency {
		return nil, fmt.Errorf("%w: reimbursement currency %s does not match claim currency %s",
			apperrors.ErrValidation, req.Currency, claim.Currency)
	}
	if req.Total.Sub(claim.Total).Abs().GreaterThan(s.tolerance) {
		return nil, fmt.Errorf("%w: reimbursement total %s differs from claim total %s by more than %s",
			apperrors.ErrValidation, req.Total.String(), claim.Total.String(), s.tolerance.String())
	}

	now := time.Now().UTC()
	reimbursement := domain.Reimbursement{
		DocumentHeader: domain.DocumentHeader{
			DocType:     domain.DocTypeReimbursement,
			Status:      domain.StatusDraft,
			OwnerUserID: creator.ID,
			Version:     0,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		EmployeeID:     claim.EmployeeID,
		ExpenseClaimID: claim.ID,
		RequestedDate:  req.RequestedDate,
		Currency:       req.Currency,
		Total:          req.Total,
	}

	created, err := s.reimbursementRepo.SaveReimbursement(ctx, reimbursement)
	if err != nil {
		logger.Error("Failed to save reimbursement", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.audit.RecordAction(ctx, created.ID, creator.ID, domain.ActionCreated,
		fmt.Sprintf("reimbursement created for expense claim %d", claim.ID)); err != nil {
		return nil, err
	}

	logger.Info("Reimbursement created", slog.Int64("document_id", created.ID), slog.Int64("claim_id", claim.ID))
	return created, nil
}

// GetReimbursementByID retrieves a specific reimbursement.
func (s *reimbursementService) GetReimbursementByID(ctx context.Context, documentID int64) (*domain.Reimbursement, error) {
	return s.reimbursementRepo.FindReimbursementByID(ctx, documentID)
}

// ListReimbursements retrieves a paginated list of reimbursements.
func (s *reimbursementService) ListReimbursements(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListReimbursementsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	reimbursements, nextToken, err := s.reimbursementRepo.ListReimbursements(ctx, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListReimbursementsResponse(reimbursements, nextToken)
	return &resp, nil
}

// SubmitReimbursement moves a DRAFT reimbursement to PENDING.
func (s *reimbursementService) SubmitReimbursement(ctx context.Context, documentID int64, actor *domain.User) (*domain.Reimbursement, error) {
	reimbursement, err := s.reimbursementRepo.FindReimbursementByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(&reimbursement.DocumentHeader, actor, "submit"); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &reimbursement.DocumentHeader, domain.StatusPending, domain.ActionSubmitted, "", actor); err != nil {
		return nil, err
	}
	return reimbursement, nil
}

// ApproveReimbursement moves a PENDING reimbursement to APPROVED.
func (s *reimbursementService) ApproveReimbursement(ctx context.Context, documentID int64, actor *domain.User) (*domain.Reimbursement, error) {
	reimbursement, err := s.reimbursementRepo.FindReimbursementByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.approval.AuthorizeDecision(ctx, actor, documentID, domain.DocTypeReimbursement); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &reimbursement.DocumentHeader, domain.StatusApproved, domain.ActionApproved, "", actor); err != nil {
		return nil, err
	}
	return reimbursement, nil
}

// RejectReimbursement moves a PENDING reimbursement to REJECTED with a reason.
func (s *reimbursementService) RejectReimbursement(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.Reimbursement, error) {
	reimbursement, err := s.reimbursementRepo.FindReimbursementByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.approval.AuthorizeDecision(ctx, actor, documentID, domain.DocTypeReimbursement); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &reimbursement.DocumentHeader, domain.StatusRejected, domain.ActionRejected, reason, actor); err != nil {
		return nil, err
	}
	return reimbursement, nil
}

// CancelReimbursement cancels a DRAFT or PENDING reimbursement with a reason.
func (s *reimbursementService) CancelReimbursement(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.Reimbursement, error) {
	reimbursement, err := s.reimbursementRepo.FindReimbursementByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(&reimbursement.DocumentHeader, actor, "cancel"); err != nil {
		return nil, err
	}
	if err := s.machine.ValidateCancel(reimbursement.Status); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &reimbursement.DocumentHeader, domain.StatusCancelled, domain.ActionCancelled, reason, actor); err != nil {
		return nil, err
	}
	return reimbursement, nil
}

// PayReimbursement records an outbound payment and moves an APPROVED
// reimbursement to PAID.
func (s *reimbursementService) PayReimbursement(ctx context.Context, documentID int64, req dto.RecordPaymentRequest, actor *domain.User) (*domain.Reimbursement, error) {
	reimbursement, err := s.reimbursementRepo.FindReimbursementByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireFinanceOrAdmin(actor); err != nil {
		return nil, err
	}
	alreadyPaid := reimbursement.Status == domain.StatusPaid
	if err := s.applyTransition(ctx, &reimbursement.DocumentHeader, domain.StatusPaid, domain.ActionPaid, paymentNote(req), actor); err != nil {
		return nil, err
	}
	if !alreadyPaid {
		if _, err := s.paymentRepo.SavePayment(ctx, paymentFromRequest(req, reimbursement.ID, domain.DirectionOutbound, actor.ID)); err != nil {
			return nil, err
		}
	}
	return reimbursement, nil
}
