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
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// expenseClaimService provides CRUD and lifecycle operations for expense claims.
type expenseClaimService struct {
	docLifecycle
	claimRepo    portsrepo.ExpenseClaimRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

// NewExpenseClaimService creates a new expense-claim service.
func NewExpenseClaimService(
	claimRepo portsrepo.ExpenseClaimRepositoryFacade,
	employeeRepo portsrepo.EmployeeReader,
	documentRepo portsrepo.DocumentRepositoryFacade,
	machine portssvc.StatusMachineSvc,
	approval portssvc.ApprovalSvc,
	audit portssvc.AuditSvc,
) portssvc.ExpenseClaimSvcFacade {
	return &expenseClaimService{
		docLifecycle: docLifecycle{
			machine:      machine,
			approval:     approval,
			audit:        audit,
			documentRepo: documentRepo,
		},
		claimRepo:    claimRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.ExpenseClaimSvcFacade = (*expenseClaimService)(nil)

// claimItemsFromRequest converts item requests to domain items and sums them.
func claimItemsFromRequest(items []dto.ExpenseItemRequest) ([]domain.ExpenseItem, decimal.Decimal, error) {
	domainItems := make([]domain.ExpenseItem, len(items))
	total := decimal.Zero
	for i, item := range items {
		if item.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, decimal.Zero, fmt.Errorf("%w: item amount must be positive for category %s", apperrors.ErrValidation, item.Category)
		}
		domainItems[i] = domain.ExpenseItem{
			Category:    item.Category,
			Description: item.Description,
			Amount:      item.Amount,
			IncurredAt:  item.IncurredAt,
		}
		total = total.Add(item.Amount)
	}
	return domainItems, total, nil
}

// CreateExpenseClaim persists a new claim in DRAFT status. The claimant is
// the creator's employee record; users without one cannot file claims.
func (s *expenseClaimService) CreateExpenseClaim(ctx context.Context, req dto.CreateExpenseClaimRequest, creator *domain.User) (*domain.ExpenseClaim, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByUserID(ctx, creator.ID)
	if err != nil {
		return nil, err
	}

	items, total, err := claimItemsFromRequest(req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	claim := domain.ExpenseClaim{
		DocumentHeader: domain.DocumentHeader{
			DocType:     domain.DocTypeExpenseClaim,
			Status:      domain.StatusDraft,
			OwnerUserID: creator.ID,
			Version:     0,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		EmployeeID: employee.ID,
		ClaimDate:  req.ClaimDate,
		Currency:   req.Currency,
		Total:      total,
		Items:      items,
	}

	created, err := s.claimRepo.SaveExpenseClaim(ctx, claim)
	if err != nil {
		logger.Error("Failed to save expense claim", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.audit.RecordAction(ctx, created.ID, creator.ID, domain.ActionCreated, "expense claim created"); err != nil {
		return nil, err
	}

	logger.Info("Expense claim created", slog.Int64("document_id", created.ID), slog.Int64("employee_id", employee.ID))
	return created, nil
}

// GetExpenseClaimByID retrieves a specific expense claim.
func (s *expenseClaimService) GetExpenseClaimByID(ctx context.Context, documentID int64) (*domain.ExpenseClaim, error) {
	return s.claimRepo.FindExpenseClaimByID(ctx, documentID)
}

// ListExpenseClaims retrieves a paginated list of expense claims.
func (s *expenseClaimService) ListExpenseClaims(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListExpenseClaimsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	claims, nextToken, err := s.claimRepo.ListExpenseClaims(ctx, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListExpenseClaimsResponse(claims, nextToken)
	return &resp, nil
}

// UpdateExpenseClaim replaces the fields and items of a DRAFT claim.
func (s *expenseClaimService) UpdateExpenseClaim(ctx context.Context, documentID int64, req dto.UpdateExpenseClaimRequest, actor *domain.User) (*domain.ExpenseClaim, error) {
	claim, err := s.claimRepo.FindExpenseClaimByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(&claim.DocumentHeader, actor, "update"); err != nil {
		return nil, err
	}
	if claim.Status != domain.StatusDraft {
		return nil, apperrors.NewInvalidTransitionReason("only DRAFT claims can be edited, current status: " + string(claim.Status))
	}

	if req.ClaimDate != nil {
		claim.ClaimDate = *req.ClaimDate
	}
	if req.Currency != nil {
		claim.Currency = *req.Currency
	}
	if req.Items != nil {
		items, total, err := claimItemsFromRequest(req.Items)
		if err != nil {
			return nil, err
		}
		claim.Items = items
		claim.Total = total
	}

	claim.UpdatedAt = time.Now().UTC()
	if err := s.claimRepo.UpdateExpenseClaim(ctx, *claim); err != nil {
		return nil, err
	}
	return claim, nil
}

// SubmitExpenseClaim moves a DRAFT claim to PENDING.
func (s *expenseClaimService) SubmitExpenseClaim(ctx context.Context, documentID int64, actor *domain.User) (*domain.ExpenseClaim, error) {
	claim, err := s.claimRepo.FindExpenseClaimByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(&claim.DocumentHeader, actor, "submit"); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &claim.DocumentHeader, domain.StatusPending, domain.ActionSubmitted, "", actor); err != nil {
		return nil, err
	}
	return claim, nil
}

// ApproveExpenseClaim moves a PENDING claim to APPROVED.
func (s *expenseClaimService) ApproveExpenseClaim(ctx context.Context, documentID int64, actor *domain.User) (*domain.ExpenseClaim, error) {
	claim, err := s.claimRepo.FindExpenseClaimByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.approval.AuthorizeDecision(ctx, actor, documentID, domain.DocTypeExpenseClaim); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &claim.DocumentHeader, domain.StatusApproved, domain.ActionApproved, "", actor); err != nil {
		return nil, err
	}
	return claim, nil
}

// RejectExpenseClaim moves a PENDING claim to REJECTED with a reason.
func (s *expenseClaimService) RejectExpenseClaim(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.ExpenseClaim, error) {
	claim, err := s.claimRepo.FindExpenseClaimByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.approval.AuthorizeDecision(ctx, actor, documentID, domain.DocTypeExpenseClaim); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &claim.DocumentHeader, domain.StatusRejected, domain.ActionRejected, reason, actor); err != nil {
		return nil, err
	}
	return claim, nil
}

// CancelExpenseClaim cancels a DRAFT or PENDING claim with a reason.
func (s *expenseClaimService) CancelExpenseClaim(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.ExpenseClaim, error) {
	claim, err := s.claimRepo.FindExpenseClaimByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(&claim.DocumentHeader, actor, "cancel"); err != nil {
		return nil, err
	}
	if err := s.machine.ValidateCancel(claim.Status); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &claim.DocumentHeader, domain.StatusCancelled, domain.ActionCancelled, reason, actor); err != nil {
		return nil, err
	}
	return claim, nil
}
