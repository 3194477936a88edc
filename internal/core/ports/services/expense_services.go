package services

import (
	"context"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/docflowhq/docflow_backend/internal/dto"
)

// ExpenseClaimReaderSvc defines read operations for expense claims
type ExpenseClaimReaderSvc interface {
	// GetExpenseClaimByID retrieves a specific expense claim by document ID.
	GetExpenseClaimByID(ctx context.Context, documentID int64) (*domain.ExpenseClaim, error)

	// ListExpenseClaims retrieves a paginated list of expense claims.
	ListExpenseClaims(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListExpenseClaimsResponse, error)
}

// ExpenseClaimWriterSvc defines write operations for expense claims
type ExpenseClaimWriterSvc interface {
	// CreateExpenseClaim persists a new claim in DRAFT status for the creator's employee record.
	CreateExpenseClaim(ctx context.Context, req dto.CreateExpenseClaimRequest, creator *domain.User) (*domain.ExpenseClaim, error)

	// UpdateExpenseClaim replaces the fields and items of a DRAFT claim.
	UpdateExpenseClaim(ctx context.Context, documentID int64, req dto.UpdateExpenseClaimRequest, actor *domain.User) (*domain.ExpenseClaim, error)
}

// ExpenseClaimLifecycleSvc defines status transition operations for expense claims
type ExpenseClaimLifecycleSvc interface {
	// SubmitExpenseClaim moves a DRAFT claim to PENDING.
	SubmitExpenseClaim(ctx context.Context, documentID int64, actor *domain.User) (*domain.ExpenseClaim, error)

	// ApproveExpenseClaim moves a PENDING claim to APPROVED after an authorization check.
	ApproveExpenseClaim(ctx context.Context, documentID int64, actor *domain.User) (*domain.ExpenseClaim, error)

	// RejectExpenseClaim moves a PENDING claim to REJECTED after an authorization check.
	RejectExpenseClaim(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.ExpenseClaim, error)

	// CancelExpenseClaim cancels a DRAFT or PENDING claim with a reason.
	CancelExpenseClaim(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.ExpenseClaim, error)
}

// ExpenseClaimSvcFacade combines all expense-claim service interfaces
type ExpenseClaimSvcFacade interface {
	ExpenseClaimReaderSvc
	ExpenseClaimWriterSvc
	ExpenseClaimLifecycleSvc
}

// ReimbursementReaderSvc defines read operations for reimbursements
type ReimbursementReaderSvc interface {
	// GetReimbursementByID retrieves a specific reimbursement by document ID.
	GetReimbursementByID(ctx context.Context, documentID int64) (*domain.Reimbursement, error)

	// ListReimbursements retrieves a paginated list of reimbursements.
	ListReimbursements(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListReimbursementsResponse, error)
}

// ReimbursementWriterSvc defines write operations for reimbursements
type ReimbursementWriterSvc interface {
	// CreateReimbursement persists a new reimbursement against an APPROVED
	// expense claim. The claim must not already have a reimbursement and the
	// total must match the claim total within the configured tolerance.
	CreateReimbursement(ctx context.Context, req dto.CreateReimbursementRequest, creator *domain.User) (*domain.Reimbursement, error)
}

// ReimbursementLifecycleSvc defines status transition operations for reimbursements
type ReimbursementLifecycleSvc interface {
	// SubmitReimbursement moves a DRAFT reimbursement to PENDING.
	SubmitReimbursement(ctx context.Context, documentID int64, actor *domain.User) (*domain.Reimbursement, error)

	// ApproveReimbursement moves a PENDING reimbursement to APPROVED after an authorization check.
	ApproveReimbursement(ctx context.Context, documentID int64, actor *domain.User) (*domain.Reimbursement, error)

	// RejectReimbursement moves a PENDING reimbursement to REJECTED after an authorization check.
	RejectReimbursement(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.Reimbursement, error)

	// CancelReimbursement cancels a DRAFT or PENDING reimbursement with a reason.
	CancelReimbursement(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.Reimbursement, error)

	// PayReimbursement records an outbound payment and moves an APPROVED reimbursement to PAID.
	PayReimbursement(ctx context.Context, documentID int64, req dto.RecordPaymentRequest, actor *domain.User) (*domain.Reimbursement, error)
}

// ReimbursementSvcFacade combines all reimbursement service interfaces
type ReimbursementSvcFacade interface {
	ReimbursementReaderSvc
	ReimbursementWriterSvc
	ReimbursementLifecycleSvc
}
