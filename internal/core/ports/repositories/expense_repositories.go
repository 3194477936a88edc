package repositories

import (
	"context"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// ExpenseClaimReader defines read operations for expense claims
type ExpenseClaimReader interface {
	// FindExpenseClaimByID retrieves an expense claim (with its items) by document ID.
	FindExpenseClaimByID(ctx context.Context, documentID int64) (*domain.ExpenseClaim, error)

	// ListExpenseClaims retrieves a paginated list of expense claims using token-based pagination.
	ListExpenseClaims(ctx context.Context, limit int, nextToken *string) ([]domain.ExpenseClaim, *string, error)
}

// ExpenseClaimWriter defines write operations for expense claims
type ExpenseClaimWriter interface {
	// SaveExpenseClaim persists a new claim, its items and its document header in one transaction.
	SaveExpenseClaim(ctx context.Context, claim domain.ExpenseClaim) (*domain.ExpenseClaim, error)

	// UpdateExpenseClaim replaces the editable fields and items of a DRAFT claim.
	UpdateExpenseClaim(ctx context.Context, claim domain.ExpenseClaim) error
}

// ExpenseClaimRepositoryFacade combines all expense-claim repository interfaces
type ExpenseClaimRepositoryFacade interface {
	ExpenseClaimReader
	ExpenseClaimWriter
}

// ReimbursementReader defines read operations for reimbursements
type ReimbursementReader interface {
	// FindReimbursementByID retrieves a reimbursement by document ID.
	FindReimbursementByID(ctx context.Context, documentID int64) (*domain.Reimbursement, error)

	// FindReimbursementByClaimID retrieves the reimbursement linked to an expense claim, if any.
	FindReimbursementByClaimID(ctx context.Context, expenseClaimID int64) (*domain.Reimbursement, error)

	// ListReimbursements retrieves a paginated list of reimbursements using token-based pagination.
	ListReimbursements(ctx context.Context, limit int, nextToken *string) ([]domain.Reimbursement, *string, error)
}

// ReimbursementWriter defines write operations for reimbursements
type ReimbursementWriter interface {
	// SaveReimbursement persists a new reimbursement and its document header in one transaction.
	SaveReimbursement(ctx context.Context, reimbursement domain.Reimbursement) (*domain.Reimbursement, error)
}

// ReimbursementRepositoryFacade combines all reimbursement repository interfaces
type ReimbursementRepositoryFacade interface {
	ReimbursementReader
	ReimbursementWriter
}
