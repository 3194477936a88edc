package dto

import (
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseItemRequest defines one line of an expense claim on input.
type ExpenseItemRequest struct {
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	IncurredAt  time.Time       `json:"incurredAt" binding:"required"`
}

// CreateExpenseClaimRequest defines the data needed to create an expense claim.
// The claimant is derived from the authenticated user's employee record.
type CreateExpenseClaimRequest struct {
	ClaimDate time.Time            `json:"claimDate" binding:"required"`
	Currency  string               `json:"currency" binding:"required,len=3"`
	Items     []ExpenseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateExpenseClaimRequest defines the data allowed for updating a DRAFT claim.
// A non-nil Items slice replaces all existing items.
type UpdateExpenseClaimRequest struct {
	ClaimDate *time.Time           `json:"claimDate"`
	Currency  *string              `json:"currency" binding:"omitempty,len=3"`
	Items     []ExpenseItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// ExpenseItemResponse defines one line of an expense claim on output.
type ExpenseItemResponse struct {
	ID          int64           `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	IncurredAt  time.Time       `json:"incurredAt"`
}

// ExpenseClaimResponse defines the data returned for an expense claim.
type ExpenseClaimResponse struct {
	ID          int64                 `json:"id"`
	Status      string                `json:"status"`
	Version     int                   `json:"version"`
	OwnerUserID int64                 `json:"ownerUserID"`
	EmployeeID  int64                 `json:"employeeID"`
	ClaimDate   time.Time             `json:"claimDate"`
	Currency    string                `json:"currency"`
	Total       decimal.Decimal       `json:"total"`
	Items       []ExpenseItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// ListExpenseClaimsResponse wraps a page of expense claims.
type ListExpenseClaimsResponse struct {
	Claims    []ExpenseClaimResponse `json:"claims"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToExpenseClaimResponse converts a domain.ExpenseClaim to ExpenseClaimResponse DTO.
func ToExpenseClaimResponse(claim *domain.ExpenseClaim) ExpenseClaimResponse {
	items := make([]ExpenseItemResponse, len(claim.Items))
	for i, item := range claim.Items {
		items[i] = ExpenseItemResponse{
			ID:          item.ID,
			Category:    item.Category,
			Description: item.Description,
			Amount:      item.Amount,
			IncurredAt:  item.IncurredAt,
		}
	}
	return ExpenseClaimResponse{
		ID:          claim.ID,
		Status:      string(claim.Status),
		Version:     claim.Version,
		OwnerUserID: claim.OwnerUserID,
		EmployeeID:  claim.EmployeeID,
		ClaimDate:   claim.ClaimDate,
		Currency:    claim.Currency,
		Total:       claim.Total,
		Items:       items,
		CreatedAt:   claim.CreatedAt,
		UpdatedAt:   claim.UpdatedAt,
	}
}

// ToListExpenseClaimsResponse converts a page of domain claims to the list DTO.
func ToListExpenseClaimsResponse(claims []domain.ExpenseClaim, nextToken *string) ListExpenseClaimsResponse {
	res := make([]ExpenseClaimResponse, len(claims))
	for i, claim := range claims {
		res[i] = ToExpenseClaimResponse(&claim)
	}
	return ListExpenseClaimsResponse{Claims: res, NextToken: nextToken}
}
