package dto

import (
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReimbursementRequest defines the data needed to create a reimbursement
// for an approved expense claim.
type CreateReimbursementRequest struct {
	ExpenseClaimID int64           `json:"expenseClaimID" binding:"required"`
	RequestedDate  time.Time       `json:"requestedDate" binding:"required"`
	Currency       string          `json:"currency" binding:"required,len=3"`
	Total          decimal.Decimal `json:"total" binding:"required"`
}

// ReimbursementResponse defines the data returned for a reimbursement.
type ReimbursementResponse struct {
	ID             int64           `json:"id"`
	Status         string          `json:"status"`
	Version        int             `json:"version"`
	OwnerUserID    int64           `json:"ownerUserID"`
	EmployeeID     int64           `json:"employeeID"`
	ExpenseClaimID int64           `json:"expenseClaimID"`
	RequestedDate  time.Time       `json:"requestedDate"`
	Currency       string          `json:"currency"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ListReimbursementsResponse wraps a page of reimbursements.
type ListReimbursementsResponse struct {
	Reimbursements []ReimbursementResponse `json:"reimbursements"`
	NextToken      *string                 `json:"nextToken,omitempty"`
}

// ToReimbursementResponse converts a domain.Reimbursement to ReimbursementResponse DTO.
func ToReimbursementResponse(r *domain.Reimbursement) ReimbursementResponse {
	return ReimbursementResponse{
		ID:             r.ID,
		Status:         string(r.Status),
		Version:        r.Version,
		OwnerUserID:    r.OwnerUserID,
		EmployeeID:     r.EmployeeID,
		ExpenseClaimID: r.ExpenseClaimID,
		RequestedDate:  r.RequestedDate,
		Currency:       r.Currency,
		Total:          r.Total,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ToListReimbursementsResponse converts a page of domain reimbursements to the list DTO.
func ToListReimbursementsResponse(rs []domain.Reimbursement, nextToken *string) ListReimbursementsResponse {
	res := make([]ReimbursementResponse, len(rs))
	for i, r := range rs {
		res[i] = ToReimbursementResponse(&r)
	}
	return ListReimbursementsResponse{Reimbursements: res, NextToken: nextToken}
}
