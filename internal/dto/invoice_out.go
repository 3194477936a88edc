package dto

import (
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceOutRequest defines the data needed to issue an outgoing invoice.
type CreateInvoiceOutRequest struct {
	ClientID    int64           `json:"clientID" binding:"required"`
	InvoiceNo   string          `json:"invoiceNo" binding:"required"`
	InvoiceDate time.Time       `json:"invoiceDate" binding:"required"`
	DueDate     time.Time       `json:"dueDate" binding:"required"`
	Currency    string          `json:"currency" binding:"required,len=3"`
	Subtotal    decimal.Decimal `json:"subtotal" binding:"required"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total" binding:"required"`
}

// UpdateInvoiceOutRequest defines the data allowed for updating a DRAFT outgoing invoice.
type UpdateInvoiceOutRequest struct {
	InvoiceNo   *string          `json:"invoiceNo"`
	InvoiceDate *time.Time       `json:"invoiceDate"`
	DueDate     *time.Time       `json:"dueDate"`
	Currency    *string          `json:"currency" binding:"omitempty,len=3"`
	Subtotal    *decimal.Decimal `json:"subtotal"`
	Tax         *decimal.Decimal `json:"tax"`
	Total       *decimal.Decimal `json:"total"`
}

// InvoiceOutResponse defines the data returned for an outgoing invoice.
type InvoiceOutResponse struct {
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	Version     int             `json:"version"`
	OwnerUserID int64           `json:"ownerUserID"`
	ClientID    int64           `json:"clientID"`
	InvoiceNo   string          `json:"invoiceNo"`
	InvoiceDate time.Time       `json:"invoiceDate"`
	DueDate     time.Time       `json:"dueDate"`
	Currency    string          `json:"currency"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListInvoicesOutResponse wraps a page of outgoing invoices.
type ListInvoicesOutResponse struct {
	Invoices  []InvoiceOutResponse `json:"invoices"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// ToInvoiceOutResponse converts a domain.InvoiceOut to InvoiceOutResponse DTO.
func ToInvoiceOutResponse(inv *domain.InvoiceOut) InvoiceOutResponse {
	return InvoiceOutResponse{
		ID:          inv.ID,
		Status:      string(inv.Status),
		Version:     inv.Version,
		OwnerUserID: inv.OwnerUserID,
		ClientID:    inv.ClientID,
		InvoiceNo:   inv.InvoiceNo,
		InvoiceDate: inv.InvoiceDate,
		DueDate:     inv.DueDate,
		Currency:    inv.Currency,
		Subtotal:    inv.Subtotal,
		Tax:         inv.Tax,
		Total:       inv.Total,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

// ToListInvoicesOutResponse converts a page of domain invoices to the list DTO.
func ToListInvoicesOutResponse(invoices []domain.InvoiceOut, nextToken *string) ListInvoicesOutResponse {
	res := make([]InvoiceOutResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceOutResponse(&inv)
	}
	return ListInvoicesOutResponse{Invoices: res, NextToken: nextToken}
}
