package dto

import (
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceInRequest defines the data needed to register an incoming invoice.
type CreateInvoiceInRequest struct {
	VendorID        int64           `json:"vendorID" binding:"required"`
	PurchaseOrderID *int64          `json:"purchaseOrderID"` // Optional PO link
	InvoiceNo       string          `json:"invoiceNo" binding:"required"`
	InvoiceDate     time.Time       `json:"invoiceDate" binding:"required"`
	DueDate         time.Time       `json:"dueDate" binding:"required"`
	Currency        string          `json:"currency" binding:"required,len=3"`
	Subtotal        decimal.Decimal `json:"subtotal" binding:"required"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total" binding:"required"`
}

// UpdateInvoiceInRequest defines the data allowed for updating a DRAFT incoming invoice.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateInvoiceInRequest struct {
	PurchaseOrderID *int64           `json:"purchaseOrderID"`
	InvoiceNo       *string          `json:"invoiceNo"`
	InvoiceDate     *time.Time       `json:"invoiceDate"`
	DueDate         *time.Time       `json:"dueDate"`
	Currency        *string          `json:"currency" binding:"omitempty,len=3"`
	Subtotal        *decimal.Decimal `json:"subtotal"`
	Tax             *decimal.Decimal `json:"tax"`
	Total           *decimal.Decimal `json:"total"`
}

// InvoiceInResponse defines the data returned for an incoming invoice.
type InvoiceInResponse struct {
	ID              int64           `json:"id"`
	Status          string          `json:"status"`
	Version         int             `json:"version"`
	OwnerUserID     int64           `json:"ownerUserID"`
	VendorID        int64           `json:"vendorID"`
	PurchaseOrderID *int64          `json:"purchaseOrderID,omitempty"`
	InvoiceNo       string          `json:"invoiceNo"`
	InvoiceDate     time.Time       `json:"invoiceDate"`
	DueDate         time.Time       `json:"dueDate"`
	Currency        string          `json:"currency"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ListInvoicesInResponse wraps a page of incoming invoices.
type ListInvoicesInResponse struct {
	Invoices  []InvoiceInResponse `json:"invoices"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ToInvoiceInResponse converts a domain.InvoiceIn to InvoiceInResponse DTO.
func ToInvoiceInResponse(inv *domain.InvoiceIn) InvoiceInResponse {
	return InvoiceInResponse{
		ID:              inv.ID,
		Status:          string(inv.Status),
		Version:         inv.Version,
		OwnerUserID:     inv.OwnerUserID,
		VendorID:        inv.VendorID,
		PurchaseOrderID: inv.PurchaseOrderID,
		InvoiceNo:       inv.InvoiceNo,
		InvoiceDate:     inv.InvoiceDate,
		DueDate:         inv.DueDate,
		Currency:        inv.Currency,
		Subtotal:        inv.Subtotal,
		Tax:             inv.Tax,
		Total:           inv.Total,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

// ToListInvoicesInResponse converts a page of domain invoices to the list DTO.
func ToListInvoicesInResponse(invoices []domain.InvoiceIn, nextToken *string) ListInvoicesInResponse {
	res := make([]InvoiceInResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceInResponse(&inv)
	}
	return ListInvoicesInResponse{Invoices: res, NextToken: nextToken}
}
