package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceIn is a vendor invoice received by the company.
type InvoiceIn struct {
	DocumentHeader
	VendorID        int64           `json:"vendorID"`
	PurchaseOrderID *int64          `json:"purchaseOrderID,omitempty"`
	InvoiceNo       string          `json:"invoiceNo"`
	InvoiceDate     time.Time       `json:"invoiceDate"`
	DueDate         time.Time       `json:"dueDate"`
	Currency        string          `json:"currency"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
}

// InvoiceOut is an invoice the company issues to a client.
type InvoiceOut struct {
	DocumentHeader
	ClientID    int64           `json:"clientID"`
	InvoiceNo   string          `json:"invoiceNo"`
	InvoiceDate time.Time       `json:"invoiceDate"`
	DueDate     time.Time       `json:"dueDate"`
	Currency    string          `json:"currency"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}
