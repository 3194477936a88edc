package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceIn mirrors the invoices_in table joined with its document header.
type InvoiceIn struct {
	Document
	VendorID        int64           `json:"vendorID"`
	PurchaseOrderID *int64          `json:"purchaseOrderID"`
	InvoiceNo       string          `json:"invoiceNo"`
	InvoiceDate     time.Time       `json:"invoiceDate"`
	DueDate         time.Time       `json:"dueDate"`
	Currency        string          `json:"currency"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
}

// InvoiceOut mirrors the invoices_out table joined with its document header.
type InvoiceOut struct {
	Document
	ClientID    int64           `json:"clientID"`
	InvoiceNo   string          `json:"invoiceNo"`
	InvoiceDate time.Time       `json:"invoiceDate"`
	DueDate     time.Time       `json:"dueDate"`
	Currency    string          `json:"currency"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}
