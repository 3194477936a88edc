package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is the PO header an incoming invoice may reference.
// ApproverUserID, when set, is a routing override: that user (besides ADMIN)
// exclusively controls approve/reject for invoices linked to this PO.
type PurchaseOrder struct {
	ID             int64           `json:"id"`
	PONo           string          `json:"poNo"`
	VendorID       int64           `json:"vendorID"`
	Currency       string          `json:"currency"`
	Total          decimal.Decimal `json:"total"`
	ApproverUserID *int64          `json:"approverUserID,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
