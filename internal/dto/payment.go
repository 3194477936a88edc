package dto

import (
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the data needed to record a payment and move
// an approved document to PAID.
type RecordPaymentRequest struct {
	Method    string          `json:"method" binding:"required,oneof=BANK CHEQUE CARD"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Currency  string          `json:"currency" binding:"required,len=3"`
	PaidAt    time.Time       `json:"paidAt" binding:"required"`
	Reference string          `json:"reference"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID         int64           `json:"id"`
	DocumentID int64           `json:"documentID"`
	Direction  string          `json:"direction"`
	Method     string          `json:"method"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	PaidAt     time.Time       `json:"paidAt"`
	Reference  string          `json:"reference,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		DocumentID: p.DocumentID,
		Direction:  string(p.Direction),
		Method:     string(p.Method),
		Amount:     p.Amount,
		Currency:   p.Currency,
		PaidAt:     p.PaidAt,
		Reference:  p.Reference,
		CreatedAt:  p.CreatedAt,
	}
}
