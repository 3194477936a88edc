package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDirection distinguishes money received from money paid out.
type PaymentDirection string

const (
	DirectionInbound  PaymentDirection = "INBOUND"
	DirectionOutbound PaymentDirection = "OUTBOUND"
)

// PaymentMethod is how a payment was settled.
type PaymentMethod string

const (
	MethodBank   PaymentMethod = "BANK"
	MethodCheque PaymentMethod = "CHEQUE"
	MethodCard   PaymentMethod = "CARD"
)

// Payment records a settlement against an approved document. Recording a
// payment is what drives the document's APPROVED to PAID transition.
type Payment struct {
	ID         int64            `json:"id"`
	DocumentID int64            `json:"documentID"`
	Direction  PaymentDirection `json:"direction"`
	Method     PaymentMethod    `json:"method"`
	Amount     decimal.Decimal  `json:"amount"`
	Currency   string           `json:"currency"`
	PaidAt     time.Time        `json:"paidAt"`
	Reference  string           `json:"reference,omitempty"`
	CreatedBy  int64            `json:"createdBy"`
	CreatedAt  time.Time        `json:"createdAt"`
}
