package repositories

import (
	"context"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// PaymentReader defines read operations for payments
type PaymentReader interface {
	// FindPaymentsByDocumentID retrieves all payments recorded against a document.
	FindPaymentsByDocumentID(ctx context.Context, documentID int64) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payments
type PaymentWriter interface {
	// SavePayment persists a new payment, returning the created record.
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
