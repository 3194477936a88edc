package repositories

import (
	"context"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// InvoiceInReader defines read operations for incoming invoices
type InvoiceInReader interface {
	// FindInvoiceInByID retrieves an incoming invoice (with its document header) by document ID.
	FindInvoiceInByID(ctx context.Context, documentID int64) (*domain.InvoiceIn, error)

	// ListInvoicesIn retrieves a paginated list of incoming invoices using token-based pagination.
	// It returns the invoices, a token for the next page, and an error.
	ListInvoicesIn(ctx context.Context, limit int, nextToken *string) ([]domain.InvoiceIn, *string, error)
}

// InvoiceInWriter defines write operations for incoming invoices
type InvoiceInWriter interface {
	// SaveInvoiceIn persists a new incoming invoice and its document header in one transaction,
	// returning the created invoice with its assigned document ID.
	SaveInvoiceIn(ctx context.Context, invoice domain.InvoiceIn) (*domain.InvoiceIn, error)

	// UpdateInvoiceIn updates the editable fields of a DRAFT incoming invoice.
	UpdateInvoiceIn(ctx context.Context, invoice domain.InvoiceIn) error
}

// InvoiceInRepositoryFacade combines all incoming-invoice repository interfaces
type InvoiceInRepositoryFacade interface {
	InvoiceInReader
	InvoiceInWriter
}

// InvoiceOutReader defines read operations for outgoing invoices
type InvoiceOutReader interface {
	// FindInvoiceOutByID retrieves an outgoing invoice (with its document header) by document ID.
	FindInvoiceOutByID(ctx context.Context, documentID int64) (*domain.InvoiceOut, error)

	// ListInvoicesOut retrieves a paginated list of outgoing invoices using token-based pagination.
	ListInvoicesOut(ctx context.Context, limit int, nextToken *string) ([]domain.InvoiceOut, *string, error)
}

// InvoiceOutWriter defines write operations for outgoing invoices
type InvoiceOutWriter interface {
	// SaveInvoiceOut persists a new outgoing invoice and its document header in one transaction.
	SaveInvoiceOut(ctx context.Context, invoice domain.InvoiceOut) (*domain.InvoiceOut, error)

	// UpdateInvoiceOut updates the editable fields of a DRAFT outgoing invoice.
	UpdateInvoiceOut(ctx context.Context, invoice domain.InvoiceOut) error
}

// InvoiceOutRepositoryFacade combines all outgoing-invoice repository interfaces
type InvoiceOutRepositoryFacade interface {
	InvoiceOutReader
	InvoiceOutWriter
}
