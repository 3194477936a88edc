package services

import (
	"context"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/docflowhq/docflow_backend/internal/dto"
)

// InvoiceInReaderSvc defines read operations for incoming invoices
type InvoiceInReaderSvc interface {
	// GetInvoiceInByID retrieves a specific incoming invoice by document ID.
	GetInvoiceInByID(ctx context.Context, documentID int64) (*domain.InvoiceIn, error)

	// ListInvoicesIn retrieves a paginated list of incoming invoices.
	ListInvoicesIn(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListInvoicesInResponse, error)
}

// InvoiceInWriterSvc defines write operations for incoming invoices
type InvoiceInWriterSvc interface {
	// CreateInvoiceIn persists a new incoming invoice in DRAFT status.
	CreateInvoiceIn(ctx context.Context, req dto.CreateInvoiceInRequest, creator *domain.User) (*domain.InvoiceIn, error)

	// UpdateInvoiceIn updates the fields of a DRAFT incoming invoice.
	UpdateInvoiceIn(ctx context.Context, documentID int64, req dto.UpdateInvoiceInRequest, actor *domain.User) (*domain.InvoiceIn, error)
}

// InvoiceInLifecycleSvc defines status transition operations for incoming invoices
type InvoiceInLifecycleSvc interface {
	// SubmitInvoiceIn moves a DRAFT invoice to PENDING.
	SubmitInvoiceIn(ctx context.Context, documentID int64, actor *domain.User) (*domain.InvoiceIn, error)

	// ApproveInvoiceIn moves a PENDING invoice to APPROVED after an authorization check.
	ApproveInvoiceIn(ctx context.Context, documentID int64, actor *domain.User) (*domain.InvoiceIn, error)

	// RejectInvoiceIn moves a PENDING invoice to REJECTED after an authorization check.
	RejectInvoiceIn(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.InvoiceIn, error)

	// CancelInvoiceIn cancels a DRAFT or PENDING invoice with a reason.
	CancelInvoiceIn(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.InvoiceIn, error)

	// PayInvoiceIn records an outbound payment and moves an APPROVED invoice to PAID.
	PayInvoiceIn(ctx context.Context, documentID int64, req dto.RecordPaymentRequest, actor *domain.User) (*domain.InvoiceIn, error)
}

// InvoiceInSvcFacade combines all incoming-invoice service interfaces
type InvoiceInSvcFacade interface {
	InvoiceInReaderSvc
	InvoiceInWriterSvc
	InvoiceInLifecycleSvc
}

// InvoiceOutReaderSvc defines read operations for outgoing invoices
type InvoiceOutReaderSvc interface {
	// GetInvoiceOutByID retrieves a specific outgoing invoice by document ID.
	GetInvoiceOutByID(ctx context.Context, documentID int64) (*domain.InvoiceOut, error)

	// ListInvoicesOut retrieves a paginated list of outgoing invoices.
	ListInvoicesOut(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListInvoicesOutResponse, error)
}

// InvoiceOutWriterSvc defines write operations for outgoing invoices
type InvoiceOutWriterSvc interface {
	// CreateInvoiceOut persists a new outgoing invoice in DRAFT status.
	CreateInvoiceOut(ctx context.Context, req dto.CreateInvoiceOutRequest, creator *domain.User) (*domain.InvoiceOut, error)

	// UpdateInvoiceOut updates the fields of a DRAFT outgoing invoice.
	UpdateInvoiceOut(ctx context.Context, documentID int64, req dto.UpdateInvoiceOutRequest, actor *domain.User) (*domain.InvoiceOut, error)
}

// InvoiceOutLifecycleSvc defines status transition operations for outgoing invoices
type InvoiceOutLifecycleSvc interface {
	// SubmitInvoiceOut moves a DRAFT invoice to PENDING.
	SubmitInvoiceOut(ctx context.Context, documentID int64, actor *domain.User) (*domain.InvoiceOut, error)

	// ApproveInvoiceOut moves a PENDING invoice to APPROVED after an authorization check.
	ApproveInvoiceOut(ctx context.Context, documentID int64, actor *domain.User) (*domain.InvoiceOut, error)

	// RejectInvoiceOut moves a PENDING invoice to REJECTED after an authorization check.
	RejectInvoiceOut(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.InvoiceOut, error)

	// CancelInvoiceOut cancels a DRAFT or PENDING invoice with a reason.
	CancelInvoiceOut(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.InvoiceOut, error)

	// PayInvoiceOut records an inbound payment and moves an APPROVED invoice to PAID.
	PayInvoiceOut(ctx context.Context, documentID int64, req dto.RecordPaymentRequest, actor *domain.User) (*domain.InvoiceOut, error)
}

// InvoiceOutSvcFacade combines all outgoing-invoice service interfaces
type InvoiceOutSvcFacade interface {
	InvoiceOutReaderSvc
	InvoiceOutWriterSvc
	InvoiceOutLifecycleSvc
}
