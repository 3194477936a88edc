package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/middleware"
)

// invoiceOutService provides CRUD and lifecycle operations for outgoing invoices.
type invoiceOutService struct {
	docLifecycle
	invoiceRepo portsrepo.InvoiceOutRepositoryFacade
	clientRepo  portsrepo.ClientReader
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewInvoiceOutService creates a new outgoing-invoice service.
func NewInvoiceOutService(
	invoiceRepo portsrepo.InvoiceOutRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	documentRepo portsrepo.DocumentRepositoryFacade,
	machine portssvc.StatusMachineSvc,
	approval portssvc.ApprovalSvc,
	audit portssvc.AuditSvc,
) portssvc.InvoiceOutSvcFacade {
	return &invoiceOutService{
		docLifecycle: docLifecycle{
			machine:      machine,
			approval:     approval,
			audit:        audit,
			documentRepo: documentRepo,
		},
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.InvoiceOutSvcFacade = (*invoiceOutService)(nil)

// CreateInvoiceOut persists a new outgoing invoice in DRAFT status.
func (s *invoiceOutService) CreateInvoiceOut(ctx context.Context, req dto.CreateInvoiceOutRequest, creator *domain.User) (*domain.InvoiceOut, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, err
	}
	if err := validateInvoiceAmounts(req.Subtotal, req.Tax, req.Total); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	invoice := domain.InvoiceOut{
		DocumentHeader: domain.DocumentHeader{
			DocType:     domain.DocTypeInvoiceOut,
			Status:      domain.StatusDraft,
			OwnerUserID: creator.ID,
			Version:     0,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		ClientID:    req.ClientID,
		InvoiceNo:   req.InvoiceNo,
		InvoiceDate: req.InvoiceDate,
		DueDate:     req.DueDate,
		Currency:    req.Currency,
		Subtotal:    req.Subtotal,
		Tax:         req.Tax,
		Total:       req.Total,
	}

	created, err := s.invoiceRepo.SaveInvoiceOut(ctx, invoice)
	if err != nil {
		logger.Error("Failed to save outgoing invoice", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.audit.RecordAction(ctx, created.ID, creator.ID, domain.ActionCreated, "outgoing invoice created"); err != nil {
		return nil, err
	}

	logger.Info("Outgoing invoice created", slog.Int64("document_id", created.ID), slog.Int64("user_id", creator.ID))
	return created, nil
}

// GetInvoiceOutByID retrieves a specific outgoing invoice.
func (s *invoiceOutService) GetInvoiceOutByID(ctx context.Context, documentID int64) (*domain.InvoiceOut, error) {
	return s.invoiceRepo.FindInvoiceOutByID(ctx, documentID)
}

// ListInvoicesOut retrieves a paginated list of outgoing invoices.
func (s *invoiceOutService) ListInvoicesOut(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListInvoicesOutResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	invoices, nextToken, err := s.invoiceRepo.ListInvoicesOut(ctx, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListInvoicesOutResponse(invoices, nextToken)
	return &resp, nil
}

// UpdateInvoiceOut updates the fields of a DRAFT outgoing invoice.
func (s *invoiceOutService) UpdateInvoiceOut(ctx context.Context, documentID int64, req dto.UpdateInvoiceOutRequest, actor *domain.User) (*domain.InvoiceOut, error) {
	invoice, err := s.invoiceRepo.FindInvoiceOutByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(&invoice.DocumentHeader, actor, "update"); err != nil {
		return nil, err
	}
	if invoice.Status != domain.StatusDraft {
		return nil, apperrors.NewInvalidTransitionReason("only DRAFT invoices can be edited, current status: " + string(invoice.Status))
	}

	if req.InvoiceNo != nil {
		invoice.InvoiceNo = *req.InvoiceNo
	}
	if req.InvoiceDate != nil {
		invoice.InvoiceDate = *req.InvoiceDate
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	if req.Currency != nil {
		invoice.Currency = *req.Currency
	}
	if req.Subtotal != nil {
		invoice.Subtotal = *req.Subtotal
	}
	if req.Tax != nil {
		invoice.Tax = *req.Tax
	}
	if req.Total != nil {
		invoice.Total = *req.Total
	}
	if err := validateInvoiceAmounts(invoice.Subtotal, invoice.Tax, invoice.Total); err != nil {
		return nil, err
	}

	invoice.UpdatedAt = time.Now().UTC()
	if err := s.invoiceRepo.UpdateInvoiceOut(ctx, *invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// SubmitInvoiceOut moves a DRAFT invoice to PENDING.
func (s *invoiceOutService) SubmitInvoiceOut(ctx context.Context, documentID int64, actor *domain.User) (*domain.InvoiceOut, error) {
	invoice, err := s.invoiceRepo.FindInvoiceOutByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(&invoice.DocumentHeader, actor, "submit"); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &invoice.DocumentHeader, domain.StatusPending, domain.ActionSubmitted, "", actor); err != nil {
		return nil, err
	}
	return invoice, nil
}

// ApproveInvoiceOut moves a PENDING invoice to APPROVED.
func (s *invoiceOutService) ApproveInvoiceOut(ctx context.Context, documentID int64, actor *domain.User) (*domain.InvoiceOut, error) {
	invoice, err := s.invoiceRepo.FindInvoiceOutByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.approval.AuthorizeDecision(ctx, actor, documentID, domain.DocTypeInvoiceOut); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &invoice.DocumentHeader, domain.StatusApproved, domain.ActionApproved, "", actor); err != nil {
		return nil, err
	}
	return invoice, nil
}

// RejectInvoiceOut moves a PENDING invoice to REJECTED with a reason.
func (s *invoiceOutService) RejectInvoiceOut(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.InvoiceOut, error) {
	invoice, err := s.invoiceRepo.FindInvoiceOutByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.approval.AuthorizeDecision(ctx, actor, documentID, domain.DocTypeInvoiceOut); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &invoice.DocumentHeader, domain.StatusRejected, domain.ActionRejected, reason, actor); err != nil {
		return nil, err
	}
	return invoice, nil
}

// CancelInvoiceOut cancels a DRAFT or PENDING invoice with a reason.
func (s *invoiceOutService) CancelInvoiceOut(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.InvoiceOut, error) {
	invoice, err := s.invoiceRepo.FindInvoiceOutByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(&invoice.DocumentHeader, actor, "cancel"); err != nil {
		return nil, err
	}
	if err := s.machine.ValidateCancel(invoice.Status); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &invoice.DocumentHeader, domain.StatusCancelled, domain.ActionCancelled, reason, actor); err != nil {
		return nil, err
	}
	return invoice, nil
}

// PayInvoiceOut records an inbound payment and moves an APPROVED invoice to PAID.
func (s *invoiceOutService) PayInvoiceOut(ctx context.Context, documentID int64, req dto.RecordPaymentRequest, actor *domain.User) (*domain.InvoiceOut, error) {
	invoice, err := s.invoiceRepo.FindInvoiceOutByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireFinanceOrAdmin(actor); err != nil {
		return nil, err
	}
	alreadyPaid := invoice.Status == domain.StatusPaid
	if err := s.applyTransition(ctx, &invoice.DocumentHeader, domain.StatusPaid, domain.ActionPaid, paymentNote(req), actor); err != nil {
		return nil, err
	}
	if !alreadyPaid {
		if _, err := s.paymentRepo.SavePayment(ctx, paymentFromRequest(req, invoice.ID, domain.DirectionInbound, actor.ID)); err != nil {
			return nil, err
		}
	}
	return invoice, nil
}
