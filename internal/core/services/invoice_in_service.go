package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/middleware"
)

// invoiceInService provides CRUD and lifecycle operations for incoming invoices.
type invoiceInService struct {
	docLifecycle
	invoiceRepo       portsrepo.InvoiceInRepositoryFacade
	vendorRepo        portsrepo.VendorReader
	purchaseOrderRepo portsrepo.PurchaseOrderReader
	paymentRepo       portsrepo.PaymentRepositoryFacade
}

// NewInvoiceInService creates a new incoming-invoice service.
func NewInvoiceInService(
	invoiceRepo portsrepo.InvoiceInRepositoryFacade,
	vendorRepo portsrepo.VendorReader,
	purchaseOrderRepo portsrepo.PurchaseOrderReader,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	documentRepo portsrepo.DocumentRepositoryFacade,
	machine portssvc.StatusMachineSvc,
	approval portssvc.ApprovalSvc,
	audit portssvc.AuditSvc,
) portssvc.InvoiceInSvcFacade {
	return &invoiceInService{
		docLifecycle: docLifecycle{
			machine:      machine,
			approval:     approval,
			audit:        audit,
			documentRepo: documentRepo,
		},
		invoiceRepo:       invoiceRepo,
		vendorRepo:        vendorRepo,
		purchaseOrderRepo: purchaseOrderRepo,
		paymentRepo:       paymentRepo,
	}
}

var _ portssvc.InvoiceInSvcFacade = (*invoiceInService)(nil)

// CreateInvoiceIn persists a new incoming invoice in DRAFT status.
func (s *invoiceInService) CreateInvoiceIn(ctx context.Context, req dto.CreateInvoiceInRequest, creator *domain.User) (*domain.InvoiceIn, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID); err != nil {
		return nil, err
	}
	if req.PurchaseOrderID != nil {
		po, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, *req.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		if po.VendorID != req.VendorID {
			return nil, fmt.Errorf("%w: purchase order %s belongs to a different vendor", apperrors.ErrValidation, po.PONo)
		}
	}
	if err := validateInvoiceAmounts(req.Subtotal, req.Tax, req.Total); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	invoice := domain.InvoiceIn{
		DocumentHeader: domain.DocumentHeader{
			DocType:     domain.DocTypeInvoiceIn,
			Status:      domain.StatusDraft,
			OwnerUserID: creator.ID,
			Version:     0,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		VendorID:        req.VendorID,
		PurchaseOrderID: req.PurchaseOrderID,
		InvoiceNo:       req.InvoiceNo,
		InvoiceDate:     req.InvoiceDate,
		DueDate:         req.DueDate,
		Currency:        req.Currency,
		Subtotal:        req.Subtotal,
		Tax:             req.Tax,
		Total:           req.Total,
	}

	created, err := s.invoiceRepo.SaveInvoiceIn(ctx, invoice)
	if err != nil {
		logger.Error("Failed to save incoming invoice", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.audit.RecordAction(ctx, created.ID, creator.ID, domain.ActionCreated, "incoming invoice created"); err != nil {
		return nil, err
	}

	logger.Info("Incoming invoice created", slog.Int64("document_id", created.ID), slog.Int64("user_id", creator.ID))
	return created, nil
}

// GetInvoiceInByID retrieves a specific incoming invoice.
func (s *invoiceInService) GetInvoiceInByID(ctx context.Context, documentID int64) (*domain.InvoiceIn, error) {
	return s.invoiceRepo.FindInvoiceInByID(ctx, documentID)
}

// ListInvoicesIn retrieves a paginated list of incoming invoices.
func (s *invoiceInService) ListInvoicesIn(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListInvoicesInResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	invoices, nextToken, err := s.invoiceRepo.ListInvoicesIn(ctx, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListInvoicesInResponse(invoices, nextToken)
	return &resp, nil
}

// UpdateInvoiceIn updates the fields of a DRAFT incoming invoice.
func (s *invoiceInService) UpdateInvoiceIn(ctx context.Context, documentID int64, req dto.UpdateInvoiceInRequest, actor *domain.User) (*domain.InvoiceIn, error) {
	invoice, err := s.invoiceRepo.FindInvoiceInByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(&invoice.DocumentHeader, actor, "update"); err != nil {
		return nil, err
	}
	if invoice.Status != domain.StatusDraft {
		return nil, apperrors.NewInvalidTransitionReason("only DRAFT invoices can be edited, current status: " + string(invoice.Status))
	}

	if req.PurchaseOrderID != nil {
		po, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, *req.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		if po.VendorID != invoice.VendorID {
			return nil, fmt.Errorf("%w: purchase order %s belongs to a different vendor", apperrors.ErrValidation, po.PONo)
		}
		invoice.PurchaseOrderID = req.PurchaseOrderID
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
	if err := s.invoiceRepo.UpdateInvoiceIn(ctx, *invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// SubmitInvoiceIn moves a DRAFT invoice to PENDING.
func (s *invoiceInService) SubmitInvoiceIn(ctx context.Context, documentID int64, actor *domain.User) (*domain.InvoiceIn, error) {
	invoice, err := s.invoiceRepo.FindInvoiceInByID(ctx, documentID)
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

// ApproveInvoiceIn moves a PENDING invoice to APPROVED.
func (s *invoiceInService) ApproveInvoiceIn(ctx context.Context, documentID int64, actor *domain.User) (*domain.InvoiceIn, error) {
	invoice, err := s.invoiceRepo.FindInvoiceInByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.approval.AuthorizeDecision(ctx, actor, documentID, domain.DocTypeInvoiceIn); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &invoice.DocumentHeader, domain.StatusApproved, domain.ActionApproved, "", actor); err != nil {
		return nil, err
	}
	return invoice, nil
}

// RejectInvoiceIn moves a PENDING invoice to REJECTED with a reason.
func (s *invoiceInService) RejectInvoiceIn(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.InvoiceIn, error) {
	invoice, err := s.invoiceRepo.FindInvoiceInByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.approval.AuthorizeDecision(ctx, actor, documentID, domain.DocTypeInvoiceIn); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, &invoice.DocumentHeader, domain.StatusRejected, domain.ActionRejected, reason, actor); err != nil {
		return nil, err
	}
	return invoice, nil
}

// CancelInvoiceIn cancels a DRAFT or PENDING invoice with a reason.
func (s *invoiceInService) CancelInvoiceIn(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.InvoiceIn, error) {
	invoice, err := s.invoiceRepo.FindInvoiceInByID(ctx, documentID)
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

// PayInvoiceIn records an outbound payment and moves an APPROVED invoice to PAID.
func (s *invoiceInService) PayInvoiceIn(ctx context.Context, documentID int64, req dto.RecordPaymentRequest, actor *domain.User) (*domain.InvoiceIn, error) {
	invoice, err := s.invoiceRepo.FindInvoiceInByID(ctx, documentID)
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
		if _, err := s.paymentRepo.SavePayment(ctx, paymentFromRequest(req, invoice.ID, domain.DirectionOutbound, actor.ID)); err != nil {
			return nil, err
		}
	}
	return invoice, nil
}
