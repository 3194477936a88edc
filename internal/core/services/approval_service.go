package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/middleware"
)

// approvalService decides who may approve or reject a pending document.
type approvalService struct {
	invoiceInRepo     portsrepo.InvoiceInReader
	expenseClaimRepo  portsrepo.ExpenseClaimReader
	reimbursementRepo portsrepo.ReimbursementReader
	purchaseOrderRepo portsrepo.PurchaseOrderReader
	employeeRepo      portsrepo.EmployeeReader
}

// NewApprovalService creates the approval authorization service.
func NewApprovalService(
	invoiceInRepo portsrepo.InvoiceInReader,
	expenseClaimRepo portsrepo.ExpenseClaimReader,
	reimbursementRepo portsrepo.ReimbursementReader,
	purchaseOrderRepo portsrepo.PurchaseOrderReader,
	employeeRepo portsrepo.EmployeeReader,
) portssvc.ApprovalSvc {
	return &approvalService{
		invoiceInRepo:     invoiceInRepo,
		expenseClaimRepo:  expenseClaimRepo,
		reimbursementRepo: reimbursementRepo,
		purchaseOrderRepo: purchaseOrderRepo,
		employeeRepo:      employeeRepo,
	}
}

var _ portssvc.ApprovalSvc = (*approvalService)(nil)

// AuthorizeDecision checks whether the actor may approve or reject the given
// document. ADMIN may always decide; the remaining rules depend on the
// document type.
func (s *approvalService) AuthorizeDecision(ctx context.Context, actor *domain.User, documentID int64, docType domain.DocumentType) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.HasRole(domain.RoleAdmin) {
		return nil
	}

	var err error
	switch docType {
	case domain.DocTypeInvoiceIn:
		err = s.authorizeInvoiceIn(ctx, actor, documentID)
	case domain.DocTypeInvoiceOut:
		err = s.authorizeInvoiceOut(actor)
	case domain.DocTypeExpenseClaim:
		err = s.authorizeClaim(ctx, actor, documentID)
	case domain.DocTypeReimbursement:
		err = s.authorizeReimbursement(ctx, actor, documentID)
	default:
		err = apperrors.NewUnauthorizedActionError(fmt.Sprintf("unknown document type %s", docType))
	}
	if err != nil {
		logger.Warn("Approval authorization denied",
			slog.Int64("user_id", actor.ID),
			slog.Int64("document_id", documentID),
			slog.String("doc_type", string(docType)),
			slog.String("error", err.Error()))
	}
	return err
}

// authorizeInvoiceIn applies the incoming-invoice rule: when the invoice is
// linked to a purchase order that carries a dedicated approver, that user
// decides exclusively. Otherwise MANAGER or FINANCE may decide.
func (s *approvalService) authorizeInvoiceIn(ctx context.Context, actor *domain.User, documentID int64) error {
	invoice, err := s.invoiceInRepo.FindInvoiceInByID(ctx, documentID)
	if err != nil {
		return err
	}

	if invoice.PurchaseOrderID != nil {
		po, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, *invoice.PurchaseOrderID)
		if err != nil {
			return err
		}
		if po.ApproverUserID != nil {
			if *po.ApproverUserID == actor.ID {
				return nil
			}
			return apperrors.NewUnauthorizedActionError(
				fmt.Sprintf("invoice is routed to the approver of purchase order %s; only that user or ADMIN can decide", po.PONo))
		}
	}

	if actor.HasRole(domain.RoleManager) || actor.HasRole(domain.RoleFinance) {
		return nil
	}
	return apperrors.NewUnauthorizedActionError("only MANAGER, FINANCE or ADMIN can decide on incoming invoices")
}

// authorizeInvoiceOut applies the outgoing-invoice rule: FINANCE decides.
func (s *approvalService) authorizeInvoiceOut(actor *domain.User) error {
	if actor.HasRole(domain.RoleFinance) {
		return nil
	}
	return apperrors.NewUnauthorizedActionError("only FINANCE or ADMIN can decide on outgoing invoices")
}

// authorizeClaim applies the expense-claim rule: only the claimant's direct
// manager decides.
func (s *approvalService) authorizeClaim(ctx context.Context, actor *domain.User, documentID int64) error {
	claim, err := s.expenseClaimRepo.FindExpenseClaimByID(ctx, documentID)
	if err != nil {
		return err
	}
	return s.authorizeManagerOfClaimant(ctx, actor, claim.EmployeeID)
}

// authorizeReimbursement reuses the claim rule via the linked expense claim:
// whoever could decide the claim can decide its reimbursement.
func (s *approvalService) authorizeReimbursement(ctx context.Context, actor *domain.User, documentID int64) error {
	reimbursement, err := s.reimbursementRepo.FindReimbursementByID(ctx, documentID)
	if err != nil {
		return err
	}
	return s.authorizeManagerOfClaimant(ctx, actor, reimbursement.EmployeeID)
}

func (s *approvalService) authorizeManagerOfClaimant(ctx context.Context, actor *domain.User, claimantEmployeeID int64) error {
	claimant, err := s.employeeRepo.FindEmployeeByID(ctx, claimantEmployeeID)
	if err != nil {
		return err
	}
	if claimant.ManagerID == nil {
		return apperrors.NewUnauthorizedActionError("claimant has no manager assigned; only ADMIN can decide")
	}
	manager, err := s.employeeRepo.FindEmployeeByID(ctx, *claimant.ManagerID)
	if err != nil {
		return err
	}
	if manager.UserID == actor.ID {
		return nil
	}
	return apperrors.NewUnauthorizedActionError(
		fmt.Sprintf("only the claimant's manager (%s) or ADMIN can decide on this claim", manager.Email))
}
