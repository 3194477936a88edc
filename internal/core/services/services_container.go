package services

import (
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, store portsrepo.ObjectStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Lifecycle primitives first since the document services depend on them
	container.StatusMachine = NewStatusMachine()
	container.Audit = NewAuditService(repos.AuditLogRepo)
	container.Approval = NewApprovalService(
		repos.InvoiceInRepo,
		repos.ExpenseClaimRepo,
		repos.ReimbursementRepo,
		repos.PurchaseOrderRepo,
		repos.EmployeeRepo,
	)

	container.InvoiceIn = NewInvoiceInService(
		repos.InvoiceInRepo,
		repos.VendorRepo,
		repos.PurchaseOrderRepo,
		repos.PaymentRepo,
		repos.DocumentRepo,
		container.StatusMachine,
		container.Approval,
		container.Audit,
	)
	container.InvoiceOut = NewInvoiceOutService(
		repos.InvoiceOutRepo,
		repos.ClientRepo,
		repos.PaymentRepo,
		repos.DocumentRepo,
		container.StatusMachine,
		container.Approval,
		container.Audit,
	)
	container.ExpenseClaim = NewExpenseClaimService(
		repos.ExpenseClaimRepo,
		repos.EmployeeRepo,
		repos.DocumentRepo,
		container.StatusMachine,
		container.Approval,
		container.Audit,
	)
	container.Reimbursement = NewReimbursementService(
		repos.ReimbursementRepo,
		repos.ExpenseClaimRepo,
		repos.PaymentRepo,
		repos.DocumentRepo,
		container.StatusMachine,
		container.Approval,
		container.Audit,
		cfg.ReimbursementTolerance,
	)

	container.DocumentFile = NewDocumentFileService(repos.DocumentFileRepo, repos.DocumentRepo, store, container.Audit)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)

	return container
}
