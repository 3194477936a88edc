package pgsql

import (
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates all pgsql-backed repositories and returns them
// bundled for the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DocumentRepo:      newPgxDocumentRepository(dbPool),
		InvoiceInRepo:     newPgxInvoiceInRepository(dbPool),
		InvoiceOutRepo:    newPgxInvoiceOutRepository(dbPool),
		ExpenseClaimRepo:  newPgxExpenseClaimRepository(dbPool),
		ReimbursementRepo: newPgxReimbursementRepository(dbPool),
		AuditLogRepo:      newPgxAuditLogRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
		EmployeeRepo:      newPgxEmployeeRepository(dbPool),
		VendorRepo:        newPgxVendorRepository(dbPool),
		ClientRepo:        newPgxClientRepository(dbPool),
		PurchaseOrderRepo: newPgxPurchaseOrderRepository(dbPool),
		PaymentRepo:       newPgxPaymentRepository(dbPool),
		DocumentFileRepo:  newPgxDocumentFileRepository(dbPool),
	}
}
