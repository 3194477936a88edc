package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	DocumentRepo      DocumentRepositoryFacade
	InvoiceInRepo     InvoiceInRepositoryFacade
	InvoiceOutRepo    InvoiceOutRepositoryFacade
	ExpenseClaimRepo  ExpenseClaimRepositoryFacade
	ReimbursementRepo ReimbursementRepositoryFacade
	AuditLogRepo      AuditLogRepositoryFacade
	UserRepo          UserRepositoryFacade
	EmployeeRepo      EmployeeRepositoryFacade
	VendorRepo        VendorRepositoryFacade
	ClientRepo        ClientRepositoryFacade
	PurchaseOrderRepo PurchaseOrderRepositoryFacade
	PaymentRepo       PaymentRepositoryFacade
	DocumentFileRepo  DocumentFileRepositoryFacade
}
