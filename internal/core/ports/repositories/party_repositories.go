package repositories

import (
	"context"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// VendorReader defines read operations for vendors
type VendorReader interface {
	// FindVendorByID retrieves a vendor by its ID.
	FindVendorByID(ctx context.Context, vendorID int64) (*domain.Vendor, error)
}

// VendorWriter defines write operations for vendors
type VendorWriter interface {
	// SaveVendor persists a new vendor.
	SaveVendor(ctx context.Context, vendor domain.Vendor) (*domain.Vendor, error)
}

// VendorRepositoryFacade combines all vendor repository interfaces
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}

// ClientReader defines read operations for clients
type ClientReader interface {
	// FindClientByID retrieves a client by its ID.
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
}

// ClientWriter defines write operations for clients
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error)
}

// ClientRepositoryFacade combines all client repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}

// PurchaseOrderReader defines read operations for purchase orders
type PurchaseOrderReader interface {
	// FindPurchaseOrderByID retrieves a purchase order by its ID.
	FindPurchaseOrderByID(ctx context.Context, purchaseOrderID int64) (*domain.PurchaseOrder, error)
}

// PurchaseOrderRepositoryFacade combines all purchase-order repository interfaces
type PurchaseOrderRepositoryFacade interface {
	PurchaseOrderReader
}
