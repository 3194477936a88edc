package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Vendors, clients and purchase orders are flat rows, so these repositories
// scan straight into the domain structs.

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID int64) (*domain.Vendor, error) {
	query := `SELECT id, name, tax_id, created_at FROM vendors WHERE id = $1;`
	var v domain.Vendor
	err := r.Pool.QueryRow(ctx, query, vendorID).Scan(&v.ID, &v.Name, &v.TaxID, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find vendor by ID "+strconv.FormatInt(vendorID, 10), err)
	}
	return &v, nil
}

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) (*domain.Vendor, error) {
	query := `
		INSERT INTO vendors (name, tax_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query, vendor.Name, vendor.TaxID, vendor.CreatedAt).Scan(&vendor.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert vendor", err)
	}
	return &vendor, nil
}

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `SELECT id, name, tax_id, created_at FROM clients WHERE id = $1;`
	var c domain.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(&c.ID, &c.Name, &c.TaxID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find client by ID "+strconv.FormatInt(clientID, 10), err)
	}
	return &c, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO clients (name, tax_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query, client.Name, client.TaxID, client.CreatedAt).Scan(&client.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert client", err)
	}
	return &client, nil
}

type PgxPurchaseOrderRepository struct {
	BaseRepository
}

func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) portsrepo.PurchaseOrderRepositoryFacade {
	return &PgxPurchaseOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PurchaseOrderRepositoryFacade = (*PgxPurchaseOrderRepository)(nil)

func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID int64) (*domain.PurchaseOrder, error) {
	query := `
		SELECT id, po_no, vendor_id, currency, total, approver_user_id, created_at, updated_at
		FROM purchase_orders
		WHERE id = $1;
	`
	var po domain.PurchaseOrder
	err := r.Pool.QueryRow(ctx, query, purchaseOrderID).Scan(
		&po.ID,
		&po.PONo,
		&po.VendorID,
		&po.Currency,
		&po.Total,
		&po.ApproverUserID,
		&po.CreatedAt,
		&po.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase order by ID "+strconv.FormatInt(purchaseOrderID, 10), err)
	}
	return &po, nil
}
