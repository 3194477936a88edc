package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	"github.com/docflowhq/docflow_backend/internal/models"
	"github.com/docflowhq/docflow_backend/internal/utils/mapping"
	"github.com/docflowhq/docflow_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceInRepository struct {
	BaseRepository
}

// newPgxInvoiceInRepository creates a new repository for incoming invoice data.
func newPgxInvoiceInRepository(pool *pgxpool.Pool) portsrepo.InvoiceInRepositoryFacade {
	return &PgxInvoiceInRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceInRepositoryFacade = (*PgxInvoiceInRepository)(nil)

const invoiceInSelect = `
	SELECT d.id, d.doc_type, d.status, d.owner_user_id, d.version, d.created_at, d.updated_at,
	       i.vendor_id, i.purchase_order_id, i.invoice_no, i.invoice_date, i.due_date,
	       i.currency, i.subtotal, i.tax, i.total
	FROM documents d
	JOIN invoices_in i ON i.document_id = d.id
`

func scanInvoiceIn(row pgx.Row) (*models.InvoiceIn, error) {
	var m models.InvoiceIn
	err := row.Scan(
		&m.ID,
		&m.DocType,
		&m.Status,
		&m.OwnerUserID,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.VendorID,
		&m.PurchaseOrderID,
		&m.InvoiceNo,
		&m.InvoiceDate,
		&m.DueDate,
		&m.Currency,
		&m.Subtotal,
		&m.Tax,
		&m.Total,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveInvoiceIn inserts the document header and the invoice payload in one
// transaction and returns the created invoice with its assigned ID.
func (r *PgxInvoiceInRepository) SaveInvoiceIn(ctx context.Context, invoice domain.InvoiceIn) (*domain.InvoiceIn, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvoiceIn(invoice)

	headerQuery := `
		INSERT INTO documents (doc_type, status, owner_user_id, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	var documentID int64
	err = tx.QueryRow(ctx, headerQuery,
		m.DocType,
		m.Status,
		m.OwnerUserID,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert document header for incoming invoice", err)
	}

	payloadQuery := `
		INSERT INTO invoices_in (document_id, vendor_id, purchase_order_id, invoice_no, invoice_date, due_date, currency, subtotal, tax, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, payloadQuery,
		documentID,
		m.VendorID,
		m.PurchaseOrderID,
		m.InvoiceNo,
		m.InvoiceDate,
		m.DueDate,
		m.Currency,
		m.Subtotal,
		m.Tax,
		m.Total,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert incoming invoice payload", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	invoice.ID = documentID
	return &invoice, nil
}

// FindInvoiceInByID retrieves an incoming invoice with its header by document ID.
func (r *PgxInvoiceInRepository) FindInvoiceInByID(ctx context.Context, documentID int64) (*domain.InvoiceIn, error) {
	m, err := scanInvoiceIn(r.Pool.QueryRow(ctx, invoiceInSelect+" WHERE d.id = $1;", documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find incoming invoice by ID "+strconv.FormatInt(documentID, 10), err)
	}
	d := mapping.ToDomainInvoiceIn(*m)
	return &d, nil
}

// ListInvoicesIn retrieves a page of incoming invoices ordered by creation
// time descending, using token-based pagination.
func (r *PgxInvoiceInRepository) ListInvoicesIn(ctx context.Context, limit int, nextToken *string) ([]domain.InvoiceIn, *string, error) {
	args := []interface{}{limit + 1}
	query := invoiceInSelect + " WHERE 1=1"
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += " AND (d.created_at, d.id) < ($2, $3)"
		args = append(args, createdAt, id)
	}
	query += " ORDER BY d.created_at DESC, d.id DESC LIMIT $1;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query incoming invoices", err)
	}
	defer rows.Close()

	invoices := []domain.InvoiceIn{}
	for rows.Next() {
		m, err := scanInvoiceIn(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan incoming invoice row", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoiceIn(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating incoming invoice rows", err)
	}

	var token *string
	if len(invoices) > limit {
		invoices = invoices[:limit]
		last := invoices[len(invoices)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.ID)
		token = &t
	}
	return invoices, token, nil
}

// UpdateInvoiceIn updates the editable fields of a DRAFT incoming invoice.
func (r *PgxInvoiceInRepository) UpdateInvoiceIn(ctx context.Context, invoice domain.InvoiceIn) error {
	m := mapping.ToModelInvoiceIn(invoice)

	query := `
		UPDATE invoices_in
		SET purchase_order_id = $1, invoice_no = $2, invoice_date = $3, due_date = $4,
		    currency = $5, subtotal = $6, tax = $7, total = $8
		WHERE document_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PurchaseOrderID,
		m.InvoiceNo,
		m.InvoiceDate,
		m.DueDate,
		m.Currency,
		m.Subtotal,
		m.Tax,
		m.Total,
		m.ID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update incoming invoice "+strconv.FormatInt(m.ID, 10), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	headerQuery := `UPDATE documents SET updated_at = $1 WHERE id = $2;`
	if _, err := r.Pool.Exec(ctx, headerQuery, m.UpdatedAt, m.ID); err != nil {
		return apperrors.NewAppError(500, "failed to touch document header "+strconv.FormatInt(m.ID, 10), err)
	}
	return nil
}
