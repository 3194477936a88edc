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

type PgxInvoiceOutRepository struct {
	BaseRepository
}

// newPgxInvoiceOutRepository creates a new repository for outgoing invoice data.
func newPgxInvoiceOutRepository(pool *pgxpool.Pool) portsrepo.InvoiceOutRepositoryFacade {
	return &PgxInvoiceOutRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceOutRepositoryFacade = (*PgxInvoiceOutRepository)(nil)

const invoiceOutSelect = `
	SELECT d.id, d.doc_type, d.status, d.owner_user_id, d.version, d.created_at, d.updated_at,
	       i.client_id, i.invoice_no, i.invoice_date, i.due_date,
	       i.currency, i.subtotal, i.tax, i.total
	FROM documents d
	JOIN invoices_out i ON i.document_id = d.id
`

func scanInvoiceOut(row pgx.Row) (*models.InvoiceOut, error) {
	var m models.InvoiceOut
	err := row.Scan(
		&m.ID,
		&m.DocType,
		&m.Status,
		&m.OwnerUserID,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.ClientID,
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

// SaveInvoiceOut inserts the document header and the invoice payload in one
// transaction and returns the created invoice with its assigned ID.
func (r *PgxInvoiceOutRepository) SaveInvoiceOut(ctx context.Context, invoice domain.InvoiceOut) (*domain.InvoiceOut, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvoiceOut(invoice)

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
		return nil, apperrors.NewAppError(500, "failed to insert document header for outgoing invoice", err)
	}

	payloadQuery := `
		INSERT INTO invoices_out (document_id, client_id, invoice_no, invoice_date, due_date, currency, subtotal, tax, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, payloadQuery,
		documentID,
		m.ClientID,
		m.InvoiceNo,
		m.InvoiceDate,
		m.DueDate,
		m.Currency,
		m.Subtotal,
		m.Tax,
		m.Total,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert outgoing invoice payload", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	invoice.ID = documentID
	return &invoice, nil
}

// FindInvoiceOutByID retrieves an outgoing invoice with its header by document ID.
func (r *PgxInvoiceOutRepository) FindInvoiceOutByID(ctx context.Context, documentID int64) (*domain.InvoiceOut, error) {
	m, err := scanInvoiceOut(r.Pool.QueryRow(ctx, invoiceOutSelect+" WHERE d.id = $1;", documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find outgoing invoice by ID "+strconv.FormatInt(documentID, 10), err)
	}
	d := mapping.ToDomainInvoiceOut(*m)
	return &d, nil
}

// ListInvoicesOut retrieves a page of outgoing invoices ordered by creation
// time descending, using token-based pagination.
func (r *PgxInvoiceOutRepository) ListInvoicesOut(ctx context.Context, limit int, nextToken *string) ([]domain.InvoiceOut, *string, error) {
	args := []interface{}{limit + 1}
	query := invoiceOutSelect + " WHERE 1=1"
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
		return nil, nil, apperrors.NewAppError(500, "failed to query outgoing invoices", err)
	}
	defer rows.Close()

	invoices := []domain.InvoiceOut{}
	for rows.Next() {
		m, err := scanInvoiceOut(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan outgoing invoice row", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoiceOut(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating outgoing invoice rows", err)
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

// UpdateInvoiceOut updates the editable fields of a DRAFT outgoing invoice.
func (r *PgxInvoiceOutRepository) UpdateInvoiceOut(ctx context.Context, invoice domain.InvoiceOut) error {
	m := mapping.ToModelInvoiceOut(invoice)

	query := `
		UPDATE invoices_out
		SET invoice_no = $1, invoice_date = $2, due_date = $3,
		    currency = $4, subtotal = $5, tax = $6, total = $7
		WHERE document_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
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
		return apperrors.NewAppError(500, "failed to update outgoing invoice "+strconv.FormatInt(m.ID, 10), err)
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
