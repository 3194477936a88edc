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

type PgxExpenseClaimRepository struct {
	BaseRepository
}

// newPgxExpenseClaimRepository creates a new repository for expense claim data.
func newPgxExpenseClaimRepository(pool *pgxpool.Pool) portsrepo.ExpenseClaimRepositoryFacade {
	return &PgxExpenseClaimRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseClaimRepositoryFacade = (*PgxExpenseClaimRepository)(nil)

const expenseClaimSelect = `
	SELECT d.id, d.doc_type, d.status, d.owner_user_id, d.version, d.created_at, d.updated_at,
	       c.employee_id, c.claim_date, c.currency, c.total
	FROM documents d
	JOIN expense_claims c ON c.document_id = d.id
`

func scanExpenseClaim(row pgx.Row) (*models.ExpenseClaim, error) {
	var m models.ExpenseClaim
	err := row.Scan(
		&m.ID,
		&m.DocType,
		&m.Status,
		&m.OwnerUserID,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.EmployeeID,
		&m.ClaimDate,
		&m.Currency,
		&m.Total,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// insertItems batches the item inserts for a claim inside tx.
func (r *PgxExpenseClaimRepository) insertItems(ctx context.Context, tx pgx.Tx, documentID int64, items []domain.ExpenseItem) error {
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO expense_items (expense_claim_id, category, description, amount, incurred_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range items {
		batch.Queue(itemQuery, documentID, item.Category, item.Description, item.Amount, item.IncurredAt)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert expense items for claim "+strconv.FormatInt(documentID, 10), err)
	}
	return nil
}

// SaveExpenseClaim inserts the document header, the claim payload and its
// items in one transaction.
func (r *PgxExpenseClaimRepository) SaveExpenseClaim(ctx context.Context, claim domain.ExpenseClaim) (*domain.ExpenseClaim, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelExpenseClaim(claim)

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
		return nil, apperrors.NewAppError(500, "failed to insert document header for expense claim", err)
	}

	payloadQuery := `
		INSERT INTO expense_claims (document_id, employee_id, claim_date, currency, total)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = tx.Exec(ctx, payloadQuery, documentID, m.EmployeeID, m.ClaimDate, m.Currency, m.Total)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert expense claim payload", err)
	}

	if err := r.insertItems(ctx, tx, documentID, claim.Items); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	claim.ID = documentID
	for i := range claim.Items {
		claim.Items[i].ExpenseClaimID = documentID
	}
	return &claim, nil
}

// findItems loads all items for a claim ordered by incurral time.
func (r *PgxExpenseClaimRepository) findItems(ctx context.Context, documentID int64) ([]domain.ExpenseItem, error) {
	query := `
		SELECT id, expense_claim_id, category, description, amount, incurred_at
		FROM expense_items
		WHERE expense_claim_id = $1
		ORDER BY incurred_at, id;
	`
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense items for claim "+strconv.FormatInt(documentID, 10), err)
	}
	defer rows.Close()

	items := []models.ExpenseItem{}
	for rows.Next() {
		var m models.ExpenseItem
		if err := rows.Scan(&m.ID, &m.ExpenseClaimID, &m.Category, &m.Description, &m.Amount, &m.IncurredAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense item row", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expense item rows", err)
	}
	return mapping.ToDomainExpenseItemSlice(items), nil
}

// FindExpenseClaimByID retrieves an expense claim with its items by document ID.
func (r *PgxExpenseClaimRepository) FindExpenseClaimByID(ctx context.Context, documentID int64) (*domain.ExpenseClaim, error) {
	m, err := scanExpenseClaim(r.Pool.QueryRow(ctx, expenseClaimSelect+" WHERE d.id = $1;", documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find expense claim by ID "+strconv.FormatInt(documentID, 10), err)
	}

	claim := mapping.ToDomainExpenseClaim(*m)
	items, err := r.findItems(ctx, documentID)
	if err != nil {
		return nil, err
	}
	claim.Items = items
	return &claim, nil
}

// ListExpenseClaims retrieves a page of expense claims ordered by creation
// time descending, using token-based pagination. Items are not loaded for
// listings.
func (r *PgxExpenseClaimRepository) ListExpenseClaims(ctx context.Context, limit int, nextToken *string) ([]domain.ExpenseClaim, *string, error) {
	args := []interface{}{limit + 1}
	query := expenseClaimSelect + " WHERE 1=1"
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
		return nil, nil, apperrors.NewAppError(500, "failed to query expense claims", err)
	}
	defer rows.Close()

	claims := []domain.ExpenseClaim{}
	for rows.Next() {
		m, err := scanExpenseClaim(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan expense claim row", err)
		}
		claims = append(claims, mapping.ToDomainExpenseClaim(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating expense claim rows", err)
	}

	var token *string
	if len(claims) > limit {
		claims = claims[:limit]
		last := claims[len(claims)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.ID)
		token = &t
	}
	return claims, token, nil
}

// UpdateExpenseClaim replaces the editable fields and items of a DRAFT claim
// in one transaction.
func (r *PgxExpenseClaimRepository) UpdateExpenseClaim(ctx context.Context, claim domain.ExpenseClaim) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelExpenseClaim(claim)

	query := `
		UPDATE expense_claims
		SET claim_date = $1, currency = $2, total = $3
		WHERE document_id = $4;
	`
	tag, err := tx.Exec(ctx, query, m.ClaimDate, m.Currency, m.Total, m.ID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update expense claim "+strconv.FormatInt(m.ID, 10), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM expense_items WHERE expense_claim_id = $1;`, m.ID); err != nil {
		return apperrors.NewAppError(500, "failed to delete expense items for claim "+strconv.FormatInt(m.ID, 10), err)
	}
	if err := r.insertItems(ctx, tx, m.ID, claim.Items); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `UPDATE documents SET updated_at = $1 WHERE id = $2;`, m.UpdatedAt, m.ID); err != nil {
		return apperrors.NewAppError(500, "failed to touch document header "+strconv.FormatInt(m.ID, 10), err)
	}

	return r.Commit(ctx, tx)
}
