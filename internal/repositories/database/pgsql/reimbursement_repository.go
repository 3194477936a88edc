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

type PgxReimbursementRepository struct {
	BaseRepository
}

// newPgxReimbursementRepository creates a new repository for reimbursement data.
func newPgxReimbursementRepository(pool *pgxpool.Pool) portsrepo.ReimbursementRepositoryFacade {
	return &PgxReimbursementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReimbursementRepositoryFacade = (*PgxReimbursementRepository)(nil)

const reimbursementSelect = `
	SELECT d.id, d.doc_type, d.status, d.owner_user_id, d.version, d.created_at, d.updated_at,
	       r.employee_id, r.expense_claim_id, r.requested_date, r.currency, r.total
	FROM documents d
	JOIN reimbursements r ON r.document_id = d.id
`

func scanReimbursement(row pgx.Row) (*models.Reimbursement, error) {
	var m models.Reimbursement
	err := row.Scan(
		&m.ID,
		&m.DocType,
		&m.Status,
		&m.OwnerUserID,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.EmployeeID,
		&m.ExpenseClaimID,
		&m.RequestedDate,
		&m.Currency,
		&m.Total,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveReimbursement inserts the document header and the reimbursement payload
// in one transaction.
func (r *PgxReimbursementRepository) SaveReimbursement(ctx context.Context, reimbursement domain.Reimbursement) (*domain.Reimbursement, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelReimbursement(reimbursement)

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
		return nil, apperrors.NewAppError(500, "failed to insert document header for reimbursement", err)
	}

	payloadQuery := `
		INSERT INTO reimbursements (document_id, employee_id, expense_claim_id, requested_date, currency, total)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, payloadQuery, documentID, m.EmployeeID, m.ExpenseClaimID, m.RequestedDate, m.Currency, m.Total)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert reimbursement payload", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	reimbursement.ID = documentID
	return &reimbursement, nil
}

// FindReimbursementByID retrieves a reimbursement with its header by document ID.
func (r *PgxReimbursementRepository) FindReimbursementByID(ctx context.Context, documentID int64) (*domain.Reimbursement, error) {
	m, err := scanReimbursement(r.Pool.QueryRow(ctx, reimbursementSelect+" WHERE d.id = $1;", documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find reimbursement by ID "+strconv.FormatInt(documentID, 10), err)
	}
	d := mapping.ToDomainReimbursement(*m)
	return &d, nil
}

// FindReimbursementByClaimID retrieves the reimbursement linked to an expense
// claim, if any.
func (r *PgxReimbursementRepository) FindReimbursementByClaimID(ctx context.Context, expenseClaimID int64) (*domain.Reimbursement, error) {
	m, err := scanReimbursement(r.Pool.QueryRow(ctx, reimbursementSelect+" WHERE r.expense_claim_id = $1;", expenseClaimID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find reimbursement for claim "+strconv.FormatInt(expenseClaimID, 10), err)
	}
	d := mapping.ToDomainReimbursement(*m)
	return &d, nil
}

// ListReimbursements retrieves a page of reimbursements ordered by creation
// time descending, using token-based pagination.
func (r *PgxReimbursementRepository) ListReimbursements(ctx context.Context, limit int, nextToken *string) ([]domain.Reimbursement, *string, error) {
	args := []interface{}{limit + 1}
	query := reimbursementSelect + " WHERE 1=1"
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
		return nil, nil, apperrors.NewAppError(500, "failed to query reimbursements", err)
	}
	defer rows.Close()

	reimbursements := []domain.Reimbursement{}
	for rows.Next() {
		m, err := scanReimbursement(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan reimbursement row", err)
		}
		reimbursements = append(reimbursements, mapping.ToDomainReimbursement(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating reimbursement rows", err)
	}

	var token *string
	if len(reimbursements) > limit {
		reimbursements = reimbursements[:limit]
		last := reimbursements[len(reimbursements)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.ID)
		token = &t
	}
	return reimbursements, token, nil
}
