package pgsql

import (
	"context"
	"strconv"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) FindPaymentsByDocumentID(ctx context.Context, documentID int64) ([]domain.Payment, error) {
	query := `
		SELECT id, document_id, direction, method, amount, currency, paid_at, reference, created_by, created_at
		FROM payments
		WHERE document_id = $1
		ORDER BY paid_at ASC, id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for document "+strconv.FormatInt(documentID, 10), err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(
			&p.ID,
			&p.DocumentID,
			&p.Direction,
			&p.Method,
			&p.Amount,
			&p.Currency,
			&p.PaidAt,
			&p.Reference,
			&p.CreatedBy,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (document_id, direction, method, amount, currency, paid_at, reference, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		payment.DocumentID,
		string(payment.Direction),
		string(payment.Method),
		payment.Amount,
		payment.Currency,
		payment.PaidAt,
		payment.Reference,
		payment.CreatedBy,
		payment.CreatedAt,
	).Scan(&payment.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment", err)
	}
	return &payment, nil
}
