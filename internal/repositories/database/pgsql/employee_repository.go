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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee records.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeSelect = `
	SELECT id, user_id, manager_id, full_name, email, created_at
	FROM employees
`

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(&m.ID, &m.UserID, &m.ManagerID, &m.FullName, &m.Email, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	m, err := scanEmployee(r.Pool.QueryRow(ctx, employeeSelect+" WHERE id = $1;", employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee by ID "+strconv.FormatInt(employeeID, 10), err)
	}
	d := mapping.ToDomainEmployee(*m)
	return &d, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByUserID(ctx context.Context, userID int64) (*domain.Employee, error) {
	m, err := scanEmployee(r.Pool.QueryRow(ctx, employeeSelect+" WHERE user_id = $1;", userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee for user "+strconv.FormatInt(userID, 10), err)
	}
	d := mapping.ToDomainEmployee(*m)
	return &d, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	query := `
		INSERT INTO employees (user_id, manager_id, full_name, email, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		employee.UserID,
		employee.ManagerID,
		employee.FullName,
		employee.Email,
		employee.CreatedAt,
	).Scan(&employee.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to insert employee", err)
	}
	return &employee, nil
}
