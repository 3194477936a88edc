package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	"github.com/docflowhq/docflow_backend/internal/models"
	"github.com/docflowhq/docflow_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelect = `
	SELECT id, email, name, password_hash, created_at, updated_at, refresh_token_hash, refresh_token_expiry_time
	FROM users
`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.ID,
		&m.Email,
		&m.Name,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) loadRoles(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role;`, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query user roles", err)
	}
	defer rows.Close()

	roles := []string{}
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user role row", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user role rows", err)
	}
	return roles, nil
}

func insertRoles(ctx context.Context, tx pgx.Tx, userID int64, roles []domain.RoleName) error {
	batch := &pgx.Batch{}
	for _, role := range roles {
		batch.Queue(`INSERT INTO user_roles (user_id, role) VALUES ($1, $2);`, userID, string(role))
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range roles {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// SaveUser inserts the user row and their role assignments in one transaction.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO users (email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, query, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to insert user", err)
	}

	if err := insertRoles(ctx, tx, user.ID, user.Roles); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert user roles", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByID retrieves a user and their roles by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	m, err := scanUser(r.Pool.QueryRow(ctx, userSelect+" WHERE id = $1;", userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by ID "+strconv.FormatInt(userID, 10), err)
	}
	roles, err := r.loadRoles(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	m.Roles = roles
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

// FindUserByEmail retrieves a user and their roles by email address.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m, err := scanUser(r.Pool.QueryRow(ctx, userSelect+" WHERE email = $1;", email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by email", err)
	}
	roles, err := r.loadRoles(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	m.Roles = roles
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

// FindUsers retrieves a page of users ordered by creation time descending.
func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.Pool.Query(ctx, userSelect+" ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2;", limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user row", err)
		}
		roles, err := r.loadRoles(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		m.Roles = roles
		users = append(users, mapping.ToDomainUser(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user rows", err)
	}
	return users, nil
}

// UpdateUser updates the user row and replaces their role assignments.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE users
		SET email = $1, name = $2, updated_at = $3
		WHERE id = $4;
	`
	cmdTag, err := tx.Exec(ctx, query, user.Email, user.Name, user.UpdatedAt, user.ID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1;`, user.ID); err != nil {
		return apperrors.NewAppError(500, "failed to clear user roles", err)
	}
	if err := insertRoles(ctx, tx, user.ID, user.Roles); err != nil {
		return apperrors.NewAppError(500, "failed to insert user roles", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateRefreshToken stores the hash and expiry of the user's refresh token.
// A nil expiry together with an empty hash clears the token.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiryTime *time.Time) error {
	var hash *string
	if tokenHash != "" {
		hash = &tokenHash
	}
	query := `
		UPDATE users
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2
		WHERE id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, hash, expiryTime, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update refresh token", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
