package repositories

import (
	"context"
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user (with roles) by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, for login.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and their role assignments, returning the created user.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateUser updates an existing user's details and role assignments.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hash and expiry of the user's current refresh token.
	UpdateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiryTime *time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// EmployeeReader defines read operations for employee records
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee record by its ID.
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)

	// FindEmployeeByUserID retrieves the employee record linked to a user account, if any.
	FindEmployeeByUserID(ctx context.Context, userID int64) (*domain.Employee, error)
}

// EmployeeWriter defines write operations for employee records
type EmployeeWriter interface {
	// SaveEmployee persists a new employee record.
	SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
}

// EmployeeRepositoryFacade combines all employee repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
