package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/middleware"
	"github.com/docflowhq/docflow_backend/internal/utils"
)

// userService provides user management and password authentication.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser creates a new user with a bcrypt-hashed password. Users created
// without explicit roles get EMPLOYEE.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	roles := make([]domain.RoleName, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, domain.RoleName(r))
	}
	if len(roles) == 0 {
		roles = append(roles, domain.RoleEmployee)
	}

	now := time.Now().UTC()
	user := domain.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		logger.Error("Failed to create user", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("User created", slog.Int64("user_id", created.ID), slog.String("email", created.Email))
	return created, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByEmail retrieves a user by email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

// ListUsers retrieves a paginated list of users.
func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.userRepo.FindUsers(ctx, limit, offset)
}

// UpdateUser updates a user's name and roles. Only ADMIN or the user
// themselves may update, and only ADMIN may change roles.
func (s *userService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest, requestingUser *domain.User) (*domain.User, error) {
	if requestingUser.ID != userID && !requestingUser.HasRole(domain.RoleAdmin) {
		return nil, apperrors.NewUnauthorizedActionError("only ADMIN or the user themselves can update a user")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Roles != nil {
		if !requestingUser.HasRole(domain.RoleAdmin) {
			return nil, apperrors.NewUnauthorizedActionError("only ADMIN can change user roles")
		}
		roles := make([]domain.RoleName, 0, len(req.Roles))
		for _, r := range req.Roles {
			roles = append(roles, domain.RoleName(r))
		}
		user.Roles = roles
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateRefreshToken updates the refresh token details for a user.
func (s *userService) UpdateRefreshToken(ctx context.Context, userID int64, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, &refreshTokenExpiryTime)
}

// ClearRefreshToken clears the refresh token for a user.
func (s *userService) ClearRefreshToken(ctx context.Context, userID int64) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "", nil)
}

// AuthenticateUser authenticates a user with email and password. Lookup
// failure and password mismatch both surface as ErrUnauthorized so the
// response does not leak which part failed.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Password mismatch on login", slog.Int64("user_id", user.ID))
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
