package mapping

import (
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/docflowhq/docflow_backend/internal/models"
)

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	roles := make([]domain.RoleName, len(m.Roles))
	for i, r := range m.Roles {
		roles[i] = domain.RoleName(r)
	}
	d := domain.User{
		ID:                     m.ID,
		Email:                  m.Email,
		Name:                   m.Name,
		PasswordHash:           m.PasswordHash,
		Roles:                  roles,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
	}
	if m.RefreshTokenHash != nil {
		d.RefreshTokenHash = *m.RefreshTokenHash
	}
	return d
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		ID:        m.ID,
		UserID:    m.UserID,
		ManagerID: m.ManagerID,
		FullName:  m.FullName,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}
