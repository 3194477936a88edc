package domain

import "time"

// RoleName is the closed set of roles the authorization policy understands.
// Role membership is flat: a user simply holds zero or more of these tags.
type RoleName string

const (
	RoleAdmin    RoleName = "ADMIN"
	RoleManager  RoleName = "MANAGER"
	RoleFinance  RoleName = "FINANCE"
	RoleEmployee RoleName = "EMPLOYEE"
)

// User represents an authenticated user of the application.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Roles        []RoleName `json:"roles"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	// Refresh token state (hash only; the raw token is never stored).
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// HasRole reports whether the user holds the given role. Matching is by exact
// name; there is no role hierarchy.
func (u *User) HasRole(role RoleName) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Employee is the organizational record behind expense claims and
// reimbursements. ManagerID references the approving employee; nil means no
// manager is assigned and manager-gated approvals are impossible.
type Employee struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userID"`
	ManagerID *int64    `json:"managerID,omitempty"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
