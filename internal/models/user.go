package models

import "time"

// User mirrors the users table. Roles come from the user_roles join table
// and are loaded alongside the row.
type User struct {
	ID                     int64      `json:"id"`
	Email                  string     `json:"email"`
	Name                   string     `json:"name"`
	PasswordHash           string     `json:"-"`
	Roles                  []string   `json:"roles"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
	RefreshTokenHash       *string    `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// Employee mirrors the employees table.
type Employee struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userID"`
	ManagerID *int64    `json:"managerID"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
