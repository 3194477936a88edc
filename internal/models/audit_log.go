package models

import "time"

// AuditLog mirrors the audit_logs table. FromStatus and ToStatus are NULL
// for action-only entries.
type AuditLog struct {
	ID         int64     `json:"id"`
	DocumentID int64     `json:"documentID"`
	UserID     int64     `json:"userID"`
	Action     string    `json:"action"`
	FromStatus *string   `json:"fromStatus"`
	ToStatus   *string   `json:"toStatus"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
}
