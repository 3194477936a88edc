package domain

import "time"

// AuditLog is one immutable entry in a document's audit trail. FromStatus
// and ToStatus are nil for entries that record an action rather than a
// status change (for example a duplicate-submission note).
type AuditLog struct {
	ID         int64           `json:"id"`
	DocumentID int64           `json:"documentID"`
	UserID     int64           `json:"userID"`
	Action     string          `json:"action"`
	FromStatus *DocumentStatus `json:"fromStatus,omitempty"`
	ToStatus   *DocumentStatus `json:"toStatus,omitempty"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
