package dto

import (
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// AuditLogResponse defines one audit trail entry as returned to clients.
type AuditLogResponse struct {
	ID         int64     `json:"id"`
	DocumentID int64     `json:"documentID"`
	UserID     int64     `json:"userID"`
	Action     string    `json:"action"`
	FromStatus *string   `json:"fromStatus,omitempty"`
	ToStatus   *string   `json:"toStatus,omitempty"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuditTrailResponse wraps a document's full audit trail.
type AuditTrailResponse struct {
	DocumentID int64              `json:"documentID"`
	Entries    []AuditLogResponse `json:"entries"`
}

// ToAuditLogResponse converts a domain.AuditLog to AuditLogResponse DTO.
func ToAuditLogResponse(e *domain.AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:         e.ID,
		DocumentID: e.DocumentID,
		UserID:     e.UserID,
		Action:     e.Action,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
	if e.FromStatus != nil {
		s := string(*e.FromStatus)
		resp.FromStatus = &s
	}
	if e.ToStatus != nil {
		s := string(*e.ToStatus)
		resp.ToStatus = &s
	}
	return resp
}

// ToAuditTrailResponse converts a document's audit entries to the trail DTO.
func ToAuditTrailResponse(documentID int64, entries []domain.AuditLog) AuditTrailResponse {
	return AuditTrailResponse{DocumentID: documentID, Entries: ToAuditLogResponses(entries)}
}

// ToAuditLogResponses converts a slice of domain audit entries to DTOs.
func ToAuditLogResponses(entries []domain.AuditLog) []AuditLogResponse {
	res := make([]AuditLogResponse, len(entries))
	for i, e := range entries {
		res[i] = ToAuditLogResponse(&e)
	}
	return res
}

// AuditLogCountResponse reports how many audit entries a document has.
type AuditLogCountResponse struct {
	DocumentID int64 `json:"documentID"`
	Count      int64 `json:"count"`
}

// ListAuditLogsParams defines query parameters for paged audit log listings.
type ListAuditLogsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// AuditLogRangeParams defines query parameters for the date-range listing.
type AuditLogRangeParams struct {
	From   time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To     time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit  int       `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int       `form:"offset,default=0" binding:"omitempty,min=0"`
}
