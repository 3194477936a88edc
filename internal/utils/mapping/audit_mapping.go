package mapping

import (
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/docflowhq/docflow_backend/internal/models"
)

// ToModelAuditLog converts a domain AuditLog to a model AuditLog
func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	m := models.AuditLog{
		ID:         d.ID,
		DocumentID: d.DocumentID,
		UserID:     d.UserID,
		Action:     d.Action,
		Note:       d.Note,
		CreatedAt:  d.CreatedAt,
	}
	if d.FromStatus != nil {
		s := string(*d.FromStatus)
		m.FromStatus = &s
	}
	if d.ToStatus != nil {
		s := string(*d.ToStatus)
		m.ToStatus = &s
	}
	return m
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLog
func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	d := domain.AuditLog{
		ID:         m.ID,
		DocumentID: m.DocumentID,
		UserID:     m.UserID,
		Action:     m.Action,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
	if m.FromStatus != nil {
		s := domain.DocumentStatus(*m.FromStatus)
		d.FromStatus = &s
	}
	if m.ToStatus != nil {
		s := domain.DocumentStatus(*m.ToStatus)
		d.ToStatus = &s
	}
	return d
}

// ToDomainAuditLogSlice converts a slice of model AuditLogs to domain AuditLogs
func ToDomainAuditLogSlice(ms []models.AuditLog) []domain.AuditLog {
	ds := make([]domain.AuditLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditLog(m)
	}
	return ds
}
