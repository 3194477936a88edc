package domain

import "time"

// DocumentStatus is the lifecycle state of a business document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "DRAFT"
	StatusPending   DocumentStatus = "PENDING"
	StatusApproved  DocumentStatus = "APPROVED"
	StatusRejected  DocumentStatus = "REJECTED"
	StatusPaid      DocumentStatus = "PAID"
	StatusCancelled DocumentStatus = "CANCELLED"
)

// DocumentType discriminates the concrete document variant. Fixed at creation.
type DocumentType string

const (
	DocTypeInvoiceIn     DocumentType = "INVOICE_IN"
	DocTypeInvoiceOut    DocumentType = "INVOICE_OUT"
	DocTypeExpenseClaim  DocumentType = "EXPENSE_CLAIM"
	DocTypeReimbursement DocumentType = "REIMBURSEMENT"
)

// DocumentHeader holds the fields shared by every document kind. Kind-specific
// payload structs embed it; DocType is the discriminant.
//
// Status is mutated only through the status state machine. Version is the
// optimistic-concurrency stamp: every persisted mutation increments it, and a
// write carrying a stale version fails with ErrVersionConflict.
type DocumentHeader struct {
	ID          int64          `json:"id"`
	DocType     DocumentType   `json:"docType"`
	Status      DocumentStatus `json:"status"`
	OwnerUserID int64          `json:"ownerUserID"`
	Version     int            `json:"version"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Audit action labels recorded against documents.
const (
	ActionCreated   = "CREATED"
	ActionSubmitted = "SUBMITTED"
	ActionApproved  = "APPROVED"
	ActionRejected  = "REJECTED"
	ActionPaid      = "PAID"
	ActionCancelled = "CANCELLED"
	ActionFileUploaded = "FILE_UPLOADED"
	ActionFileDeleted  = "FILE_DELETED"
)
