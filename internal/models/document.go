package models

import "time"

// Document mirrors the documents table: the shared header row for every
// document kind.
type Document struct {
	ID          int64     `json:"id"`
	DocType     string    `json:"docType"`
	Status      string    `json:"status"`
	OwnerUserID int64     `json:"ownerUserID"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
