package domain

import "time"

// DocumentFile is an attachment stored in object storage and linked to a
// document. ObjectKey is the key within the configured bucket.
type DocumentFile struct {
	ID          int64     `json:"id"`
	DocumentID  int64     `json:"documentID"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	ObjectKey   string    `json:"-"`
	UploadedBy  int64     `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
