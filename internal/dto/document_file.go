package dto

import (
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
)

// DocumentFileResponse defines the metadata returned for an attachment.
type DocumentFileResponse struct {
	ID          int64     `json:"id"`
	DocumentID  int64     `json:"documentID"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	UploadedBy  int64     `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToDocumentFileResponse converts a domain.DocumentFile to DocumentFileResponse DTO.
func ToDocumentFileResponse(f *domain.DocumentFile) DocumentFileResponse {
	return DocumentFileResponse{
		ID:          f.ID,
		DocumentID:  f.DocumentID,
		FileName:    f.FileName,
		ContentType: f.ContentType,
		SizeBytes:   f.SizeBytes,
		UploadedBy:  f.UploadedBy,
		CreatedAt:   f.CreatedAt,
	}
}

// ToListDocumentFilesResponse converts attachment metadata to response DTOs.
func ToListDocumentFilesResponse(files []domain.DocumentFile) []DocumentFileResponse {
	res := make([]DocumentFileResponse, len(files))
	for i, f := range files {
		res[i] = ToDocumentFileResponse(&f)
	}
	return res
}
