package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portsrepo "github.com/docflowhq/docflow_backend/internal/core/ports/repositories"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/middleware"
)

// documentFileService stores attachment content in object storage and its
// metadata in the database.
type documentFileService struct {
	fileRepo     portsrepo.DocumentFileRepositoryFacade
	documentRepo portsrepo.DocumentReader
	store        portsrepo.ObjectStore
	auditService portssvc.AuditSvc
}

// NewDocumentFileService creates a new attachment service.
func NewDocumentFileService(fileRepo portsrepo.DocumentFileRepositoryFacade, documentRepo portsrepo.DocumentReader, store portsrepo.ObjectStore, auditService portssvc.AuditSvc) portssvc.DocumentFileSvcFacade {
	return &documentFileService{
		fileRepo:     fileRepo,
		documentRepo: documentRepo,
		store:        store,
		auditService: auditService,
	}
}

var _ portssvc.DocumentFileSvcFacade = (*documentFileService)(nil)

// UploadDocumentFile streams an attachment to object storage and records its
// metadata. The object key is random so file names never collide.
func (s *documentFileService) UploadDocumentFile(ctx context.Context, documentID int64, fileName, contentType string, size int64, content io.Reader, uploader *domain.User) (*domain.DocumentFile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.documentRepo.FindDocumentByID(ctx, documentID); err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("documents/%d/%s", documentID, uuid.NewString())
	if err := s.store.PutObject(ctx, objectKey, content, size, contentType); err != nil {
		logger.Error("Failed to upload attachment content", slog.Int64("document_id", documentID), slog.String("error", err.Error()))
		return nil, err
	}

	file := domain.DocumentFile{
		DocumentID:  documentID,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   size,
		ObjectKey:   objectKey,
		UploadedBy:  uploader.ID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.fileRepo.SaveDocumentFile(ctx, file)
	if err != nil {
		logger.Error("Failed to save attachment metadata", slog.Int64("document_id", documentID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.auditService.RecordAction(ctx, documentID, uploader.ID, domain.ActionFileUploaded, fileName); err != nil {
		return nil, err
	}

	logger.Info("Attachment uploaded", slog.Int64("document_id", documentID), slog.Int64("file_id", created.ID), slog.Int64("size_bytes", size))
	return created, nil
}

// GetDocumentFile retrieves attachment metadata and a reader over its content.
func (s *documentFileService) GetDocumentFile(ctx context.Context, fileID int64) (*domain.DocumentFile, io.ReadCloser, error) {
	file, err := s.fileRepo.FindDocumentFileByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.store.GetObject(ctx, file.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return file, content, nil
}

// ListDocumentFiles retrieves all attachment metadata for a document.
func (s *documentFileService) ListDocumentFiles(ctx context.Context, documentID int64) ([]domain.DocumentFile, error) {
	return s.fileRepo.FindDocumentFilesByDocumentID(ctx, documentID)
}

// DeleteDocumentFile removes an attachment's metadata row and then its stored
// content. The metadata row goes first so a failed object removal leaves an
// orphaned object rather than a dangling reference.
func (s *documentFileService) DeleteDocumentFile(ctx context.Context, fileID int64, actor *domain.User) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	file, err := s.fileRepo.FindDocumentFileByID(ctx, fileID)
	if err != nil {
		return err
	}

	if err := s.fileRepo.DeleteDocumentFile(ctx, fileID); err != nil {
		return err
	}

	if err := s.store.RemoveObject(ctx, file.ObjectKey); err != nil {
		logger.Error("Failed to remove attachment content", slog.Int64("file_id", fileID), slog.String("object_key", file.ObjectKey), slog.String("error", err.Error()))
		return err
	}

	if err := s.auditService.RecordAction(ctx, file.DocumentID, actor.ID, domain.ActionFileDeleted, file.FileName); err != nil {
		return err
	}

	logger.Info("Attachment deleted", slog.Int64("document_id", file.DocumentID), slog.Int64("file_id", fileID))
	return nil
}
