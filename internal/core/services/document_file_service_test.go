package services_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/core/services"
)

type MockDocumentFileRepository struct {
	mock.Mock
}

func (m *MockDocumentFileRepository) FindDocumentFileByID(ctx context.Context, fileID int64) (*domain.DocumentFile, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentFile), args.Error(1)
}

func (m *MockDocumentFileRepository) FindDocumentFilesByDocumentID(ctx context.Context, documentID int64) ([]domain.DocumentFile, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentFile), args.Error(1)
}

func (m *MockDocumentFileRepository) SaveDocumentFile(ctx context.Context, file domain.DocumentFile) (*domain.DocumentFile, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentFile), args.Error(1)
}

func (m *MockDocumentFileRepository) DeleteDocumentFile(ctx context.Context, fileID int64) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PutObject(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, content, size, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockObjectStore) RemoveObject(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type DocumentFileServiceTestSuite struct {
	suite.Suite
	fileRepo     *MockDocumentFileRepository
	documentRepo *MockDocumentRepository
	store        *MockObjectStore
	auditService *MockAuditService
	service      portssvc.DocumentFileSvcFacade
	ctx          context.Context
}

func (suite *DocumentFileServiceTestSuite) SetupTest() {
	suite.fileRepo = new(MockDocumentFileRepository)
	suite.documentRepo = new(MockDocumentRepository)
	suite.store = new(MockObjectStore)
	suite.auditService = new(MockAuditService)
	suite.service = services.NewDocumentFileService(suite.fileRepo, suite.documentRepo, suite.store, suite.auditService)
	suite.ctx = context.Background()
}

func storedFile(fileID, documentID int64) *domain.DocumentFile {
	return &domain.DocumentFile{
		ID:          fileID,
		DocumentID:  documentID,
		FileName:    "receipt.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
		ObjectKey:   "documents/7/abc",
		UploadedBy:  3,
		CreatedAt:   time.Now().UTC(),
	}
}

func (suite *DocumentFileServiceTestSuite) TestUploadStoresContentThenMetadata() {
	uploader := userWithRoles(3, domain.RoleEmployee)
	content := bytes.NewBufferString("%PDF-1.7")

	suite.documentRepo.On("FindDocumentByID", suite.ctx, int64(7)).
		Return(&domain.DocumentHeader{ID: 7, Status: domain.StatusDraft, Version: 1}, nil).Once()
	suite.store.On("PutObject", suite.ctx, mock.AnythingOfType("string"), content, int64(8), "application/pdf").
		Return(nil).Once()
	suite.fileRepo.On("SaveDocumentFile", suite.ctx, mock.MatchedBy(func(f domain.DocumentFile) bool {
		return f.DocumentID == 7 && f.FileName == "receipt.pdf" && f.UploadedBy == 3 && f.ObjectKey != ""
	})).Return(storedFile(11, 7), nil).Once()
	suite.auditService.On("RecordAction", suite.ctx, int64(7), int64(3), domain.ActionFileUploaded, "receipt.pdf").
		Return(nil).Once()

	created, err := suite.service.UploadDocumentFile(suite.ctx, 7, "receipt.pdf", "application/pdf", 8, content, uploader)

	suite.NoError(err)
	suite.Equal(int64(11), created.ID)
	suite.fileRepo.AssertExpectations(suite.T())
	suite.auditService.AssertExpectations(suite.T())
}

func (suite *DocumentFileServiceTestSuite) TestUploadRequiresExistingDocument() {
	uploader := userWithRoles(3, domain.RoleEmployee)

	suite.documentRepo.On("FindDocumentByID", suite.ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UploadDocumentFile(suite.ctx, 99, "receipt.pdf", "application/pdf", 8, bytes.NewBufferString("x"), uploader)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.store.AssertNotCalled(suite.T(), "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentFileServiceTestSuite) TestDeleteRemovesRowThenObject() {
	actor := userWithRoles(5, domain.RoleAdmin)

	suite.fileRepo.On("FindDocumentFileByID", suite.ctx, int64(11)).Return(storedFile(11, 7), nil).Once()
	suite.fileRepo.On("DeleteDocumentFile", suite.ctx, int64(11)).Return(nil).Once()
	suite.store.On("RemoveObject", suite.ctx, "documents/7/abc").Return(nil).Once()
	suite.auditService.On("RecordAction", suite.ctx, int64(7), int64(5), domain.ActionFileDeleted, "receipt.pdf").
		Return(nil).Once()

	err := suite.service.DeleteDocumentFile(suite.ctx, 11, actor)

	suite.NoError(err)
	suite.fileRepo.AssertExpectations(suite.T())
	suite.store.AssertExpectations(suite.T())
	suite.auditService.AssertExpectations(suite.T())
}

func (suite *DocumentFileServiceTestSuite) TestDeleteUnknownFile() {
	actor := userWithRoles(5, domain.RoleAdmin)

	suite.fileRepo.On("FindDocumentFileByID", suite.ctx, int64(404)).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteDocumentFile(suite.ctx, 404, actor)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.fileRepo.AssertNotCalled(suite.T(), "DeleteDocumentFile", mock.Anything, mock.Anything)
	suite.store.AssertNotCalled(suite.T(), "RemoveObject", mock.Anything, mock.Anything)
}

func (suite *DocumentFileServiceTestSuite) TestDeleteKeepsMetadataErrorWhenRowDeleteFails() {
	actor := userWithRoles(5, domain.RoleAdmin)

	suite.fileRepo.On("FindDocumentFileByID", suite.ctx, int64(11)).Return(storedFile(11, 7), nil).Once()
	suite.fileRepo.On("DeleteDocumentFile", suite.ctx, int64(11)).Return(assert.AnError).Once()

	err := suite.service.DeleteDocumentFile(suite.ctx, 11, actor)

	suite.ErrorIs(err, assert.AnError)
	suite.store.AssertNotCalled(suite.T(), "RemoveObject", mock.Anything, mock.Anything)
	suite.auditService.AssertNotCalled(suite.T(), "RecordAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentFileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentFileServiceTestSuite))
}
