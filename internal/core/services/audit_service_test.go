package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAuditLogsByDocumentID(ctx context.Context, documentID int64) ([]domain.AuditLog, error) {
	args := m.Called(ctx, documentID)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditLogRepository) FindAuditLogsByDocumentIDPaged(ctx context.Context, documentID int64, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, documentID, limit, offset)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditLogRepository) FindAuditLogsByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, userID, limit, offset)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditLogRepository) FindAuditLogsByAction(ctx context.Context, action string, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, action, limit, offset)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditLogRepository) FindAuditLogsByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, from, to, limit, offset)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditLogRepository) FindAuditLogsByDocumentIDAndAction(ctx context.Context, documentID int64, action string) ([]domain.AuditLog, error) {
	args := m.Called(ctx, documentID, action)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditLogRepository) CountAuditLogsByDocumentID(ctx context.Context, documentID int64) (int64, error) {
	args := m.Called(ctx, documentID)
	return args.Get(0).(int64), args.Error(1)
}

type AuditServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAuditLogRepository
	service  portssvc.AuditSvc
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAuditLogRepository)
	suite.service = services.NewAuditService(suite.mockRepo)
}

func (suite *AuditServiceTestSuite) TestRecordTransitionCarriesBothStatuses() {
	ctx := context.Background()

	suite.mockRepo.On("SaveAuditLog", ctx, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.DocumentID == 7 &&
			entry.UserID == 3 &&
			entry.Action == domain.ActionSubmitted &&
			entry.FromStatus != nil && *entry.FromStatus == domain.StatusDraft &&
			entry.ToStatus != nil && *entry.ToStatus == domain.StatusPending &&
			entry.Note == "ready for review" &&
			!entry.CreatedAt.IsZero()
	})).Return(nil).Once()

	err := suite.service.RecordTransition(ctx, 7, 3, domain.ActionSubmitted, domain.StatusDraft, domain.StatusPending, "ready for review")

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestRecordActionLeavesStatusesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("SaveAuditLog", ctx, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.DocumentID == 7 &&
			entry.Action == domain.ActionCreated &&
			entry.FromStatus == nil &&
			entry.ToStatus == nil
	})).Return(nil).Once()

	err := suite.service.RecordAction(ctx, 7, 3, domain.ActionCreated, "invoice created")

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestRecordActionPropagatesRepositoryError() {
	ctx := context.Background()

	suite.mockRepo.On("SaveAuditLog", ctx, mock.Anything).Return(assert.AnError).Once()

	err := suite.service.RecordAction(ctx, 7, 3, domain.ActionCreated, "")

	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestGetTrailReturnsEntriesInOrder() {
	ctx := context.Background()
	trail := []domain.AuditLog{
		{ID: 1, DocumentID: 7, Action: domain.ActionCreated},
		{ID: 2, DocumentID: 7, Action: domain.ActionSubmitted},
	}

	suite.mockRepo.On("FindAuditLogsByDocumentID", ctx, int64(7)).Return(trail, nil).Once()

	got, err := suite.service.GetTrail(ctx, 7)

	suite.NoError(err)
	suite.Len(got, 2)
	suite.Equal(domain.ActionCreated, got[0].Action)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestGetTrailPageNormalizesPaging() {
	ctx := context.Background()

	suite.mockRepo.On("FindAuditLogsByDocumentIDPaged", ctx, int64(7), 20, 0).
		Return([]domain.AuditLog{{ID: 2, DocumentID: 7}}, nil).Once()

	got, err := suite.service.GetTrailPage(ctx, 7, 0, -3)

	suite.NoError(err)
	suite.Len(got, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestGetByDateRange() {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	suite.mockRepo.On("FindAuditLogsByDateRange", ctx, from, to, 50, 10).
		Return([]domain.AuditLog{}, nil).Once()

	got, err := suite.service.GetByDateRange(ctx, from, to, 50, 10)

	suite.NoError(err)
	suite.Empty(got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestCountByDocument() {
	ctx := context.Background()

	suite.mockRepo.On("CountAuditLogsByDocumentID", ctx, int64(7)).Return(int64(4), nil).Once()

	count, err := suite.service.CountByDocument(ctx, 7)

	suite.NoError(err)
	suite.Equal(int64(4), count)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
