package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/core/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mocks for the full repository facades the reimbursement service uses ---

type MockReimbursementRepository struct {
	mock.Mock
}

func (m *MockReimbursementRepository) FindReimbursementByID(ctx context.Context, documentID int64) (*domain.Reimbursement, error) {
	args := m.Called(ctx, documentID)
	var r *domain.Reimbursement
	if args.Get(0) != nil {
		r = args.Get(0).(*domain.Reimbursement)
	}
	return r, args.Error(1)
}

func (m *MockReimbursementRepository) FindReimbursementByClaimID(ctx context.Context, expenseClaimID int64) (*domain.Reimbursement, error) {
	args := m.Called(ctx, expenseClaimID)
	var r *domain.Reimbursement
	if args.Get(0) != nil {
		r = args.Get(0).(*domain.Reimbursement)
	}
	return r, args.Error(1)
}

func (m *MockReimbursementRepository) ListReimbursements(ctx context.Context, limit int, nextToken *string) ([]domain.Reimbursement, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var rs []domain.Reimbursement
	if args.Get(0) != nil {
		rs = args.Get(0).([]domain.Reimbursement)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return rs, token, args.Error(2)
}

func (m *MockReimbursementRepository) SaveReimbursement(ctx context.Context, reimbursement domain.Reimbursement) (*domain.Reimbursement, error) {
	args := m.Called(ctx, reimbursement)
	var r *domain.Reimbursement
	if args.Get(0) != nil {
		r = args.Get(0).(*domain.Reimbursement)
	}
	return r, args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentsByDocumentID(ctx context.Context, documentID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, documentID)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	var p *domain.Payment
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Payment)
	}
	return p, args.Error(1)
}

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID int64) (*domain.DocumentHeader, error) {
	args := m.Called(ctx, documentID)
	var h *domain.DocumentHeader
	if args.Get(0) != nil {
		h = args.Get(0).(*domain.DocumentHeader)
	}
	return h, args.Error(1)
}

func (m *MockDocumentRepository) SaveStatus(ctx context.Context, documentID int64, status domain.DocumentStatus, expectedVersion int, updatedAt time.Time) error {
	args := m.Called(ctx, documentID, status, expectedVersion, updatedAt)
	return args.Error(0)
}

type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) AuthorizeDecision(ctx context.Context, actor *domain.User, documentID int64, docType domain.DocumentType) error {
	args := m.Called(ctx, actor, documentID, docType)
	return args.Error(0)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) RecordTransition(ctx context.Context, documentID int64, userID int64, action string, from, to domain.DocumentStatus, note string) error {
	args := m.Called(ctx, documentID, userID, action, from, to, note)
	return args.Error(0)
}

func (m *MockAuditService) RecordAction(ctx context.Context, documentID int64, userID int64, action string, note string) error {
	args := m.Called(ctx, documentID, userID, action, note)
	return args.Error(0)
}

func (m *MockAuditService) GetTrail(ctx context.Context, documentID int64) ([]domain.AuditLog, error) {
	args := m.Called(ctx, documentID)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditService) GetTrailPage(ctx context.Context, documentID int64, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, documentID, limit, offset)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditService) GetByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, userID, limit, offset)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditService) GetByAction(ctx context.Context, action string, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, action, limit, offset)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditService) GetByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, from, to, limit, offset)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditService) GetByDocumentAndAction(ctx context.Context, documentID int64, action string) ([]domain.AuditLog, error) {
	args := m.Called(ctx, documentID, action)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

func (m *MockAuditService) CountByDocument(ctx context.Context, documentID int64) (int64, error) {
	args := m.Called(ctx, documentID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---

type ReimbursementServiceTestSuite struct {
	suite.Suite
	mockReimbursementRepo *MockReimbursementRepository
	mockClaimRepo         *MockExpenseClaimReader
	mockPaymentRepo       *MockPaymentRepository
	mockDocumentRepo      *MockDocumentRepository
	mockApproval          *MockApprovalService
	mockAudit             *MockAuditService
	service               portssvc.ReimbursementSvcFacade
}

func (suite *ReimbursementServiceTestSuite) SetupTest() {
	suite.mockReimbursementRepo = new(MockReimbursementRepository)
	suite.mockClaimRepo = new(MockExpenseClaimReader)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockDocumentRepo = new(MockDocumentRepository)
	suite.mockApproval = new(MockApprovalService)
	suite.mockAudit = new(MockAuditService)
	suite.service = services.NewReimbursementService(
		suite.mockReimbursementRepo,
		suite.mockClaimRepo,
		suite.mockPaymentRepo,
		suite.mockDocumentRepo,
		services.NewStatusMachine(),
		suite.mockApproval,
		suite.mockAudit,
		decimal.NewFromFloat(0.01),
	)
}

func approvedClaim(id, employeeID int64, total string) *domain.ExpenseClaim {
	claim := &domain.ExpenseClaim{
		EmployeeID: employeeID,
		Currency:   "EUR",
		Total:      decimal.RequireFromString(total),
	}
	claim.ID = id
	claim.DocType = domain.DocTypeExpenseClaim
	claim.Status = domain.StatusApproved
	return claim
}

func reimbursementWithStatus(id int64, status domain.DocumentStatus, owner int64) *domain.Reimbursement {
	r := &domain.Reimbursement{
		EmployeeID:     5,
		ExpenseClaimID: 30,
		Currency:       "EUR",
		Total:          decimal.RequireFromString("100.00"),
	}
	r.ID = id
	r.DocType = domain.DocTypeReimbursement
	r.Status = status
	r.OwnerUserID = owner
	r.Version = 2
	return r
}

func (suite *ReimbursementServiceTestSuite) TestCreateReimbursement() {
	ctx := context.Background()
	creator := userWithRoles(50, domain.RoleEmployee)
	req := dto.CreateReimbursementRequest{
		ExpenseClaimID: 30,
		RequestedDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Currency:       "EUR",
		Total:          decimal.RequireFromString("100.01"),
	}

	suite.mockClaimRepo.On("FindExpenseClaimByID", ctx, int64(30)).Return(approvedClaim(30, 5, "100.00"), nil).Once()
	suite.mockReimbursementRepo.On("FindReimbursementByClaimID", ctx, int64(30)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockReimbursementRepo.On("SaveReimbursement", ctx, mock.MatchedBy(func(r domain.Reimbursement) bool {
		return r.Status == domain.StatusDraft &&
			r.EmployeeID == 5 &&
			r.ExpenseClaimID == 30 &&
			r.OwnerUserID == 50 &&
			r.Total.Equal(req.Total)
	})).Return(reimbursementWithStatus(40, domain.StatusDraft, 50), nil).Once()
	suite.mockAudit.On("RecordAction", ctx, int64(40), int64(50), domain.ActionCreated, mock.Anything).Return(nil).Once()

	created, err := suite.service.CreateReimbursement(ctx, req, creator)

	suite.Require().NoError(err)
	suite.Equal(int64(40), created.ID)
	suite.mockReimbursementRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestCreateReimbursementRequiresApprovedClaim() {
	ctx := context.Background()
	claim := approvedClaim(30, 5, "100.00")
	claim.Status = domain.StatusPending

	suite.mockClaimRepo.On("FindExpenseClaimByID", ctx, int64(30)).Return(claim, nil).Once()

	_, err := suite.service.CreateReimbursement(ctx, dto.CreateReimbursementRequest{
		ExpenseClaimID: 30,
		Currency:       "EUR",
		Total:          decimal.RequireFromString("100.00"),
	}, userWithRoles(50, domain.RoleEmployee))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockReimbursementRepo.AssertNotCalled(suite.T(), "SaveReimbursement", mock.Anything, mock.Anything)
}

func (suite *ReimbursementServiceTestSuite) TestCreateReimbursementRejectsSecondReimbursement() {
	ctx := context.Background()

	suite.mockClaimRepo.On("FindExpenseClaimByID", ctx, int64(30)).Return(approvedClaim(30, 5, "100.00"), nil).Once()
	suite.mockReimbursementRepo.On("FindReimbursementByClaimID", ctx, int64(30)).
		Return(reimbursementWithStatus(40, domain.StatusDraft, 50), nil).Once()

	_, err := suite.service.CreateReimbursement(ctx, dto.CreateReimbursementRequest{
		ExpenseClaimID: 30,
		Currency:       "EUR",
		Total:          decimal.RequireFromString("100.00"),
	}, userWithRoles(50, domain.RoleEmployee))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ReimbursementServiceTestSuite) TestCreateReimbursementRejectsTotalOutsideTolerance() {
	ctx := context.Background()

	suite.mockClaimRepo.On("FindExpenseClaimByID", ctx, int64(30)).Return(approvedClaim(30, 5, "100.00"), nil).Once()
	suite.mockReimbursementRepo.On("FindReimbursementByClaimID", ctx, int64(30)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateReimbursement(ctx, dto.CreateReimbursementRequest{
		ExpenseClaimID: 30,
		Currency:       "EUR",
		Total:          decimal.RequireFromString("100.50"),
	}, userWithRoles(50, domain.RoleEmployee))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "differs from claim total")
}

func (suite *ReimbursementServiceTestSuite) TestCreateReimbursementRejectsCurrencyMismatch() {
	ctx := context.Background()

	suite.mockClaimRepo.On("FindExpenseClaimByID", ctx, int64(30)).Return(approvedClaim(30, 5, "100.00"), nil).Once()
	suite.mockReimbursementRepo.On("FindReimbursementByClaimID", ctx, int64(30)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateReimbursement(ctx, dto.CreateReimbursementRequest{
		ExpenseClaimID: 30,
		Currency:       "USD",
		Total:          decimal.RequireFromString("100.00"),
	}, userWithRoles(50, domain.RoleEmployee))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReimbursementServiceTestSuite) TestSubmitReimbursement() {
	ctx := context.Background()
	owner := userWithRoles(50, domain.RoleEmployee)
	reimbursement := reimbursementWithStatus(40, domain.StatusDraft, 50)

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()
	suite.mockDocumentRepo.On("SaveStatus", ctx, int64(40), domain.StatusPending, 2, mock.Anything).Return(nil).Once()
	suite.mockAudit.On("RecordTransition", ctx, int64(40), int64(50), domain.ActionSubmitted,
		domain.StatusDraft, domain.StatusPending, "").Return(nil).Once()

	updated, err := suite.service.SubmitReimbursement(ctx, 40, owner)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, updated.Status)
	suite.Equal(3, updated.Version)
	suite.mockDocumentRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestSubmitReimbursementVersionConflict() {
	ctx := context.Background()
	reimbursement := reimbursementWithStatus(40, domain.StatusDraft, 50)

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()
	suite.mockAudit.On("RecordTransition", ctx, int64(40), int64(50), domain.ActionSubmitted,
		domain.StatusDraft, domain.StatusPending, "").Return(nil).Once()
	suite.mockDocumentRepo.On("SaveStatus", ctx, int64(40), domain.StatusPending, 2, mock.Anything).
		Return(apperrors.ErrVersionConflict).Once()

	_, err := suite.service.SubmitReimbursement(ctx, 40, userWithRoles(50, domain.RoleEmployee))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrVersionConflict)
	suite.Equal(domain.StatusDraft, reimbursement.Status)
	suite.Equal(2, reimbursement.Version)
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestSubmitReimbursementTrailEntrySurvivesFailedSave() {
	ctx := context.Background()
	reimbursement := reimbursementWithStatus(40, domain.StatusDraft, 50)

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()
	suite.mockAudit.On("RecordTransition", ctx, int64(40), int64(50), domain.ActionSubmitted,
		domain.StatusDraft, domain.StatusPending, "").Return(nil).Once()
	suite.mockDocumentRepo.On("SaveStatus", ctx, int64(40), domain.StatusPending, 2, mock.Anything).
		Return(assert.AnError).Once()

	_, err := suite.service.SubmitReimbursement(ctx, 40, userWithRoles(50, domain.RoleEmployee))

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(domain.StatusDraft, reimbursement.Status)
	suite.Equal(2, reimbursement.Version)
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestSubmitReimbursementRepeatRecordsSameStatusEntry() {
	ctx := context.Background()
	owner := userWithRoles(50, domain.RoleEmployee)
	reimbursement := reimbursementWithStatus(40, domain.StatusPending, 50)

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()
	suite.mockAudit.On("RecordTransition", ctx, int64(40), int64(50), domain.ActionSubmitted,
		domain.StatusPending, domain.StatusPending, mock.MatchedBy(func(note string) bool {
			return strings.Contains(note, "already PENDING")
		})).Return(nil).Once()

	updated, err := suite.service.SubmitReimbursement(ctx, 40, owner)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, updated.Status)
	suite.Equal(2, updated.Version)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestSubmitReimbursementRequiresOwner() {
	ctx := context.Background()
	reimbursement := reimbursementWithStatus(40, domain.StatusDraft, 50)

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()

	_, err := suite.service.SubmitReimbursement(ctx, 40, userWithRoles(99, domain.RoleEmployee))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReimbursementServiceTestSuite) TestApproveReimbursementConsultsApprovalPolicy() {
	ctx := context.Background()
	actor := userWithRoles(60, domain.RoleManager)
	reimbursement := reimbursementWithStatus(40, domain.StatusPending, 50)

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()
	suite.mockApproval.On("AuthorizeDecision", ctx, actor, int64(40), domain.DocTypeReimbursement).Return(nil).Once()
	suite.mockDocumentRepo.On("SaveStatus", ctx, int64(40), domain.StatusApproved, 2, mock.Anything).Return(nil).Once()
	suite.mockAudit.On("RecordTransition", ctx, int64(40), int64(60), domain.ActionApproved,
		domain.StatusPending, domain.StatusApproved, "").Return(nil).Once()

	updated, err := suite.service.ApproveReimbursement(ctx, 40, actor)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, updated.Status)
	suite.mockApproval.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestApproveReimbursementDeniedByPolicy() {
	ctx := context.Background()
	actor := userWithRoles(99, domain.RoleEmployee)
	reimbursement := reimbursementWithStatus(40, domain.StatusPending, 50)
	denial := apperrors.NewUnauthorizedActionError("not the claimant's manager")

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()
	suite.mockApproval.On("AuthorizeDecision", ctx, actor, int64(40), domain.DocTypeReimbursement).Return(denial).Once()

	_, err := suite.service.ApproveReimbursement(ctx, 40, actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReimbursementServiceTestSuite) TestCancelReimbursementRefusedAfterApproval() {
	ctx := context.Background()
	reimbursement := reimbursementWithStatus(40, domain.StatusApproved, 50)

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()

	_, err := suite.service.CancelReimbursement(ctx, 40, "changed my mind", userWithRoles(50, domain.RoleEmployee))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *ReimbursementServiceTestSuite) TestCancelReimbursementRefusedWhenAlreadyCancelled() {
	ctx := context.Background()
	reimbursement := reimbursementWithStatus(40, domain.StatusCancelled, 50)

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()

	_, err := suite.service.CancelReimbursement(ctx, 40, "late cancel", userWithRoles(50, domain.RoleEmployee))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockAudit.AssertNotCalled(suite.T(), "RecordTransition",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAudit.AssertNotCalled(suite.T(), "RecordAction",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReimbursementServiceTestSuite) TestPayReimbursement() {
	ctx := context.Background()
	finance := userWithRoles(3, domain.RoleFinance)
	reimbursement := reimbursementWithStatus(40, domain.StatusApproved, 50)
	paidAt := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
	req := dto.RecordPaymentRequest{
		Method:   "BANK",
		Amount:   decimal.RequireFromString("100.00"),
		Currency: "EUR",
		PaidAt:   paidAt,
	}

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()
	suite.mockDocumentRepo.On("SaveStatus", ctx, int64(40), domain.StatusPaid, 2, mock.Anything).Return(nil).Once()
	suite.mockAudit.On("RecordTransition", ctx, int64(40), int64(3), domain.ActionPaid,
		domain.StatusApproved, domain.StatusPaid, mock.Anything).Return(nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.DocumentID == 40 &&
			p.Direction == domain.DirectionOutbound &&
			p.Method == domain.PaymentMethod("BANK") &&
			p.Amount.Equal(req.Amount) &&
			p.CreatedBy == 3
	})).Return(&domain.Payment{ID: 1, DocumentID: 40}, nil).Once()

	updated, err := suite.service.PayReimbursement(ctx, 40, req, finance)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, updated.Status)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestPayReimbursementTwiceRecordsRepeatEntryOnly() {
	ctx := context.Background()
	finance := userWithRoles(3, domain.RoleFinance)
	reimbursement := reimbursementWithStatus(40, domain.StatusPaid, 50)
	req := dto.RecordPaymentRequest{
		Method:   "BANK",
		Amount:   decimal.RequireFromString("100.00"),
		Currency: "EUR",
		PaidAt:   time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC),
	}

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()
	suite.mockAudit.On("RecordTransition", ctx, int64(40), int64(3), domain.ActionPaid,
		domain.StatusPaid, domain.StatusPaid, mock.MatchedBy(func(note string) bool {
			return strings.Contains(note, "already PAID")
		})).Return(nil).Once()

	updated, err := suite.service.PayReimbursement(ctx, 40, req, finance)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, updated.Status)
	suite.Equal(2, updated.Version)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReimbursementServiceTestSuite) TestPayReimbursementRequiresFinance() {
	ctx := context.Background()
	reimbursement := reimbursementWithStatus(40, domain.StatusApproved, 50)

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil).Once()

	_, err := suite.service.PayReimbursement(ctx, 40, dto.RecordPaymentRequest{
		Method:   "BANK",
		Amount:   decimal.RequireFromString("100.00"),
		Currency: "EUR",
		PaidAt:   time.Now(),
	}, userWithRoles(50, domain.RoleEmployee))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestReimbursementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReimbursementServiceTestSuite))
}
