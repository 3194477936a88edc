package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/handlers"
	"github.com/docflowhq/docflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceInService ---
type MockInvoiceInService struct {
	mock.Mock
}

func (m *MockInvoiceInService) GetInvoiceInByID(ctx context.Context, documentID int64) (*domain.InvoiceIn, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceIn), args.Error(1)
}
func (m *MockInvoiceInService) ListInvoicesIn(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListInvoicesInResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListInvoicesInResponse), args.Error(1)
}
func (m *MockInvoiceInService) CreateInvoiceIn(ctx context.Context, req dto.CreateInvoiceInRequest, creator *domain.User) (*domain.InvoiceIn, error) {
	args := m.Called(ctx, req, creator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceIn), args.Error(1)
}
func (m *MockInvoiceInService) UpdateInvoiceIn(ctx context.Context, documentID int64, req dto.UpdateInvoiceInRequest, actor *domain.User) (*domain.InvoiceIn, error) {
	args := m.Called(ctx, documentID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceIn), args.Error(1)
}
func (m *MockInvoiceInService) SubmitInvoiceIn(ctx context.Context, documentID int64, actor *domain.User) (*domain.InvoiceIn, error) {
	args := m.Called(ctx, documentID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceIn), args.Error(1)
}
func (m *MockInvoiceInService) ApproveInvoiceIn(ctx context.Context, documentID int64, actor *domain.User) (*domain.InvoiceIn, error) {
	args := m.Called(ctx, documentID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceIn), args.Error(1)
}
func (m *MockInvoiceInService) RejectInvoiceIn(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.InvoiceIn, error) {
	args := m.Called(ctx, documentID, reason, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceIn), args.Error(1)
}
func (m *MockInvoiceInService) CancelInvoiceIn(ctx context.Context, documentID int64, reason string, actor *domain.User) (*domain.InvoiceIn, error) {
	args := m.Called(ctx, documentID, reason, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceIn), args.Error(1)
}
func (m *MockInvoiceInService) PayInvoiceIn(ctx context.Context, documentID int64, req dto.RecordPaymentRequest, actor *domain.User) (*domain.InvoiceIn, error) {
	args := m.Called(ctx, documentID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceIn), args.Error(1)
}

var _ portssvc.InvoiceInSvcFacade = (*MockInvoiceInService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest, requestingUser *domain.User) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID int64, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}
func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type InvoiceInHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceInService
	mockUserService    *MockUserService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *InvoiceInHandlerTestSuite) generateTestToken(userID int64) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "docflow-test",
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *InvoiceInHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockInvoiceService = new(MockInvoiceInService)
	suite.mockUserService = new(MockUserService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterInvoiceInRoutes(v1, suite.mockInvoiceService, suite.mockUserService)
}

func (suite *InvoiceInHandlerTestSuite) authedRequest(method, url string, body []byte, userID int64) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func draftInvoice(id int64, ownerUserID int64) *domain.InvoiceIn {
	inv := &domain.InvoiceIn{
		VendorID:    9,
		InvoiceNo:   "INV-2026-0042",
		InvoiceDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Currency:    "EUR",
		Subtotal:    decimal.NewFromInt(100),
		Tax:         decimal.NewFromInt(19),
		Total:       decimal.NewFromInt(119),
	}
	inv.ID = id
	inv.DocType = domain.DocTypeInvoiceIn
	inv.Status = domain.StatusDraft
	inv.OwnerUserID = ownerUserID
	inv.Version = 0
	return inv
}

// --- Test Cases ---

func (suite *InvoiceInHandlerTestSuite) TestGetInvoiceIn_Success() {
	userID := int64(50)
	invoice := draftInvoice(10, userID)

	suite.mockInvoiceService.On("GetInvoiceInByID", mock.Anything, int64(10)).Return(invoice, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/invoices/in/10", nil, userID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.InvoiceInResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(10), body.ID)
	suite.Equal("DRAFT", body.Status)
	suite.Equal("INV-2026-0042", body.InvoiceNo)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceInHandlerTestSuite) TestGetInvoiceIn_NotFound() {
	suite.mockInvoiceService.On("GetInvoiceInByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/invoices/in/404", nil, 50)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceInHandlerTestSuite) TestGetInvoiceIn_InvalidID() {
	w := suite.authedRequest(http.MethodGet, "/api/v1/invoices/in/abc", nil, 50)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "GetInvoiceInByID", mock.Anything, mock.Anything)
}

func (suite *InvoiceInHandlerTestSuite) TestCreateInvoiceIn_Success() {
	userID := int64(50)
	actor := &domain.User{ID: userID, Roles: []domain.RoleName{domain.RoleEmployee}}
	invoice := draftInvoice(10, userID)

	suite.mockUserService.On("GetUserByID", mock.Anything, userID).Return(actor, nil).Once()
	suite.mockInvoiceService.On("CreateInvoiceIn", mock.Anything,
		mock.MatchedBy(func(req dto.CreateInvoiceInRequest) bool {
			return req.VendorID == 9 && req.InvoiceNo == "INV-2026-0042"
		}), actor).Return(invoice, nil).Once()

	payload := map[string]any{
		"vendorID":    9,
		"invoiceNo":   "INV-2026-0042",
		"invoiceDate": "2026-03-01T00:00:00Z",
		"dueDate":     "2026-04-01T00:00:00Z",
		"currency":    "EUR",
		"subtotal":    "100",
		"tax":         "19",
		"total":       "119",
	}
	body, _ := json.Marshal(payload)
	w := suite.authedRequest(http.MethodPost, "/api/v1/invoices/in", body, userID)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *InvoiceInHandlerTestSuite) TestCreateInvoiceIn_MissingBody() {
	w := suite.authedRequest(http.MethodPost, "/api/v1/invoices/in", []byte(`{}`), 50)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoiceIn", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceInHandlerTestSuite) TestApproveInvoiceIn_Forbidden() {
	userID := int64(4)
	actor := &domain.User{ID: userID, Roles: []domain.RoleName{domain.RoleEmployee}}

	suite.mockUserService.On("GetUserByID", mock.Anything, userID).Return(actor, nil).Once()
	suite.mockInvoiceService.On("ApproveInvoiceIn", mock.Anything, int64(10), actor).
		Return(nil, apperrors.NewUnauthorizedActionError("only MANAGER, FINANCE or ADMIN can decide on incoming invoices")).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/invoices/in/10/approve", nil, userID)

	suite.Equal(http.StatusForbidden, w.Code)
	var body map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Contains(body["error"], "MANAGER, FINANCE or ADMIN")
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceInHandlerTestSuite) TestSubmitInvoiceIn_InvalidTransition() {
	userID := int64(50)
	actor := &domain.User{ID: userID, Roles: []domain.RoleName{domain.RoleEmployee}}

	suite.mockUserService.On("GetUserByID", mock.Anything, userID).Return(actor, nil).Once()
	suite.mockInvoiceService.On("SubmitInvoiceIn", mock.Anything, int64(10), actor).
		Return(nil, apperrors.NewInvalidTransitionError("REJECTED", "PENDING")).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/invoices/in/10/submit", nil, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Contains(body["error"], "invalid status transition")
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceInHandlerTestSuite) TestSubmitInvoiceIn_VersionConflict() {
	userID := int64(50)
	actor := &domain.User{ID: userID, Roles: []domain.RoleName{domain.RoleEmployee}}

	suite.mockUserService.On("GetUserByID", mock.Anything, userID).Return(actor, nil).Once()
	suite.mockInvoiceService.On("SubmitInvoiceIn", mock.Anything, int64(10), actor).
		Return(nil, apperrors.ErrVersionConflict).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/invoices/in/10/submit", nil, userID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceInHandlerTestSuite) TestRejectInvoiceIn_RequiresReason() {
	w := suite.authedRequest(http.MethodPost, "/api/v1/invoices/in/10/reject", []byte(`{}`), 50)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "RejectInvoiceIn",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceInHandlerTestSuite) TestListInvoicesIn_Success() {
	resp := &dto.ListInvoicesInResponse{
		Invoices: []dto.InvoiceInResponse{
			{ID: 10, Status: "DRAFT", InvoiceNo: "INV-2026-0042"},
			{ID: 9, Status: "PAID", InvoiceNo: "INV-2026-0041"},
		},
	}

	suite.mockInvoiceService.On("ListInvoicesIn", mock.Anything,
		mock.MatchedBy(func(p dto.ListDocumentsParams) bool { return p.Limit == 10 })).
		Return(resp, nil).Once()

	w := suite.authedRequest(http.MethodGet, fmt.Sprintf("/api/v1/invoices/in?limit=%d", 10), nil, 50)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListInvoicesInResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Invoices, 2)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceInHandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/invoices/in/10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Run Test Suite ---
func TestInvoiceInHandler(t *testing.T) {
	suite.Run(t, new(InvoiceInHandlerTestSuite))
}
