package services_test

import (
	"context"
	"testing"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock repositories (reader-side only, as used by the approval service) ---

type MockInvoiceInReader struct {
	mock.Mock
}

func (m *MockInvoiceInReader) FindInvoiceInByID(ctx context.Context, documentID int64) (*domain.InvoiceIn, error) {
	args := m.Called(ctx, documentID)
	var inv *domain.InvoiceIn
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.InvoiceIn)
	}
	return inv, args.Error(1)
}

func (m *MockInvoiceInReader) ListInvoicesIn(ctx context.Context, limit int, nextToken *string) ([]domain.InvoiceIn, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var invs []domain.InvoiceIn
	if args.Get(0) != nil {
		invs = args.Get(0).([]domain.InvoiceIn)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return invs, token, args.Error(2)
}

type MockExpenseClaimReader struct {
	mock.Mock
}

func (m *MockExpenseClaimReader) FindExpenseClaimByID(ctx context.Context, documentID int64) (*domain.ExpenseClaim, error) {
	args := m.Called(ctx, documentID)
	var claim *domain.ExpenseClaim
	if args.Get(0) != nil {
		claim = args.Get(0).(*domain.ExpenseClaim)
	}
	return claim, args.Error(1)
}

func (m *MockExpenseClaimReader) ListExpenseClaims(ctx context.Context, limit int, nextToken *string) ([]domain.ExpenseClaim, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var claims []domain.ExpenseClaim
	if args.Get(0) != nil {
		claims = args.Get(0).([]domain.ExpenseClaim)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return claims, token, args.Error(2)
}

type MockReimbursementReader struct {
	mock.Mock
}

func (m *MockReimbursementReader) FindReimbursementByID(ctx context.Context, documentID int64) (*domain.Reimbursement, error) {
	args := m.Called(ctx, documentID)
	var r *domain.Reimbursement
	if args.Get(0) != nil {
		r = args.Get(0).(*domain.Reimbursement)
	}
	return r, args.Error(1)
}

func (m *MockReimbursementReader) FindReimbursementByClaimID(ctx context.Context, expenseClaimID int64) (*domain.Reimbursement, error) {
	args := m.Called(ctx, expenseClaimID)
	var r *domain.Reimbursement
	if args.Get(0) != nil {
		r = args.Get(0).(*domain.Reimbursement)
	}
	return r, args.Error(1)
}

func (m *MockReimbursementReader) ListReimbursements(ctx context.Context, limit int, nextToken *string) ([]domain.Reimbursement, *string, error) {
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

type MockPurchaseOrderReader struct {
	mock.Mock
}

func (m *MockPurchaseOrderReader) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID int64) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, purchaseOrderID)
	var po *domain.PurchaseOrder
	if args.Get(0) != nil {
		po = args.Get(0).(*domain.PurchaseOrder)
	}
	return po, args.Error(1)
}

type MockEmployeeReader struct {
	mock.Mock
}

func (m *MockEmployeeReader) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var e *domain.Employee
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Employee)
	}
	return e, args.Error(1)
}

func (m *MockEmployeeReader) FindEmployeeByUserID(ctx context.Context, userID int64) (*domain.Employee, error) {
	args := m.Called(ctx, userID)
	var e *domain.Employee
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Employee)
	}
	return e, args.Error(1)
}

// --- Test Suite ---

type ApprovalServiceTestSuite struct {
	suite.Suite
	mockInvoiceInRepo     *MockInvoiceInReader
	mockExpenseClaimRepo  *MockExpenseClaimReader
	mockReimbursementRepo *MockReimbursementReader
	mockPurchaseOrderRepo *MockPurchaseOrderReader
	mockEmployeeRepo      *MockEmployeeReader
	service               portssvc.ApprovalSvc
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.mockInvoiceInRepo = new(MockInvoiceInReader)
	suite.mockExpenseClaimRepo = new(MockExpenseClaimReader)
	suite.mockReimbursementRepo = new(MockReimbursementReader)
	suite.mockPurchaseOrderRepo = new(MockPurchaseOrderReader)
	suite.mockEmployeeRepo = new(MockEmployeeReader)
	suite.service = services.NewApprovalService(
		suite.mockInvoiceInRepo,
		suite.mockExpenseClaimRepo,
		suite.mockReimbursementRepo,
		suite.mockPurchaseOrderRepo,
		suite.mockEmployeeRepo,
	)
}

func userWithRoles(id int64, roles ...domain.RoleName) *domain.User {
	return &domain.User{ID: id, Roles: roles}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func (suite *ApprovalServiceTestSuite) TestAdminAlwaysDecides() {
	ctx := context.Background()
	admin := userWithRoles(1, domain.RoleAdmin)

	for _, docType := range []domain.DocumentType{
		domain.DocTypeInvoiceIn,
		domain.DocTypeInvoiceOut,
		domain.DocTypeExpenseClaim,
		domain.DocTypeReimbursement,
	} {
		err := suite.service.AuthorizeDecision(ctx, admin, 42, docType)
		suite.NoError(err, "ADMIN should decide %s without repo lookups", docType)
	}
	// No repository should have been consulted for an admin
	suite.mockInvoiceInRepo.AssertNotCalled(suite.T(), "FindInvoiceInByID", mock.Anything, mock.Anything)
	suite.mockExpenseClaimRepo.AssertNotCalled(suite.T(), "FindExpenseClaimByID", mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestInvoiceIn_ManagerOrFinanceDecides() {
	ctx := context.Background()
	invoice := &domain.InvoiceIn{}
	invoice.ID = 10

	suite.mockInvoiceInRepo.On("FindInvoiceInByID", ctx, int64(10)).Return(invoice, nil)

	suite.NoError(suite.service.AuthorizeDecision(ctx, userWithRoles(2, domain.RoleManager), 10, domain.DocTypeInvoiceIn))
	suite.NoError(suite.service.AuthorizeDecision(ctx, userWithRoles(3, domain.RoleFinance), 10, domain.DocTypeInvoiceIn))

	err := suite.service.AuthorizeDecision(ctx, userWithRoles(4, domain.RoleEmployee), 10, domain.DocTypeInvoiceIn)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ApprovalServiceTestSuite) TestInvoiceIn_DedicatedApproverIsExclusive() {
	ctx := context.Background()
	invoice := &domain.InvoiceIn{PurchaseOrderID: int64Ptr(7)}
	invoice.ID = 11
	po := &domain.PurchaseOrder{ID: 7, PONo: "PO-2026-001", ApproverUserID: int64Ptr(99)}

	suite.mockInvoiceInRepo.On("FindInvoiceInByID", ctx, int64(11)).Return(invoice, nil)
	suite.mockPurchaseOrderRepo.On("FindPurchaseOrderByID", ctx, int64(7)).Return(po, nil)

	// The dedicated approver decides even without any role
	suite.NoError(suite.service.AuthorizeDecision(ctx, userWithRoles(99, domain.RoleEmployee), 11, domain.DocTypeInvoiceIn))

	// FINANCE does not override a dedicated approver
	err := suite.service.AuthorizeDecision(ctx, userWithRoles(3, domain.RoleFinance), 11, domain.DocTypeInvoiceIn)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Contains(err.Error(), "PO-2026-001")
}

func (suite *ApprovalServiceTestSuite) TestInvoiceIn_PurchaseOrderWithoutApproverFallsBack() {
	ctx := context.Background()
	invoice := &domain.InvoiceIn{PurchaseOrderID: int64Ptr(8)}
	invoice.ID = 12
	po := &domain.PurchaseOrder{ID: 8, PONo: "PO-2026-002"}

	suite.mockInvoiceInRepo.On("FindInvoiceInByID", ctx, int64(12)).Return(invoice, nil)
	suite.mockPurchaseOrderRepo.On("FindPurchaseOrderByID", ctx, int64(8)).Return(po, nil)

	suite.NoError(suite.service.AuthorizeDecision(ctx, userWithRoles(2, domain.RoleManager), 12, domain.DocTypeInvoiceIn))
}

func (suite *ApprovalServiceTestSuite) TestInvoiceOut_FinanceDecides() {
	ctx := context.Background()

	suite.NoError(suite.service.AuthorizeDecision(ctx, userWithRoles(3, domain.RoleFinance), 20, domain.DocTypeInvoiceOut))

	err := suite.service.AuthorizeDecision(ctx, userWithRoles(2, domain.RoleManager), 20, domain.DocTypeInvoiceOut)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ApprovalServiceTestSuite) TestExpenseClaim_OnlyClaimantsManagerDecides() {
	ctx := context.Background()
	claim := &domain.ExpenseClaim{EmployeeID: 5}
	claim.ID = 30
	claimant := &domain.Employee{ID: 5, UserID: 50, ManagerID: int64Ptr(6)}
	manager := &domain.Employee{ID: 6, UserID: 60, Email: "manager@corp.example"}

	suite.mockExpenseClaimRepo.On("FindExpenseClaimByID", ctx, int64(30)).Return(claim, nil)
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(5)).Return(claimant, nil)
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(6)).Return(manager, nil)

	// The manager's user account decides
	suite.NoError(suite.service.AuthorizeDecision(ctx, userWithRoles(60, domain.RoleManager), 30, domain.DocTypeExpenseClaim))

	// Another manager is refused and told who may decide
	err := suite.service.AuthorizeDecision(ctx, userWithRoles(61, domain.RoleManager), 30, domain.DocTypeExpenseClaim)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Contains(err.Error(), "manager@corp.example")
}

func (suite *ApprovalServiceTestSuite) TestExpenseClaim_NoManagerAssigned() {
	ctx := context.Background()
	claim := &domain.ExpenseClaim{EmployeeID: 5}
	claim.ID = 31
	claimant := &domain.Employee{ID: 5, UserID: 50}

	suite.mockExpenseClaimRepo.On("FindExpenseClaimByID", ctx, int64(31)).Return(claim, nil)
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(5)).Return(claimant, nil)

	err := suite.service.AuthorizeDecision(ctx, userWithRoles(60, domain.RoleManager), 31, domain.DocTypeExpenseClaim)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Contains(err.Error(), "no manager assigned")
}

func (suite *ApprovalServiceTestSuite) TestReimbursement_FollowsClaimRule() {
	ctx := context.Background()
	reimbursement := &domain.Reimbursement{EmployeeID: 5, ExpenseClaimID: 30}
	reimbursement.ID = 40
	claimant := &domain.Employee{ID: 5, UserID: 50, ManagerID: int64Ptr(6)}
	manager := &domain.Employee{ID: 6, UserID: 60, Email: "manager@corp.example"}

	suite.mockReimbursementRepo.On("FindReimbursementByID", ctx, int64(40)).Return(reimbursement, nil)
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(5)).Return(claimant, nil)
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(6)).Return(manager, nil)

	suite.NoError(suite.service.AuthorizeDecision(ctx, userWithRoles(60, domain.RoleManager), 40, domain.DocTypeReimbursement))

	err := suite.service.AuthorizeDecision(ctx, userWithRoles(50, domain.RoleEmployee), 40, domain.DocTypeReimbursement)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ApprovalServiceTestSuite) TestDocumentNotFoundPropagates() {
	ctx := context.Background()

	suite.mockInvoiceInRepo.On("FindInvoiceInByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound)

	err := suite.service.AuthorizeDecision(ctx, userWithRoles(2, domain.RoleManager), 404, domain.DocTypeInvoiceIn)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
