package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reimbursement pays an employee back for an approved expense claim.
// The linked claim must be APPROVED before a reimbursement can be created,
// and the reimbursed total must match the claim total within the configured
// tolerance.
type Reimbursement struct {
	DocumentHeader
	EmployeeID     int64           `json:"employeeID"`
	ExpenseClaimID int64           `json:"expenseClaimID"`
	RequestedDate  time.Time       `json:"requestedDate"`
	Currency       string          `json:"currency"`
	Total          decimal.Decimal `json:"total"`
}
