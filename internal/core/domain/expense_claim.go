package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseClaim is an employee expense claim document.
type ExpenseClaim struct {
	DocumentHeader
	EmployeeID int64           `json:"employeeID"`
	ClaimDate  time.Time       `json:"claimDate"`
	Currency   string          `json:"currency"`
	Total      decimal.Decimal `json:"total"`
	Items      []ExpenseItem   `json:"items,omitempty"`
}

// ExpenseItem is a single line on an expense claim.
type ExpenseItem struct {
	ID             int64           `json:"id"`
	ExpenseClaimID int64           `json:"expenseClaimID"`
	Category       string          `json:"category"`
	Description    string          `json:"description,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	IncurredAt     time.Time       `json:"incurredAt"`
}
