package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseClaim mirrors the expense_claims table joined with its document header.
type ExpenseClaim struct {
	Document
	EmployeeID int64           `json:"employeeID"`
	ClaimDate  time.Time       `json:"claimDate"`
	Currency   string          `json:"currency"`
	Total      decimal.Decimal `json:"total"`
}

// ExpenseItem mirrors the expense_items table.
type ExpenseItem struct {
	ID             int64           `json:"id"`
	ExpenseClaimID int64           `json:"expenseClaimID"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	IncurredAt     time.Time       `json:"incurredAt"`
}

// Reimbursement mirrors the reimbursements table joined with its document header.
type Reimbursement struct {
	Document
	EmployeeID     int64           `json:"employeeID"`
	ExpenseClaimID int64           `json:"expenseClaimID"`
	RequestedDate  time.Time       `json:"requestedDate"`
	Currency       string          `json:"currency"`
	Total          decimal.Decimal `json:"total"`
}
