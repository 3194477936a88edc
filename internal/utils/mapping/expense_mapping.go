package mapping

import (
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/docflowhq/docflow_backend/internal/models"
)

// ToModelExpenseClaim converts a domain ExpenseClaim to a model ExpenseClaim
func ToModelExpenseClaim(d domain.ExpenseClaim) models.ExpenseClaim {
	return models.ExpenseClaim{
		Document:   ToModelDocument(d.DocumentHeader),
		EmployeeID: d.EmployeeID,
		ClaimDate:  d.ClaimDate,
		Currency:   d.Currency,
		Total:      d.Total,
	}
}

// ToDomainExpenseClaim converts a model ExpenseClaim to a domain ExpenseClaim.
// Items are loaded separately.
func ToDomainExpenseClaim(m models.ExpenseClaim) domain.ExpenseClaim {
	return domain.ExpenseClaim{
		DocumentHeader: ToDomainDocument(m.Document),
		EmployeeID:     m.EmployeeID,
		ClaimDate:      m.ClaimDate,
		Currency:       m.Currency,
		Total:          m.Total,
	}
}

// ToDomainExpenseItem converts a model ExpenseItem to a domain ExpenseItem
func ToDomainExpenseItem(m models.ExpenseItem) domain.ExpenseItem {
	return domain.ExpenseItem{
		ID:             m.ID,
		ExpenseClaimID: m.ExpenseClaimID,
		Category:       m.Category,
		Description:    m.Description,
		Amount:         m.Amount,
		IncurredAt:     m.IncurredAt,
	}
}

// ToDomainExpenseItemSlice converts a slice of model ExpenseItems to domain ExpenseItems
func ToDomainExpenseItemSlice(ms []models.ExpenseItem) []domain.ExpenseItem {
	ds := make([]domain.ExpenseItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpenseItem(m)
	}
	return ds
}

// ToModelReimbursement converts a domain Reimbursement to a model Reimbursement
func ToModelReimbursement(d domain.Reimbursement) models.Reimbursement {
	return models.Reimbursement{
		Document:       ToModelDocument(d.DocumentHeader),
		EmployeeID:     d.EmployeeID,
		ExpenseClaimID: d.ExpenseClaimID,
		RequestedDate:  d.RequestedDate,
		Currency:       d.Currency,
		Total:          d.Total,
	}
}

// ToDomainReimbursement converts a model Reimbursement to a domain Reimbursement
func ToDomainReimbursement(m models.Reimbursement) domain.Reimbursement {
	return domain.Reimbursement{
		DocumentHeader: ToDomainDocument(m.Document),
		EmployeeID:     m.EmployeeID,
		ExpenseClaimID: m.ExpenseClaimID,
		RequestedDate:  m.RequestedDate,
		Currency:       m.Currency,
		Total:          m.Total,
	}
}
