package services

import (
	"fmt"
	"time"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// validateInvoiceAmounts checks the arithmetic of an invoice: amounts must be
// non-negative and subtotal plus tax must equal the total.
func validateInvoiceAmounts(subtotal, tax, total decimal.Decimal) error {
	if subtotal.IsNegative() || tax.IsNegative() || total.IsNegative() {
		return fmt.Errorf("%w: invoice amounts must not be negative", apperrors.ErrValidation)
	}
	if !subtotal.Add(tax).Equal(total) {
		return fmt.Errorf("%w: subtotal %s plus tax %s does not equal total %s",
			apperrors.ErrValidation, subtotal.String(), tax.String(), total.String())
	}
	return nil
}

// paymentFromRequest builds the payment record for a pay transition.
func paymentFromRequest(req dto.RecordPaymentRequest, documentID int64, direction domain.PaymentDirection, createdBy int64) domain.Payment {
	return domain.Payment{
		DocumentID: documentID,
		Direction:  direction,
		Method:     domain.PaymentMethod(req.Method),
		Amount:     req.Amount,
		Currency:   req.Currency,
		PaidAt:     req.PaidAt,
		Reference:  req.Reference,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().UTC(),
	}
}

// paymentNote renders the audit note for a pay transition.
func paymentNote(req dto.RecordPaymentRequest) string {
	if req.Reference != "" {
		return fmt.Sprintf("paid %s %s via %s (ref %s)", req.Amount.String(), req.Currency, req.Method, req.Reference)
	}
	return fmt.Sprintf("paid %s %s via %s", req.Amount.String(), req.Currency, req.Method)
}
