package services

import (
	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
)

// allowedTransitions is the single source of truth for the document lifecycle.
// A status absent from the map (or mapped to an empty set) is terminal.
var allowedTransitions = map[domain.DocumentStatus]map[domain.DocumentStatus]bool{
	domain.StatusDraft: {
		domain.StatusPending:   true,
		domain.StatusCancelled: true,
	},
	domain.StatusPending: {
		domain.StatusApproved:  true,
		domain.StatusRejected:  true,
		domain.StatusCancelled: true,
	},
	domain.StatusApproved: {
		domain.StatusPaid: true,
	},
	domain.StatusRejected:  {},
	domain.StatusPaid:      {},
	domain.StatusCancelled: {},
}

// statusMachine implements the document status transition rules.
type statusMachine struct{}

// NewStatusMachine creates the status transition rule service.
func NewStatusMachine() portssvc.StatusMachineSvc {
	return &statusMachine{}
}

var _ portssvc.StatusMachineSvc = (*statusMachine)(nil)

// CanTransition reports whether a document may move from one status to
// another. A same-status move is always allowed so that repeated requests
// stay idempotent.
func (m *statusMachine) CanTransition(from, to domain.DocumentStatus) bool {
	if from == to {
		return true
	}
	return allowedTransitions[from][to]
}

// Validate returns an InvalidTransitionError when the move is not allowed.
func (m *statusMachine) Validate(from, to domain.DocumentStatus) error {
	if !m.CanTransition(from, to) {
		return apperrors.NewInvalidTransitionError(string(from), string(to))
	}
	return nil
}

// ValidateCancel enforces the cancellation guard. Cancellation is checked
// before the transition table so callers get the cancel-specific message for
// APPROVED and later statuses.
func (m *statusMachine) ValidateCancel(from domain.DocumentStatus) error {
	if from != domain.StatusDraft && from != domain.StatusPending {
		return apperrors.NewInvalidTransitionReason("only DRAFT or PENDING documents can be cancelled, current status: " + string(from))
	}
	return nil
}

// AllowedTransitions returns the statuses reachable from the given status.
func (m *statusMachine) AllowedTransitions(from domain.DocumentStatus) []domain.DocumentStatus {
	targets := make([]domain.DocumentStatus, 0, len(allowedTransitions[from]))
	for _, to := range []domain.DocumentStatus{
		domain.StatusDraft,
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusPaid,
		domain.StatusCancelled,
	} {
		if allowedTransitions[from][to] {
			targets = append(targets, to)
		}
	}
	return targets
}

// IsTerminal reports whether no transitions leave the given status.
func (m *statusMachine) IsTerminal(status domain.DocumentStatus) bool {
	return len(allowedTransitions[status]) == 0
}
