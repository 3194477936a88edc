package services_test

import (
	"testing"

	"github.com/docflowhq/docflow_backend/internal/apperrors"
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type StatusMachineTestSuite struct {
	suite.Suite
	machine portssvc.StatusMachineSvc
}

func (suite *StatusMachineTestSuite) SetupTest() {
	suite.machine = services.NewStatusMachine()
}

func (suite *StatusMachineTestSuite) TestAllowedTransitions() {
	allowed := []struct {
		from domain.DocumentStatus
		to   domain.DocumentStatus
	}{
		{domain.StatusDraft, domain.StatusPending},
		{domain.StatusDraft, domain.StatusCancelled},
		{domain.StatusPending, domain.StatusApproved},
		{domain.StatusPending, domain.StatusRejected},
		{domain.StatusPending, domain.StatusCancelled},
		{domain.StatusApproved, domain.StatusPaid},
	}
	for _, tc := range allowed {
		suite.True(suite.machine.CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
		suite.NoError(suite.machine.Validate(tc.from, tc.to))
	}
}

func (suite *StatusMachineTestSuite) TestForbiddenTransitions() {
	forbidden := []struct {
		from domain.DocumentStatus
		to   domain.DocumentStatus
	}{
		{domain.StatusDraft, domain.StatusApproved},
		{domain.StatusDraft, domain.StatusRejected},
		{domain.StatusDraft, domain.StatusPaid},
		{domain.StatusPending, domain.StatusDraft},
		{domain.StatusPending, domain.StatusPaid},
		{domain.StatusApproved, domain.StatusPending},
		{domain.StatusApproved, domain.StatusRejected},
		{domain.StatusApproved, domain.StatusCancelled},
		{domain.StatusRejected, domain.StatusPending},
		{domain.StatusRejected, domain.StatusApproved},
		{domain.StatusPaid, domain.StatusApproved},
		{domain.StatusCancelled, domain.StatusDraft},
		{domain.StatusCancelled, domain.StatusPending},
	}
	for _, tc := range forbidden {
		suite.False(suite.machine.CanTransition(tc.from, tc.to), "%s -> %s should be forbidden", tc.from, tc.to)

		err := suite.machine.Validate(tc.from, tc.to)
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	}
}

func (suite *StatusMachineTestSuite) TestSameStatusIsAllowed() {
	statuses := []domain.DocumentStatus{
		domain.StatusDraft,
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusPaid,
		domain.StatusCancelled,
	}
	for _, s := range statuses {
		suite.True(suite.machine.CanTransition(s, s), "%s -> %s should be allowed", s, s)
		suite.NoError(suite.machine.Validate(s, s))
	}
}

func (suite *StatusMachineTestSuite) TestValidateCancel() {
	suite.NoError(suite.machine.ValidateCancel(domain.StatusDraft))
	suite.NoError(suite.machine.ValidateCancel(domain.StatusPending))

	for _, s := range []domain.DocumentStatus{domain.StatusApproved, domain.StatusRejected, domain.StatusPaid, domain.StatusCancelled} {
		err := suite.machine.ValidateCancel(s)
		suite.Require().Error(err, "cancel from %s should be rejected", s)
		suite.ErrorIs(err, apperrors.ErrInvalidTransition)
		suite.Contains(err.Error(), string(s))
	}
}

func (suite *StatusMachineTestSuite) TestAllowedTransitionSets() {
	suite.ElementsMatch(
		[]domain.DocumentStatus{domain.StatusPending, domain.StatusCancelled},
		suite.machine.AllowedTransitions(domain.StatusDraft))
	suite.ElementsMatch(
		[]domain.DocumentStatus{domain.StatusApproved, domain.StatusRejected, domain.StatusCancelled},
		suite.machine.AllowedTransitions(domain.StatusPending))
	suite.ElementsMatch(
		[]domain.DocumentStatus{domain.StatusPaid},
		suite.machine.AllowedTransitions(domain.StatusApproved))
	suite.Empty(suite.machine.AllowedTransitions(domain.StatusRejected))
	suite.Empty(suite.machine.AllowedTransitions(domain.StatusPaid))
	suite.Empty(suite.machine.AllowedTransitions(domain.StatusCancelled))
}

func (suite *StatusMachineTestSuite) TestIsTerminal() {
	suite.False(suite.machine.IsTerminal(domain.StatusDraft))
	suite.False(suite.machine.IsTerminal(domain.StatusPending))
	suite.False(suite.machine.IsTerminal(domain.StatusApproved))
	suite.True(suite.machine.IsTerminal(domain.StatusRejected))
	suite.True(suite.machine.IsTerminal(domain.StatusPaid))
	suite.True(suite.machine.IsTerminal(domain.StatusCancelled))
}

func TestStatusMachineTestSuite(t *testing.T) {
	suite.Run(t, new(StatusMachineTestSuite))
}
