package service_test

import (
	"context"
	"testing"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/mocks"
	"volunteer-scheduler-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WizardServiceTestSuite defines the test suite for WizardService
type WizardServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockWizardRepositoryInterface
	service *service.WizardService
	ctx     context.Context
	actor   service.Actor
}

func (suite *WizardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockWizardRepositoryInterface(suite.ctrl)
	suite.service = service.NewWizardService(suite.repo)
	suite.ctx = context.Background()
	suite.actor = service.Actor{UserID: uuid.New(), OrganizationID: uuid.New()}
}

func (suite *WizardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WizardServiceTestSuite) TestGetUnknownIsStepZero() {
	suite.repo.EXPECT().Get(gomock.Any(), models.WizardScopeUser, suite.actor.UserID).Return(nil, nil)

	state, err := suite.service.Get(suite.ctx, suite.actor, models.WizardScopeUser)

	suite.Require().NoError(err)
	suite.Equal(0, state.Step)
	suite.Equal(3, state.TerminalStep)
	suite.False(state.Complete)
}

func (suite *WizardServiceTestSuite) TestOrganizationScopeIsKeyedByOrganization() {
	suite.repo.EXPECT().Get(gomock.Any(), models.WizardScopeOrganization, suite.actor.OrganizationID).
		Return(&models.WizardProgress{Scope: models.WizardScopeOrganization, OwnerID: suite.actor.OrganizationID, Step: 2}, nil)
	suite.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.WizardProgress) error {
		suite.Equal(suite.actor.OrganizationID, p.OwnerID)
		suite.Equal(3, p.Step)
		return nil
	})

	state, err := suite.service.Advance(suite.ctx, suite.actor, models.WizardScopeOrganization)

	suite.Require().NoError(err)
	suite.Equal(3, state.Step)
	suite.False(state.Complete)
}

func (suite *WizardServiceTestSuite) TestAdvanceAtTerminalIsNoOp() {
	suite.repo.EXPECT().Get(gomock.Any(), models.WizardScopeUser, suite.actor.UserID).
		Return(&models.WizardProgress{Scope: models.WizardScopeUser, Step: 3}, nil)

	state, err := suite.service.Advance(suite.ctx, suite.actor, models.WizardScopeUser)

	suite.Require().NoError(err)
	suite.Equal(3, state.Step)
	suite.True(state.Complete)
}

func (suite *WizardServiceTestSuite) TestSetStepRange() {
	suite.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := suite.service.SetStep(suite.ctx, suite.actor, models.WizardScopeOrganization, 0)
	suite.NoError(err)
	state, err := suite.service.SetStep(suite.ctx, suite.actor, models.WizardScopeOrganization, 4)
	suite.Require().NoError(err)
	suite.True(state.Complete)

	_, err = suite.service.SetStep(suite.ctx, suite.actor, models.WizardScopeOrganization, 5)
	suite.ErrorIs(err, apperrors.ErrInvalidWizardStep)
	_, err = suite.service.SetStep(suite.ctx, suite.actor, models.WizardScopeUser, -1)
	suite.ErrorIs(err, apperrors.ErrInvalidWizardStep)
}

func (suite *WizardServiceTestSuite) TestUnknownScope() {
	_, err := suite.service.Get(suite.ctx, suite.actor, "church")
	suite.ErrorIs(err, apperrors.ErrInvalidWizardScope)

	err = suite.service.Reset(suite.ctx, suite.actor, "church")
	suite.ErrorIs(err, apperrors.ErrInvalidWizardScope)
}

func (suite *WizardServiceTestSuite) TestReset() {
	suite.repo.EXPECT().Delete(gomock.Any(), models.WizardScopeUser, suite.actor.UserID).Return(nil)

	suite.NoError(suite.service.Reset(suite.ctx, suite.actor, models.WizardScopeUser))
}

func TestWizardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WizardServiceTestSuite))
}
