//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
)

// SupportRepositoryTestSuite covers push subscriptions, audit logs and wizard progress
type SupportRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	push          *PushSubscriptionRepository
	audit         *AuditLogRepository
	wizard        *WizardRepository
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *SupportRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.push = NewPushSubscriptionRepository(suite.baseTestSuite.DB)
	suite.audit = NewAuditLogRepository(suite.baseTestSuite.DB)
	suite.wizard = NewWizardRepository(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *SupportRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.CleanTestDB()
}

// SetupTest runs before each test
func (suite *SupportRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SupportRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestPushSubscriptionUpsert rebinds a known endpoint instead of duplicating it
func (suite *SupportRepositoryTestSuite) TestPushSubscriptionUpsert() {
	org := uuid.New()
	first, second := uuid.New(), uuid.New()
	endpoint := "https://push.example.org/abc"

	suite.Require().NoError(suite.push.Upsert(suite.ctx, &models.PushSubscription{UserID: first, OrganizationID: org, Endpoint: endpoint, P256dh: "k1", Auth: "a1"}))
	suite.Require().NoError(suite.push.Upsert(suite.ctx, &models.PushSubscription{UserID: second, OrganizationID: org, Endpoint: endpoint, P256dh: "k2", Auth: "a2"}))

	subs, err := suite.push.ListByUsers(suite.ctx, []uuid.UUID{first, second})
	suite.Require().NoError(err)
	suite.Require().Len(subs, 1)
	suite.Equal(second, subs[0].UserID)
	suite.Equal("k2", subs[0].P256dh)

	suite.Require().NoError(suite.push.DeleteByEndpoint(suite.ctx, endpoint))
	subs, err = suite.push.ListByUsers(suite.ctx, []uuid.UUID{second})
	suite.Require().NoError(err)
	suite.Empty(subs)
}

// TestAuditLogPagination returns newest first with a total count
func (suite *SupportRepositoryTestSuite) TestAuditLogPagination() {
	org := uuid.New()
	for _, action := range []string{"create", "update", "delete"} {
		entry := &models.AuditLog{Action: action, Entity: "volunteer", Details: datatypes.JSON(`{"name":"Ana"}`)}
		entry.OrganizationID = org
		suite.Require().NoError(suite.audit.Create(suite.ctx, entry))
	}

	entries, total, err := suite.audit.List(suite.ctx, org, 2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(entries, 2)
}

// TestWizardProgress saves, overwrites and deletes a counter
func (suite *SupportRepositoryTestSuite) TestWizardProgress() {
	owner := uuid.New()

	progress, err := suite.wizard.Get(suite.ctx, models.WizardScopeOrganization, owner)
	suite.Require().NoError(err)
	suite.Nil(progress)

	suite.Require().NoError(suite.wizard.Save(suite.ctx, &models.WizardProgress{Scope: models.WizardScopeOrganization, OwnerID: owner, Step: 1}))
	suite.Require().NoError(suite.wizard.Save(suite.ctx, &models.WizardProgress{Scope: models.WizardScopeOrganization, OwnerID: owner, Step: 2}))

	progress, err = suite.wizard.Get(suite.ctx, models.WizardScopeOrganization, owner)
	suite.Require().NoError(err)
	suite.Require().NotNil(progress)
	suite.Equal(2, progress.Step)

	other, err := suite.wizard.Get(suite.ctx, models.WizardScopeUser, owner)
	suite.Require().NoError(err)
	suite.Nil(other)

	suite.Require().NoError(suite.wizard.Delete(suite.ctx, models.WizardScopeOrganization, owner))
	progress, err = suite.wizard.Get(suite.ctx, models.WizardScopeOrganization, owner)
	suite.Require().NoError(err)
	suite.Nil(progress)
}

// TestSupportRepositoryTestSuite runs the test suite
func TestSupportRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SupportRepositoryTestSuite))
}
