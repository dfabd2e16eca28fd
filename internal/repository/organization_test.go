//go:build integration
// +build integration

package repository

import (
	"context"
	"strings"
	"testing"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// OrganizationRepositoryTestSuite tests OrganizationRepository and ProfileRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	profiles      *ProfileRepository
	volunteers    *VolunteerRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.profiles = NewProfileRepository(suite.baseTestSuite.DB)
	suite.volunteers = NewVolunteerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.CleanTestDB()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestRegisterWithAdmin creates organization and admin together
func (suite *OrganizationRepositoryTestSuite) TestRegisterWithAdmin() {
	org := &models.Organization{Name: "Igreja Central"}
	admin := suite.factories.Profile.Create()

	err := suite.repo.RegisterWithAdmin(suite.ctx, org, admin)

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.Equal(org.ID, admin.OrganizationID)
	suite.Equal(models.ProfileRoleAdmin, admin.Role)

	stored, err := suite.profiles.GetByEmail(suite.ctx, admin.Email)
	suite.Require().NoError(err)
	suite.True(stored.IsAdmin())
}

// TestRegisterWithAdminRollsBack leaves no organization behind when the admin insert fails
func (suite *OrganizationRepositoryTestSuite) TestRegisterWithAdminRollsBack() {
	first := suite.factories.Profile.Create()
	suite.Require().NoError(suite.repo.RegisterWithAdmin(suite.ctx, &models.Organization{Name: "A"}, first))

	org := &models.Organization{Name: "B"}
	dup := suite.factories.Profile.Create()
	dup.Email = first.Email

	err := suite.repo.RegisterWithAdmin(suite.ctx, org, dup)
	suite.Require().Error(err)
	suite.True(apperrors.IsBackend(err))
	suite.True(apperrors.IsAlreadyExists(err))

	var count int64
	suite.baseTestSuite.DB.Model(&models.Organization{}).Where("name = ?", "B").Count(&count)
	suite.Zero(count)
}

// TestGetByIDNotFound maps a missing row to ErrOrganizationNotFound
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

// TestCreateWithVolunteer shares the profile id with the volunteer row
func (suite *OrganizationRepositoryTestSuite) TestCreateWithVolunteer() {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, org))

	profile := suite.factories.Profile.WithOrganization(org.ID)
	volunteer := &models.Volunteer{Name: profile.FullName, Roles: []string{}}

	err := suite.profiles.CreateWithVolunteer(suite.ctx, profile, volunteer)
	suite.Require().NoError(err)
	suite.Equal(profile.ID, volunteer.ID)

	stored, err := suite.volunteers.GetByID(suite.ctx, org.ID, profile.ID)
	suite.Require().NoError(err)
	suite.Equal(profile.FullName, stored.Name)
}

// TestGetByEmailIgnoresCase finds profiles regardless of email case
func (suite *OrganizationRepositoryTestSuite) TestGetByEmailIgnoresCase() {
	profile := suite.factories.Profile.Create()
	suite.Require().NoError(suite.repo.RegisterWithAdmin(suite.ctx, &models.Organization{Name: "C"}, profile))

	found, err := suite.profiles.GetByEmail(suite.ctx, strings.ToUpper(profile.Email))
	suite.Require().NoError(err)
	suite.Equal(profile.ID, found.ID)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
