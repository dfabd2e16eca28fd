package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"volunteer-scheduler-backend/internal/auth"
	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/mocks"
	"volunteer-scheduler-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AccountServiceTestSuite defines the test suite for AccountService
type AccountServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	orgRepo     *mocks.MockOrganizationRepositoryInterface
	profileRepo *mocks.MockProfileRepositoryInterface
	tokens      *auth.AuthService
	service     *service.AccountService
	ctx         context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.orgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.profileRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)

	tokens, err := auth.NewAuthService("test-secret", time.Hour)
	suite.Require().NoError(err)
	suite.tokens = tokens

	suite.service = service.NewAccountService(suite.orgRepo, suite.profileRepo, tokens, validator.New())
	suite.ctx = context.Background()
}

func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccountServiceTestSuite) TestRegister() {
	orgID := uuid.New()
	adminID := uuid.New()

	suite.orgRepo.EXPECT().
		RegisterWithAdmin(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, org *models.Organization, admin *models.Profile) error {
			suite.Equal("Igreja Central", org.Name)
			suite.Equal("pastor@igreja.org", admin.Email, "email is normalized")
			suite.NotEqual("s3cretpass", admin.PasswordHash)
			org.ID = orgID
			admin.ID = adminID
			admin.OrganizationID = orgID
			admin.Role = models.ProfileRoleAdmin
			return nil
		})

	resp, err := suite.service.Register(suite.ctx, &service.RegisterRequest{
		OrganizationName: " Igreja Central ",
		FullName:         "Pastor João",
		Email:            "Pastor@Igreja.org",
		Password:         "s3cretpass",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal(orgID, resp.Organization.ID)

	claims, err := suite.tokens.ValidateJWT(resp.Token)
	suite.Require().NoError(err)
	suite.Equal(adminID, claims.UserUUID())
	suite.Equal(orgID, claims.OrganizationUUID())
	suite.True(claims.IsAdmin())
}

func (suite *AccountServiceTestSuite) TestRegisterDuplicateEmail() {
	suite.orgRepo.EXPECT().
		RegisterWithAdmin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&apperrors.BackendError{Op: "register organization", Err: apperrors.ErrProfileExists})

	_, err := suite.service.Register(suite.ctx, &service.RegisterRequest{
		OrganizationName: "Igreja",
		FullName:         "Ana",
		Email:            "ana@igreja.org",
		Password:         "s3cretpass",
	})

	suite.Error(err)
	suite.True(apperrors.IsAlreadyExists(err))
}

func (suite *AccountServiceTestSuite) TestRegisterValidation() {
	_, err := suite.service.Register(suite.ctx, &service.RegisterRequest{
		OrganizationName: "Igreja",
		FullName:         "Ana",
		Email:            "not-an-email",
		Password:         "short",
	})

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *AccountServiceTestSuite) TestSignup() {
	orgID := uuid.New()
	suite.orgRepo.EXPECT().GetByID(gomock.Any(), orgID).Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}, Name: "Igreja"}, nil)
	suite.profileRepo.EXPECT().
		CreateWithVolunteer(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Profile, v *models.Volunteer) error {
			suite.Equal(models.ProfileRoleVolunteer, p.Role)
			suite.Equal(orgID, p.OrganizationID)
			suite.Equal("Bruno", v.Name)
			suite.Equal("bruno@igreja.org", v.Email)
			p.ID = uuid.New()
			return nil
		})

	resp, err := suite.service.Signup(suite.ctx, &service.SignupRequest{
		OrganizationID: orgID,
		FullName:       "Bruno",
		Email:          "bruno@igreja.org",
		Password:       "s3cretpass",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
	suite.False(resp.Profile.IsAdmin())
}

func (suite *AccountServiceTestSuite) TestSignupUnknownOrganization() {
	suite.orgRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrOrganizationNotFound)

	_, err := suite.service.Signup(suite.ctx, &service.SignupRequest{
		OrganizationID: uuid.New(),
		FullName:       "Bruno",
		Email:          "bruno@igreja.org",
		Password:       "s3cretpass",
	})

	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (suite *AccountServiceTestSuite) TestLogin() {
	hash, err := auth.HashPassword("s3cretpass")
	suite.Require().NoError(err)
	profile := &models.Profile{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: uuid.New(),
		Email:          "ana@igreja.org",
		PasswordHash:   hash,
		Role:           models.ProfileRoleVolunteer,
	}

	testCases := []struct {
		name      string
		password  string
		lookupErr error
		wantErr   error
	}{
		{name: "valid password", password: "s3cretpass"},
		{name: "wrong password", password: "nope-nope", wantErr: apperrors.ErrInvalidCredentials},
		{name: "unknown email", password: "s3cretpass", lookupErr: apperrors.ErrProfileNotFound, wantErr: apperrors.ErrInvalidCredentials},
		{name: "backend failure", password: "s3cretpass", lookupErr: apperrors.NewBackendError("get profile", errors.New("conn refused"))},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			if tc.lookupErr != nil {
				suite.profileRepo.EXPECT().GetByEmail(gomock.Any(), "ana@igreja.org").Return(nil, tc.lookupErr)
			} else {
				suite.profileRepo.EXPECT().GetByEmail(gomock.Any(), "ana@igreja.org").Return(profile, nil)
			}

			resp, err := suite.service.Login(suite.ctx, &service.LoginRequest{Email: "ANA@igreja.org", Password: tc.password})

			switch {
			case tc.wantErr != nil:
				suite.ErrorIs(err, tc.wantErr)
			case tc.lookupErr != nil:
				suite.True(apperrors.IsBackend(err))
			default:
				suite.Require().NoError(err)
				suite.NotEmpty(resp.Token)
			}
		})
	}
}

func (suite *AccountServiceTestSuite) TestMeAndOrganization() {
	actor := service.Actor{UserID: uuid.New(), OrganizationID: uuid.New()}
	suite.profileRepo.EXPECT().GetByID(gomock.Any(), actor.UserID).Return(&models.Profile{FullName: "Ana"}, nil)
	suite.orgRepo.EXPECT().GetByID(gomock.Any(), actor.OrganizationID).Return(&models.Organization{Name: "Igreja"}, nil)

	me, err := suite.service.Me(suite.ctx, actor)
	suite.Require().NoError(err)
	suite.Equal("Ana", me.FullName)

	org, err := suite.service.Organization(suite.ctx, actor)
	suite.Require().NoError(err)
	suite.Equal("Igreja", org.Name)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
