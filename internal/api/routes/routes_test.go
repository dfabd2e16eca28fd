//go:build integration
// +build integration

package routes_test

import (
	"net/http"
	"testing"

	"volunteer-scheduler-backend/internal/api/routes"
	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/service"
	"volunteer-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite drives the full HTTP stack against Postgres
type RoutesTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	httpSuite     *testutils.HTTPTestSuite
}

func (suite *RoutesTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	cfg := *suite.baseTestSuite.Config
	cfg.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.AuthRateLimit = "1000-M"

	router, err := routes.SetupRoutes(suite.baseTestSuite.DB, &cfg, nil)
	suite.Require().NoError(err)
	suite.httpSuite = &testutils.HTTPTestSuite{Router: router}
}

func (suite *RoutesTestSuite) TearDownSuite() {
	suite.baseTestSuite.CleanTestDB()
}

func (suite *RoutesTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *RoutesTestSuite) register(email string) string {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/register", service.RegisterRequest{
		OrganizationName: "Igreja Central",
		FullName:         "Ana Souza",
		Email:            email,
		Password:         "segredo123",
	})
	var resp service.AuthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.Require().NotEmpty(resp.Token)
	return resp.Token
}

func (suite *RoutesTestSuite) TestHealthLive() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *RoutesTestSuite) TestAPIRequiresToken() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/volunteers", nil)
	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *RoutesTestSuite) TestSchedulingFlow() {
	token := suite.register("ana@igreja.org")
	headers := testutils.BearerHeader(token)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/ministries",
		service.MinistryRequest{Name: "Louvor", Icon: "music"}, headers)
	suite.Equal(http.StatusCreated, recorder.Code)

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/ministries",
		service.MinistryRequest{Name: "LOUVOR"}, headers)
	suite.Equal(http.StatusConflict, recorder.Code)

	var bia models.Volunteer
	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/volunteers",
		service.VolunteerRequest{Name: "Bia", Roles: []string{"Louvor"}, UnavailableDates: []string{"2025-01-12"}}, headers)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &bia)

	var services []models.ServiceEvent
	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/services/recurring",
		service.RecurringRequest{RRule: "FREQ=WEEKLY;BYDAY=SU", From: "2025-01-01", To: "2025-01-31", Title: "Culto"}, headers)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &services)
	suite.Require().Len(services, 4)

	var eligible []models.Volunteer
	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodGet,
		"/api/v1/services/eligible-volunteers?role=Louvor&date=2025-01-12", nil, headers)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &eligible)
	suite.Empty(eligible)

	first := services[0]
	var updated models.ServiceEvent
	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPost,
		"/api/v1/services/"+first.ID.String()+"/assignments",
		service.AssignmentRequest{Role: "Louvor", VolunteerID: bia.ID}, headers)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &updated)
	suite.Len(updated.Assignments, 1)

	var listed []models.ServiceEvent
	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodGet,
		"/api/v1/services?from=2025-01-01&to=2025-01-10", nil, headers)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &listed)
	suite.Require().Len(listed, 1)
	suite.Equal("Louvor", listed[0].Assignments[0].Role)

	var audit service.AuditLogListResponse
	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/audit-logs", nil, headers)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &audit)
	suite.NotZero(audit.Total)
}

func (suite *RoutesTestSuite) TestNotificationsSimulatedWithoutDispatcher() {
	headers := testutils.BearerHeader(suite.register("bia@igreja.org"))

	var cfg service.NotificationConfig
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/notifications/config", nil, headers)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &cfg)
	suite.Equal(service.NotificationModeSimulated, cfg.Mode)
}

func (suite *RoutesTestSuite) TestUnknownRoute() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v2/nothing", nil)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
