package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"volunteer-scheduler-backend/internal/api/handlers"
	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/mocks"
	"volunteer-scheduler-backend/internal/service"
	"volunteer-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceEventHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockServiceEventServiceInterface
	actor       service.Actor
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *ServiceEventHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockServiceEventServiceInterface(suite.ctrl)
	suite.actor = newAdmin()
	suite.httpSuite = newAuthedHTTPSuite(suite.actor)

	handler := handlers.NewServiceEventHandler(suite.mockService)
	services := suite.httpSuite.Router.Group("/api/v1/services")
	{
		services.GET("", handler.ListServices)
		services.POST("", handler.CreateService)
		services.POST("/recurring", handler.CreateRecurringServices)
		services.GET("/eligible-volunteers", handler.EligibleVolunteers)
		services.PUT("/:id", handler.UpdateService)
		services.DELETE("/:id", handler.DeleteService)
		services.POST("/:id/assignments", handler.AddAssignment)
		services.POST("/:id/team-assignments", handler.AssignTeam)
		services.DELETE("/:id/assignments/:index", handler.RemoveAssignment)
		services.PUT("/:id/assignments/:index/status", handler.RespondToAssignment)
	}
}

func (suite *ServiceEventHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ServiceEventHandlerTestSuite) TestListServicesPassesRange() {
	svc := models.ServiceEvent{Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Title: "Culto"}
	suite.mockService.EXPECT().
		List(gomock.Any(), suite.actor, "2025-01-01", "2025-01-31").
		Return([]models.ServiceEvent{svc}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/services?from=2025-01-01&to=2025-01-31", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	var got []models.ServiceEvent
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &got))
	suite.Len(got, 1)
	suite.Equal("Culto", got[0].Title)
}

func (suite *ServiceEventHandlerTestSuite) TestListServicesInvalidRange() {
	suite.mockService.EXPECT().
		List(gomock.Any(), suite.actor, "2025-02-01", "2025-01-01").
		Return(nil, apperrors.ErrInvalidDateRange)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/services?from=2025-02-01&to=2025-01-01", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("Invalid request", decodeError(recorder)["error"])
}

func (suite *ServiceEventHandlerTestSuite) TestCreateService() {
	req := service.ServiceEventRequest{Date: "2025-01-05", Title: "Culto"}
	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.actor, &req).
		Return(&models.ServiceEvent{Title: "Culto"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/services", req)

	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *ServiceEventHandlerTestSuite) TestCreateServiceMalformedBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/services", "not an object")

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("Invalid request body", decodeError(recorder)["error"])
}

func (suite *ServiceEventHandlerTestSuite) TestCreateRecurring() {
	req := service.RecurringRequest{RRule: "FREQ=WEEKLY;BYDAY=SU", From: "2025-01-01", To: "2025-01-31", Title: "Culto"}
	suite.mockService.EXPECT().
		CreateRecurring(gomock.Any(), suite.actor, &req).
		Return(make([]models.ServiceEvent, 4), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/services/recurring", req)

	suite.Equal(http.StatusCreated, recorder.Code)
	var got []models.ServiceEvent
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &got))
	suite.Len(got, 4)
}

func (suite *ServiceEventHandlerTestSuite) TestUpdateServiceInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/services/not-a-uuid", service.ServiceEventRequest{Date: "2025-01-05", Title: "x"})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *ServiceEventHandlerTestSuite) TestDeleteService() {
	id := uuid.New()
	suite.mockService.EXPECT().Remove(gomock.Any(), suite.actor, id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/services/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *ServiceEventHandlerTestSuite) TestAddAssignmentServiceMissing() {
	id := uuid.New()
	req := service.AssignmentRequest{Role: "Louvor", VolunteerID: uuid.New()}
	suite.mockService.EXPECT().
		AddAssignment(gomock.Any(), suite.actor, id, &req).
		Return(nil, apperrors.ErrServiceNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/services/"+id.String()+"/assignments", req)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "service not found")
}

func (suite *ServiceEventHandlerTestSuite) TestAssignTeam() {
	id := uuid.New()
	req := service.TeamAssignmentRequest{Role: "Louvor", TeamID: uuid.New()}
	suite.mockService.EXPECT().
		AssignTeam(gomock.Any(), suite.actor, id, &req).
		Return(&models.ServiceEvent{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/services/"+id.String()+"/team-assignments", req)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *ServiceEventHandlerTestSuite) TestRemoveAssignment() {
	id := uuid.New()
	suite.mockService.EXPECT().
		RemoveAssignment(gomock.Any(), suite.actor, id, 2).
		Return(&models.ServiceEvent{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/services/"+id.String()+"/assignments/2", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *ServiceEventHandlerTestSuite) TestRemoveAssignmentBadIndex() {
	id := uuid.New()
	for _, index := range []string{"-1", "first"} {
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/services/"+id.String()+"/assignments/"+index, nil)
		suite.Equal(http.StatusBadRequest, recorder.Code, index)
	}
}

func (suite *ServiceEventHandlerTestSuite) TestRespondToAssignment() {
	id := uuid.New()
	suite.mockService.EXPECT().
		RespondToAssignment(gomock.Any(), suite.actor, id, 0, models.AssignmentStatusConfirmed).
		Return(&models.ServiceEvent{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/services/"+id.String()+"/assignments/0/status",
		map[string]string{"status": "confirmed"})

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *ServiceEventHandlerTestSuite) TestRespondToAssignmentNotAssignee() {
	id := uuid.New()
	suite.mockService.EXPECT().
		RespondToAssignment(gomock.Any(), suite.actor, id, 0, models.AssignmentStatusDeclined).
		Return(nil, apperrors.ErrNotAssignee)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/services/"+id.String()+"/assignments/0/status",
		map[string]string{"status": "declined"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "only the assigned volunteer can respond")
}

func (suite *ServiceEventHandlerTestSuite) TestEligibleVolunteers() {
	suite.mockService.EXPECT().
		EligibleVolunteers(gomock.Any(), suite.actor, "Louvor", "2025-01-05").
		Return([]models.Volunteer{{Name: "Ana"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/services/eligible-volunteers?role=Louvor&date=2025-01-05", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *ServiceEventHandlerTestSuite) TestEligibleVolunteersRequiresRole() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/services/eligible-volunteers", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *ServiceEventHandlerTestSuite) TestBackendErrorIs500() {
	suite.mockService.EXPECT().
		List(gomock.Any(), suite.actor, "", "").
		Return(nil, apperrors.NewBackendError("list services", errors.New("connection refused")))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/services", nil)

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.Equal("Backend error", decodeError(recorder)["error"])
}

func TestServiceEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceEventHandlerTestSuite))
}
