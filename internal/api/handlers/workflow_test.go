package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"volunteer-scheduler-backend/internal/api/handlers"
	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/mocks"
	"volunteer-scheduler-backend/internal/notifier"
	"volunteer-scheduler-backend/internal/service"
	"volunteer-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkflowHandlerTestSuite covers schedule generation, wizard, notifications and audit
type WorkflowHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	generator     *mocks.MockScheduleGeneratorInterface
	wizard        *mocks.MockWizardServiceInterface
	notifications *mocks.MockNotificationServiceInterface
	audit         *mocks.MockAuditServiceInterface
	actor         service.Actor
	httpSuite     *testutils.HTTPTestSuite
}

func (suite *WorkflowHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.generator = mocks.NewMockScheduleGeneratorInterface(suite.ctrl)
	suite.wizard = mocks.NewMockWizardServiceInterface(suite.ctrl)
	suite.notifications = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.audit = mocks.NewMockAuditServiceInterface(suite.ctrl)
	suite.actor = newAdmin()
	suite.httpSuite = newAuthedHTTPSuite(suite.actor)

	v1 := suite.httpSuite.Router.Group("/api/v1")

	scheduleHandler := handlers.NewScheduleHandler(suite.generator)
	v1.POST("/schedule/generate", scheduleHandler.GenerateSchedule)

	wizardHandler := handlers.NewWizardHandler(suite.wizard)
	v1.GET("/wizard/:scope", wizardHandler.GetWizard)
	v1.PUT("/wizard/:scope", wizardHandler.SetWizardStep)
	v1.POST("/wizard/:scope/advance", wizardHandler.AdvanceWizard)
	v1.DELETE("/wizard/:scope", wizardHandler.ResetWizard)

	notificationHandler := handlers.NewNotificationHandler(suite.notifications)
	v1.GET("/notifications/config", notificationHandler.GetConfig)
	v1.POST("/notifications/subscriptions", notificationHandler.Subscribe)
	v1.DELETE("/notifications/subscriptions", notificationHandler.Unsubscribe)
	v1.POST("/notifications/test", notificationHandler.SendTest)

	auditHandler := handlers.NewAuditHandler(suite.audit)
	v1.GET("/audit-logs", auditHandler.ListAuditLog)
}

func (suite *WorkflowHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkflowHandlerTestSuite) TestGenerateSchedule() {
	req := service.GenerateRequest{From: "2025-01-01", To: "2025-01-31", Instructions: "Ana prefers mornings"}
	drafts := []models.ServiceEvent{{
		Date:        time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		Title:       "Culto",
		Assignments: []models.Assignment{{Role: "Louvor", VolunteerID: suite.actor.UserID}},
	}}
	suite.generator.EXPECT().Generate(gomock.Any(), suite.actor, &req).Return(drafts, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/schedule/generate", req)

	suite.Equal(http.StatusOK, recorder.Code)
	var got []models.ServiceEvent
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &got))
	suite.Len(got, 1)
	suite.Len(got[0].Assignments, 1)
}

func (suite *WorkflowHandlerTestSuite) TestGenerateScheduleFailureIsRetryable() {
	req := service.GenerateRequest{From: "2025-01-01", To: "2025-01-31"}
	suite.generator.EXPECT().Generate(gomock.Any(), suite.actor, &req).
		Return(nil, apperrors.NewGenerationError("model returned no candidates", nil))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/schedule/generate", req)

	suite.Equal(http.StatusBadGateway, recorder.Code)
	body := decodeError(recorder)
	suite.Equal(true, body["retryable"])
	suite.Equal("Schedule generation failed", body["error"])
}

func (suite *WorkflowHandlerTestSuite) TestWizardGetAndAdvance() {
	suite.wizard.EXPECT().Get(gomock.Any(), suite.actor, models.WizardScopeOrganization).
		Return(&service.WizardState{Scope: models.WizardScopeOrganization, Step: 1, TerminalStep: 4}, nil)
	suite.wizard.EXPECT().Advance(gomock.Any(), suite.actor, models.WizardScopeOrganization).
		Return(&service.WizardState{Scope: models.WizardScopeOrganization, Step: 2, TerminalStep: 4}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/wizard/organization", nil)
	var state service.WizardState
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &state)
	suite.Equal(1, state.Step)

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/wizard/organization/advance", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &state)
	suite.Equal(2, state.Step)
}

func (suite *WorkflowHandlerTestSuite) TestWizardSetStepZero() {
	suite.wizard.EXPECT().SetStep(gomock.Any(), suite.actor, models.WizardScopeUser, 0).
		Return(&service.WizardState{Scope: models.WizardScopeUser}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/wizard/user", map[string]int{"step": 0})

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestWizardSetStepMissingBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/wizard/user", map[string]int{})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestWizardUnknownScope() {
	suite.wizard.EXPECT().Reset(gomock.Any(), suite.actor, models.WizardScope("team")).
		Return(apperrors.ErrInvalidWizardScope)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/wizard/team", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestNotificationConfig() {
	suite.notifications.EXPECT().Config().
		Return(service.NotificationConfig{Mode: service.NotificationModePush, PublicKey: "BPub"})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications/config", nil)

	var cfg service.NotificationConfig
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &cfg)
	suite.Equal("BPub", cfg.PublicKey)
}

func (suite *WorkflowHandlerTestSuite) TestSubscribeSimulated() {
	req := service.SubscriptionRequest{
		Endpoint: "https://push.example.com/abc",
		Keys:     service.SubscriptionKeys{P256dh: "p", Auth: "a"},
	}
	suite.notifications.EXPECT().Subscribe(gomock.Any(), suite.actor, &req).
		Return(service.NotificationConfig{Mode: service.NotificationModeSimulated}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/notifications/subscriptions", req)

	var cfg service.NotificationConfig
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &cfg)
	suite.Equal(service.NotificationModeSimulated, cfg.Mode)
}

func (suite *WorkflowHandlerTestSuite) TestUnsubscribe() {
	endpoint := "https://push.example.com/abc"
	suite.notifications.EXPECT().Unsubscribe(gomock.Any(), suite.actor, endpoint).Return(nil).Times(2)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/notifications/subscriptions?endpoint="+endpoint, nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/notifications/subscriptions",
		handlers.UnsubscribeRequest{Endpoint: endpoint})
	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestUnsubscribeRequiresEndpoint() {
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/notifications/subscriptions", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestSendTest() {
	suite.notifications.EXPECT().SendTest(gomock.Any(), suite.actor).
		Return(&service.TestNotificationResponse{
			Mode:    service.NotificationModePush,
			Message: notifier.Message{Title: "Test"},
			Result:  notifier.Result{Pushed: 1},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/notifications/test", nil)

	var resp service.TestNotificationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(1, resp.Result.Pushed)
}

func (suite *WorkflowHandlerTestSuite) TestAuditLogPagination() {
	suite.audit.EXPECT().List(gomock.Any(), suite.actor, 2, 10).
		Return(&service.AuditLogListResponse{Page: 2, PageSize: 10, Total: 15}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/audit-logs?page=2&page_size=10", nil)

	var resp service.AuditLogListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(15), resp.Total)
}

func (suite *WorkflowHandlerTestSuite) TestAuditLogDefaults() {
	suite.audit.EXPECT().List(gomock.Any(), suite.actor, 1, 50).
		Return(&service.AuditLogListResponse{Page: 1, PageSize: 50}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/audit-logs", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func TestWorkflowHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowHandlerTestSuite))
}
