package handlers_test

import (
	"encoding/json"
	"net/http/httptest"

	"volunteer-scheduler-backend/internal/auth"
	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/service"
	"volunteer-scheduler-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// newAuthedHTTPSuite returns a router whose requests carry claims for actor
func newAuthedHTTPSuite(actor service.Actor) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.ContextWithFallback = true
	role := models.ProfileRoleVolunteer
	if actor.Admin {
		role = models.ProfileRoleAdmin
	}
	httpSuite.Router.Use(func(c *gin.Context) {
		auth.SetClaims(c, &auth.AuthClaims{
			UserID:         actor.UserID.String(),
			OrganizationID: actor.OrganizationID.String(),
			Email:          "ana@igreja.org",
			Role:           string(role),
		})
		c.Next()
	})
	return httpSuite
}

func newAdmin() service.Actor {
	return service.Actor{UserID: uuid.New(), OrganizationID: uuid.New(), Admin: true}
}

func decodeError(recorder *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(recorder.Body.Bytes(), &body)
	return body
}
