package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(role models.ProfileRole) *models.Profile {
	p := &models.Profile{
		OrganizationID: uuid.New(),
		Email:          "ana@igreja.org",
		FullName:       "Ana",
		Role:           role,
	}
	p.ID = uuid.New()
	return p
}

func TestNewAuthService(t *testing.T) {
	_, err := NewAuthService("", time.Hour)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is required")

	_, err = NewAuthService("secret", 0)
	assert.Error(t, err)

	svc, err := NewAuthService("secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.Expiry())
}

func TestGenerateAndValidateJWT(t *testing.T) {
	svc, err := NewAuthService("test-secret", time.Hour)
	require.NoError(t, err)

	profile := testProfile(models.ProfileRoleAdmin)
	token, err := svc.GenerateJWT(profile)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, claims.UserUUID())
	assert.Equal(t, profile.OrganizationID, claims.OrganizationUUID())
	assert.Equal(t, "ana@igreja.org", claims.Email)
	assert.True(t, claims.IsAdmin())
}

func TestValidateJWTRejects(t *testing.T) {
	svc, err := NewAuthService("test-secret", time.Hour)
	require.NoError(t, err)
	profile := testProfile(models.ProfileRoleVolunteer)

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := NewAuthService("other-secret", time.Hour)
		token, err := other.GenerateJWT(profile)
		require.NoError(t, err)
		_, err = svc.ValidateJWT(token)
		assert.True(t, apperrors.IsAuthentication(err), "got %v", err)
	})

	t.Run("expired", func(t *testing.T) {
		past, _ := NewAuthService("test-secret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.GenerateJWT(profile)
		require.NoError(t, err)
		_, err = svc.ValidateJWT(token)
		assert.True(t, apperrors.IsAuthentication(err), "got %v", err)
	})

	t.Run("wrong signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{UserID: profile.ID.String()})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ValidateJWT(signed)
		assert.True(t, apperrors.IsAuthentication(err), "got %v", err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not-a-token")
		assert.True(t, apperrors.IsAuthentication(err), "got %v", err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3nha-forte")
	require.NoError(t, err)
	assert.NotEqual(t, "s3nha-forte", hash)
	assert.True(t, CheckPasswordHash("s3nha-forte", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, err := NewAuthService("test-secret", time.Hour)
	require.NoError(t, err)
	middleware := NewAuthMiddleware(svc)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		require.True(t, ok)
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "email": email})
	})
	router.GET("/admin", middleware.RequireAuth(), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	volunteerToken, err := svc.GenerateJWT(testProfile(models.ProfileRoleVolunteer))
	require.NoError(t, err)
	adminToken, err := svc.GenerateJWT(testProfile(models.ProfileRoleAdmin))
	require.NoError(t, err)

	testCases := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"missing header", "/me", "", http.StatusUnauthorized},
		{"not bearer", "/me", "Token " + volunteerToken, http.StatusUnauthorized},
		{"invalid token", "/me", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "/me", "Bearer " + volunteerToken, http.StatusOK},
		{"volunteer on admin route", "/admin", "Bearer " + volunteerToken, http.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer " + adminToken, http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRequireAdminWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.ErrMissingClaims.Error())
}
