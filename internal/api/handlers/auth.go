package handlers

import (
	"net/http"

	"volunteer-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, sign-up, sign-in and the caller's identity
type AuthHandler struct {
	accountService service.AccountServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountService service.AccountServiceInterface) *AuthHandler {
	return &AuthHandler{accountService: accountService}
}

// Register handles POST /api/auth/register
// @Summary Register a church
// @Description Create an organization and its first administrator in one transaction
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Registration"
// @Success 201 {object} service.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 429 {object} ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.accountService.Register(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Signup handles POST /api/auth/signup
// @Summary Volunteer sign-up
// @Description Create a volunteer account and roster entry inside an organization
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.SignupRequest true "Sign-up"
// @Success 201 {object} service.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.accountService.Signup(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} service.AuthResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.accountService.Login(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/v1/me
// @Summary Current profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	profile, err := h.accountService.Me(c, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Organization handles GET /api/v1/organization
// @Summary Current organization
// @Tags auth
// @Produce json
// @Success 200 {object} models.Organization
// @Security BearerAuth
// @Router /api/v1/organization [get]
func (h *AuthHandler) Organization(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	org, err := h.accountService.Organization(c, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}
