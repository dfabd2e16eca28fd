package auth

import (
	"fmt"
	"time"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "volunteer-scheduler-backend"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID         string `json:"user_id" example:"3f2b6a9e-6f1c-4f51-9a43-2f5b7e0c1d22"`
	OrganizationID string `json:"organization_id" example:"a1d0c6e8-3f1b-4c7d-8e9f-0a1b2c3d4e5f"`
	Email          string `json:"email" example:"ana@igreja.org"`
	Role           string `json:"role" example:"admin"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserUUID parses the user id claim
func (c *AuthClaims) UserUUID() uuid.UUID {
	id, _ := uuid.Parse(c.UserID)
	return id
}

// OrganizationUUID parses the organization id claim
func (c *AuthClaims) OrganizationUUID() uuid.UUID {
	id, _ := uuid.Parse(c.OrganizationID)
	return id
}

// IsAdmin reports whether the token carries the admin role
func (c *AuthClaims) IsAdmin() bool {
	return c.Role == string(models.ProfileRoleAdmin)
}

// AuthService issues and validates access tokens
type AuthService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, expiry time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("token expiry must be positive")
	}
	return &AuthService{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}, nil
}

// Expiry returns the lifetime of issued tokens
func (s *AuthService) Expiry() time.Duration {
	return s.expiry
}

// GenerateJWT creates a signed token for the profile
func (s *AuthService) GenerateJWT(profile *models.Profile) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:         profile.ID.String(),
		OrganizationID: profile.OrganizationID.String(),
		Email:          profile.Email,
		Role:           string(profile.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   profile.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, apperrors.NewAuthenticationError("failed to parse token: " + err.Error())
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}
	if claims.UserUUID() == uuid.Nil || claims.OrganizationUUID() == uuid.Nil {
		return nil, apperrors.NewAuthenticationError("token is missing user or organization")
	}

	return claims, nil
}
