package service

import (
	"context"
	"fmt"
	"strings"

	"volunteer-scheduler-backend/internal/auth"
	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/logger"
	"volunteer-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TokenIssuer signs session tokens for profiles
type TokenIssuer interface {
	GenerateJWT(profile *models.Profile) (string, error)
}

// AccountService handles church registration, volunteer sign-up and sign-in
type AccountService struct {
	orgRepo     repository.OrganizationRepositoryInterface
	profileRepo repository.ProfileRepositoryInterface
	tokens      TokenIssuer
	validator   *validator.Validate
}

// NewAccountService creates a new AccountService
func NewAccountService(orgRepo repository.OrganizationRepositoryInterface, profileRepo repository.ProfileRepositoryInterface, tokens TokenIssuer, validator *validator.Validate) *AccountService {
	return &AccountService{
		orgRepo:     orgRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		validator:   validator,
	}
}

// RegisterRequest registers a church and its first administrator
type RegisterRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=1,max=200"`
	FullName         string `json:"full_name" validate:"required,min=1,max=200"`
	Email            string `json:"email" validate:"required,email,max=255"`
	Password         string `json:"password" validate:"required,min=8,max=72"`
}

// SignupRequest creates a volunteer account inside an existing organization
type SignupRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	FullName       string    `json:"full_name" validate:"required,min=1,max=200"`
	Email          string    `json:"email" validate:"required,email,max=255"`
	Password       string    `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is an email/password sign-in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after a successful sign-in
type AuthResponse struct {
	Token        string               `json:"token"`
	Profile      *models.Profile      `json:"profile"`
	Organization *models.Organization `json:"organization,omitempty"`
}

// Register creates the organization and its admin profile in one transaction
func (s *AccountService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	org := &models.Organization{Name: strings.TrimSpace(req.OrganizationName)}
	admin := &models.Profile{
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
	}
	if err := s.orgRepo.RegisterWithAdmin(ctx, org, admin); err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"organization_id": org.ID.String(),
		"user_id":         admin.ID.String(),
	}).Info("Organization registered")

	return s.issue(admin, org)
}

// Signup creates a volunteer profile and its roster entry with the same id
func (s *AccountService) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	org, err := s.orgRepo.GetByID(ctx, req.OrganizationID)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.FullName)
	profile := &models.Profile{
		OrganizationID: org.ID,
		Email:          email,
		PasswordHash:   hash,
		FullName:       name,
		Role:           models.ProfileRoleVolunteer,
	}
	volunteer := &models.Volunteer{
		Name:  name,
		Email: email,
		Roles: []string{},
	}
	if err := s.profileRepo.CreateWithVolunteer(ctx, profile, volunteer); err != nil {
		return nil, err
	}

	return s.issue(profile, org)
}

// Login checks the password and issues a token
func (s *AccountService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPasswordHash(req.Password, profile.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(profile, nil)
}

// Me returns the caller's profile
func (s *AccountService) Me(ctx context.Context, actor Actor) (*models.Profile, error) {
	return s.profileRepo.GetByID(ctx, actor.UserID)
}

// Organization returns the caller's organization
func (s *AccountService) Organization(ctx context.Context, actor Actor) (*models.Organization, error) {
	return s.orgRepo.GetByID(ctx, actor.OrganizationID)
}

func (s *AccountService) issue(profile *models.Profile, org *models.Organization) (*AuthResponse, error) {
	token, err := s.tokens.GenerateJWT(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Token: token, Profile: profile, Organization: org}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
