package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"volunteer-scheduler-backend/internal/auth"
	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Actor is the authenticated caller a service acts on behalf of
type Actor struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	Admin          bool
}

// ActorFromClaims builds an Actor from validated token claims
func ActorFromClaims(claims *auth.AuthClaims) Actor {
	return Actor{
		UserID:         claims.UserUUID(),
		OrganizationID: claims.OrganizationUUID(),
		Admin:          claims.IsAdmin(),
	}
}

func (a Actor) requireAdmin() error {
	if !a.Admin {
		return apperrors.ErrAdminRequired
	}
	return nil
}

// validate runs struct validation and reports the first failing field as a
// ValidationError.
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// parseDate parses a YYYY-MM-DD calendar date in UTC
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// parseOptionalDate returns nil for an empty value
func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
