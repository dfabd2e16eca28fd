package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "volunteer"}
		assert.Equal(t, "volunteer not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrEventTypeNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("load service: %w", ErrServiceNotFound)
		assert.True(t, errors.Is(wrapped, ErrServiceNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrVolunteerNotFound))
		assert.False(t, IsNotFound(ErrMinistryExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "ministry already exists with this name in the organization", ErrMinistryExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrProfileExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrInvalidWizardStep))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestBackendError(t *testing.T) {
	t.Run("nil error yields nil", func(t *testing.T) {
		assert.NoError(t, NewBackendError("list volunteers", nil))
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewBackendError("list volunteers", cause)
		assert.Equal(t, "backend error during list volunteers: connection refused", err.Error())
		assert.True(t, IsBackend(err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("keeps already exists detail", func(t *testing.T) {
		err := NewBackendError("create ministry", ErrMinistryExists)
		assert.True(t, IsBackend(err))
		assert.True(t, IsAlreadyExists(err))
	})
}

func TestGenerationError(t *testing.T) {
	err := NewGenerationError("malformed response", errors.New("unexpected EOF"))
	assert.Equal(t, "schedule generation failed: malformed response: unexpected EOF", err.Error())
	assert.True(t, IsGeneration(err))
	assert.False(t, IsBackend(err))

	bare := NewGenerationError("empty response", nil)
	assert.Equal(t, "schedule generation failed: empty response", bare.Error())
}

func TestNotificationSetupError(t *testing.T) {
	err := NewNotificationSetupError("vapid keys missing", ErrVAPIDKeysNotSet)
	assert.True(t, IsNotificationSetup(err))
	assert.True(t, IsConfiguration(err))
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthorization(ErrAdminRequired))
	assert.True(t, IsAuthorization(ErrNotAssignee))
	assert.False(t, IsAuthorization(ErrInvalidCredentials))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		assert.True(t, IsConfiguration(NewConfigurationError("missing")))
	})
}
