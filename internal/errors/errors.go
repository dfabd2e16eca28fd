package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// BackendError wraps any failure coming from the relational store:
// transport, authorization or constraint violations.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("backend error during %s", e.Op)
	}
	return fmt.Sprintf("backend error during %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// GenerationError is returned when the AI schedule draft could not be produced.
// No partial result accompanies it.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("schedule generation failed: %s", e.Reason)
	}
	return fmt.Sprintf("schedule generation failed: %s: %v", e.Reason, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NotificationSetupError signals that push notifications cannot be used.
// Callers degrade to simulated notifications instead of failing.
type NotificationSetupError struct {
	Reason string
	Err    error
}

func (e *NotificationSetupError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("notification setup failed: %s", e.Reason)
	}
	return fmt.Sprintf("notification setup failed: %s: %v", e.Reason, e.Err)
}

func (e *NotificationSetupError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrProfileNotFound      = &NotFoundError{Entity: "profile"}
	ErrVolunteerNotFound    = &NotFoundError{Entity: "volunteer"}
	ErrEventTypeNotFound    = &NotFoundError{Entity: "event type"}
	ErrServiceNotFound      = &NotFoundError{Entity: "service"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrAssignmentNotFound   = &NotFoundError{Entity: "assignment"}
)

// Already Exists Errors
var (
	ErrMinistryExists = &AlreadyExistsError{Entity: "ministry", Context: "with this name in the organization"}
	ErrProfileExists  = &AlreadyExistsError{Entity: "profile", Context: "with this email"}
)

// Business Logic Errors
var (
	ErrInvalidDateRange    = &ValidationError{Field: "to", Message: "end date must not be before start date"}
	ErrInvalidRecurrence   = &ValidationError{Field: "rrule", Message: "invalid recurrence rule"}
	ErrInvalidWizardStep   = &ValidationError{Field: "step", Message: "step is out of range"}
	ErrInvalidWizardScope  = &ValidationError{Field: "scope", Message: "unknown wizard scope"}
	ErrInvalidStatus       = &ValidationError{Field: "status", Message: "status must be pending, confirmed or declined"}
	ErrInvalidMinistryIcon = &ValidationError{Field: "icon", Message: "unknown ministry icon"}
	ErrInvalidEventColor   = &ValidationError{Field: "color", Message: "unknown event type color"}
	ErrTooManyOccurrences  = &ValidationError{Field: "rrule", Message: "recurrence expands to too many services"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingClaims      = &AuthenticationError{Message: "authentication context missing"}
	ErrAdminRequired      = &AuthorizationError{Message: "administrator role required"}
	ErrNotAssignee        = &AuthorizationError{Message: "only the assigned volunteer can respond"}
)

// Configuration Errors
var (
	ErrGeminiAPIKeyNotSet = &ConfigurationError{Message: "GEMINI_API_KEY environment variable not set"}
	ErrVAPIDKeysNotSet    = &ConfigurationError{Message: "VAPID_PUBLIC_KEY and VAPID_PRIVATE_KEY must be set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsBackend checks if an error is a BackendError
func IsBackend(err error) bool {
	var backendErr *BackendError
	return errors.As(err, &backendErr)
}

// IsGeneration checks if an error is a GenerationError
func IsGeneration(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsNotificationSetup checks if an error is a NotificationSetupError
func IsNotificationSetup(err error) bool {
	var setupErr *NotificationSetupError
	return errors.As(err, &setupErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewBackendError wraps a storage failure for the named operation.
// A nil err yields nil so callers can wrap unconditionally.
func NewBackendError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}

// NewGenerationError creates a new GenerationError
func NewGenerationError(reason string, err error) error {
	return &GenerationError{Reason: reason, Err: err}
}

// NewNotificationSetupError creates a new NotificationSetupError
func NewNotificationSetupError(reason string, err error) error {
	return &NotificationSetupError{Reason: reason, Err: err}
}
