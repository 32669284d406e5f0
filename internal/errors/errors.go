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
	Context string // Additional context like "for this worker and date"
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

// InvalidStateTransitionError is returned when a lifecycle operation is
// invoked from a state that does not allow it. It signals caller misuse,
// not a policy rejection.
type InvalidStateTransitionError struct {
	Entity string
	Action string
	From   string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: cannot %s %s in status %s", e.Action, e.Entity, e.From)
}

// Is matches any InvalidStateTransitionError for the same entity, or any at all
// when the target leaves Entity empty.
func (e *InvalidStateTransitionError) Is(target error) bool {
	t, ok := target.(*InvalidStateTransitionError)
	if !ok {
		return false
	}
	return t.Entity == "" || e.Entity == t.Entity
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

// Entity Not Found Errors
var (
	ErrAssignmentNotFound      = &NotFoundError{Entity: "assignment"}
	ErrPostNotFound            = &NotFoundError{Entity: "post"}
	ErrShiftNotFound           = &NotFoundError{Entity: "shift"}
	ErrWorkerNotFound          = &NotFoundError{Entity: "worker"}
	ErrSiteNotFound            = &NotFoundError{Entity: "site"}
	ErrApprovalRequestNotFound = &NotFoundError{Entity: "approval request"}
	ErrAcknowledgementNotFound = &NotFoundError{Entity: "acknowledgement"}
)

// Already Exists Errors
var (
	ErrDoubleBooking          = &AlreadyExistsError{Entity: "assignment", Context: "for this worker with an overlapping window"}
	ErrAcknowledgementExists  = &AlreadyExistsError{Entity: "acknowledgement", Context: "for this worker, post version and date"}
	ErrSiteAssignmentExists   = &AlreadyExistsError{Entity: "site assignment", Context: "for this worker"}
	ErrEscalationAlreadyFiled = &AlreadyExistsError{Entity: "escalation", Context: "for this approval request"}
)

// Concurrency Errors
var (
	ErrOptimisticLock    = errors.New("record was modified concurrently, reload and retry")
	ErrLockNotAcquired   = errors.New("could not acquire record lock")
	ErrLockBackendFailed = errors.New("lock backend unavailable")
)

// Business Logic Errors
var (
	ErrInvalidCoordinates      = &ValidationError{Field: "coordinates", Message: "latitude must be within -90..90 and longitude within -180..180"}
	ErrInvalidBoundary         = &ValidationError{Field: "boundary", Message: "geofence boundary is not usable"}
	ErrOverrideReasonRequired  = &ValidationError{Field: "reason", Message: "override reason is required"}
	ErrRejectReasonRequired    = &ValidationError{Field: "reason", Message: "rejection reason is required"}
	ErrCheckoutBeforeCheckin   = &ValidationError{Field: "checked_out_at", Message: "check-out must be after check-in"}
	ErrInvalidTimeRange        = &ValidationError{Field: "time", Message: "invalid time range"}
	ErrInvalidClockTime        = &ValidationError{Field: "time", Message: "clock time must be HH:MM"}
	ErrInvalidDate             = &ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"}
	ErrUnsupportedRequestType  = &ValidationError{Field: "type", Message: "unsupported approval request type"}
	ErrHardBlockNotOverridable = &ValidationError{Field: "reason_code", Message: "hard-block failures cannot be overridden"}
	ErrApprovalExpired         = errors.New("approval request has expired")
	ErrCoverageAlreadyMet      = errors.New("post coverage is already met")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authorization Errors
var (
	ErrNotRequester        = &AuthorizationError{Message: "only the original requester may cancel this request"}
	ErrReviewerRequired    = &AuthorizationError{Message: "a supervisor or staff role is required"}
	ErrMissingUserIdentity = &AuthenticationError{Message: "user identity not found in context"}
)

// Configuration Errors
var (
	ErrLDAPNotConfigured  = &ConfigurationError{Message: "LDAP directory is not configured"}
	ErrRedisNotConfigured = &ConfigurationError{Message: "REDIS_ADDR is required when LOCK_BACKEND=redis"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsInvalidStateTransition checks if an error is an InvalidStateTransitionError
func IsInvalidStateTransition(err error) bool {
	var stateErr *InvalidStateTransitionError
	return errors.As(err, &stateErr)
}

// IsConflict reports errors that should surface as HTTP 409
func IsConflict(err error) bool {
	return errors.Is(err, ErrOptimisticLock) ||
		errors.Is(err, ErrLockNotAcquired) ||
		errors.Is(err, ErrApprovalExpired) ||
		IsAlreadyExists(err) ||
		IsInvalidStateTransition(err)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
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

// NewInvalidStateTransitionError creates a new InvalidStateTransitionError
func NewInvalidStateTransitionError(entity, action, from string) error {
	return &InvalidStateTransitionError{Entity: entity, Action: action, From: from}
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
