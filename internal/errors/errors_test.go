package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "post"}
		assert.Equal(t, "post not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "post"}, &NotFoundError{Entity: "post"}))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrPostNotFound, ErrShiftNotFound))
	})

	t.Run("IsNotFound helper through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get assignment: %w", ErrAssignmentNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrAssignmentNotFound))
		assert.False(t, IsNotFound(ErrOptimisticLock))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "assignment already exists for this worker with an overlapping window", ErrDoubleBooking.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "site"}
		assert.Equal(t, "site already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrDoubleBooking))
		assert.False(t, IsAlreadyExists(ErrPostNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "reason", Message: "required"}
		assert.Equal(t, "validation error: reason - required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrInvalidCoordinates))
		assert.True(t, IsValidation(NewValidationError("date", "bad")))
		assert.False(t, IsValidation(ErrPostNotFound))
	})
}

func TestInvalidStateTransitionError(t *testing.T) {
	err := NewInvalidStateTransitionError("assignment", "check in", "COMPLETED")

	assert.Equal(t, "invalid state transition: cannot check in assignment in status COMPLETED", err.Error())
	assert.True(t, IsInvalidStateTransition(fmt.Errorf("wrapped: %w", err)))
	assert.True(t, errors.Is(err, &InvalidStateTransitionError{}))
	assert.True(t, errors.Is(err, &InvalidStateTransitionError{Entity: "assignment"}))
	assert.False(t, errors.Is(err, &InvalidStateTransitionError{Entity: "approval request"}))
	assert.False(t, IsInvalidStateTransition(ErrDoubleBooking))
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(ErrOptimisticLock))
	assert.True(t, IsConflict(fmt.Errorf("save: %w", ErrLockNotAcquired)))
	assert.True(t, IsConflict(ErrApprovalExpired))
	assert.True(t, IsConflict(ErrDoubleBooking))
	assert.True(t, IsConflict(NewInvalidStateTransitionError("assignment", "confirm", "CANCELLED")))
	assert.False(t, IsConflict(ErrPostNotFound))
	assert.False(t, IsConflict(ErrInvalidCoordinates))
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthorization(ErrNotRequester))
	assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
	assert.False(t, IsAuthorization(ErrMissingUserIdentity))
	assert.True(t, IsAuthentication(ErrMissingUserIdentity))
	assert.True(t, IsConfiguration(ErrRedisNotConfigured))
	assert.True(t, IsConfiguration(NewConfigurationError("missing")))
}
