package handlers

import (
	"errors"
	"net/http"
	"time"

	"guard-deployment-backend/internal/auth"
	apperrors "guard-deployment-backend/internal/errors"
	"guard-deployment-backend/internal/logger"
	"guard-deployment-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Clock returns the current instant; handlers take it so tests can pin time
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err), errors.Is(err, apperrors.ErrCoverageAlreadyMet):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrLockBackendFailed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// actorFrom builds the service actor from the authenticated request
func actorFrom(c *gin.Context) (service.Actor, bool) {
	username, ok := auth.GetUsername(c)
	if !ok || username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserIdentity.Error()})
		return service.Actor{}, false
	}
	role, _ := auth.GetRole(c)
	return service.Actor{Username: username, Role: role}, true
}

// pathUUID parses the named path parameter
func pathUUID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the body, answering 400 on malformed input
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}

// correlationID prefers the client's correlation id over the request id
func correlationID(c *gin.Context) string {
	if cid := c.GetString(logger.CorrelationIDKey); cid != "" {
		return cid
	}
	return c.GetString(logger.RequestIDKey)
}
