package handlers

import (
	"context"
	"net/http"
	"time"

	"guard-deployment-backend/internal/database/models"
	"guard-deployment-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles check-ins and assignment lifecycle requests
type AssignmentHandler struct {
	service service.AssignmentServiceInterface
	now     Clock
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{service: service, now: systemClock}
}

// ValidateCheckIn handles POST /api/v1/checkins/validate
// @Summary Dry-run a check-in
// @Description Run the check-in validation pipeline without changing anything
// @Tags checkins
// @Accept json
// @Produce json
// @Param checkin body service.CheckInRequest true "Check-in attempt"
// @Success 200 {object} service.CheckInOutcome "Pipeline verdict"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /checkins/validate [post]
func (h *AssignmentHandler) ValidateCheckIn(c *gin.Context) {
	req, ok := h.checkInRequest(c)
	if !ok {
		return
	}

	outcome, err := h.service.ValidateCheckIn(c, req)
	if err != nil {
		respondError(c, err, "Failed to validate check-in")
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// CheckIn handles POST /api/v1/checkins
// @Summary Check in to a post
// @Description Validate the attempt and start the matched assignment. A rejected attempt is returned with 422 and may open an override request.
// @Tags checkins
// @Accept json
// @Produce json
// @Param checkin body service.CheckInRequest true "Check-in attempt"
// @Success 200 {object} service.CheckInResponse "Checked in"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Assignment modified concurrently"
// @Failure 422 {object} service.CheckInResponse "Check-in rejected by policy"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /checkins [post]
func (h *AssignmentHandler) CheckIn(c *gin.Context) {
	req, ok := h.checkInRequest(c)
	if !ok {
		return
	}

	resp, err := h.service.CheckIn(c, req)
	if err != nil {
		respondError(c, err, "Failed to check in")
		return
	}
	if resp.Result != nil && !resp.Result.Valid {
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssignmentHandler) checkInRequest(c *gin.Context) (*service.CheckInRequest, bool) {
	actor, ok := actorFrom(c)
	if !ok {
		return nil, false
	}
	var req service.CheckInRequest
	if !bindJSON(c, &req) {
		return nil, false
	}
	req.At = h.now()
	req.RequestedBy = actor.Username
	req.CorrelationID = correlationID(c)
	return &req, true
}

// GetAssignment handles GET /api/v1/assignments/:id
// @Summary Get assignment by ID
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} models.Assignment
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, ok := pathUUID(c, "id", "assignment")
	if !ok {
		return
	}
	a, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err, "Failed to get assignment")
		return
	}
	c.JSON(http.StatusOK, a)
}

// ConfirmAssignment handles POST /api/v1/assignments/:id/confirm
// @Summary Confirm a scheduled assignment
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} models.Assignment
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed from the current status"
// @Security BearerAuth
// @Router /assignments/{id}/confirm [post]
func (h *AssignmentHandler) ConfirmAssignment(c *gin.Context) {
	h.transition(c, h.service.Confirm, "Failed to confirm assignment")
}

// CheckOut handles POST /api/v1/assignments/:id/checkout
// @Summary Check out of an assignment
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} models.Assignment
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed from the current status"
// @Security BearerAuth
// @Router /assignments/{id}/checkout [post]
func (h *AssignmentHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.service.CheckOut, "Failed to check out")
}

// CancelAssignment handles POST /api/v1/assignments/:id/cancel
// @Summary Cancel an assignment
// @Description Only staff or the user who made the assignment may cancel it
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} models.Assignment
// @Failure 403 {object} ErrorResponse "Not allowed to cancel"
// @Failure 409 {object} ErrorResponse "Transition not allowed from the current status"
// @Security BearerAuth
// @Router /assignments/{id}/cancel [post]
func (h *AssignmentHandler) CancelAssignment(c *gin.Context) {
	h.transition(c, h.service.Cancel, "Failed to cancel assignment")
}

// MarkNoShow handles POST /api/v1/assignments/:id/no-show
// @Summary Mark an assignment as no-show
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} models.Assignment
// @Failure 409 {object} ErrorResponse "Transition not allowed from the current status"
// @Security BearerAuth
// @Router /assignments/{id}/no-show [post]
func (h *AssignmentHandler) MarkNoShow(c *gin.Context) {
	h.transition(c, h.service.MarkNoShow, "Failed to mark no-show")
}

type assignmentTransition func(ctx context.Context, id uuid.UUID, actor service.Actor, at time.Time) (*models.Assignment, error)

func (h *AssignmentHandler) transition(c *gin.Context, fn assignmentTransition, fallback string) {
	id, ok := pathUUID(c, "id", "assignment")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	a, err := fn(c, id, actor, h.now())
	if err != nil {
		respondError(c, err, fallback)
		return
	}
	c.JSON(http.StatusOK, a)
}
