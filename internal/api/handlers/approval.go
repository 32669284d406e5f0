package handlers

import (
	"net/http"
	"strconv"

	"guard-deployment-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApproveRequest carries the reviewer's optional notes and, for an
// emergency assignment opened without a candidate, the chosen worker
type ApproveRequest struct {
	Notes    string     `json:"notes" binding:"max=2000"`
	WorkerID *uuid.UUID `json:"worker_id,omitempty"`
}

// RejectRequest carries the mandatory rejection reason
type RejectRequest struct {
	Reason string `json:"reason" binding:"max=2000"`
}

// ApprovalHandler handles HTTP requests for approval requests
type ApprovalHandler struct {
	service service.ApprovalServiceInterface
	now     Clock
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(service service.ApprovalServiceInterface) *ApprovalHandler {
	return &ApprovalHandler{service: service, now: systemClock}
}

// OpenApproval handles POST /api/v1/approvals
// @Summary Open an approval request
// @Description Open a validation override, emergency assignment or shift change request. Matching auto-approval rules resolve it immediately.
// @Tags approvals
// @Accept json
// @Produce json
// @Param request body service.OpenApprovalRequest true "Approval request"
// @Success 201 {object} models.ApprovalRequest
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /approvals [post]
func (h *ApprovalHandler) OpenApproval(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.OpenApprovalRequest
	if !bindJSON(c, &req) {
		return
	}
	req.RequestedBy = actor.Username
	req.Now = h.now()

	r, err := h.service.Open(c, &req)
	if err != nil {
		respondError(c, err, "Failed to open approval request")
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ListPending handles GET /api/v1/approvals
// @Summary List pending approval requests
// @Description Pending requests ordered by priority, then age
// @Tags approvals
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ApprovalListResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Security BearerAuth
// @Router /approvals [get]
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_size parameter"})
		return
	}

	list, err := h.service.ListPending(c, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list approval requests")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetApproval handles GET /api/v1/approvals/:id
// @Summary Get approval request by ID
// @Tags approvals
// @Produce json
// @Param id path string true "Approval request ID (UUID)"
// @Success 200 {object} models.ApprovalRequest
// @Failure 400 {object} ErrorResponse "Invalid approval request ID"
// @Failure 404 {object} ErrorResponse "Approval request not found"
// @Security BearerAuth
// @Router /approvals/{id} [get]
func (h *ApprovalHandler) GetApproval(c *gin.Context) {
	id, ok := pathUUID(c, "id", "approval request")
	if !ok {
		return
	}
	r, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err, "Failed to get approval request")
		return
	}
	c.JSON(http.StatusOK, r)
}

// Approve handles POST /api/v1/approvals/:id/approve
// @Summary Approve a pending request
// @Description Approve and run the approved action. Requires a supervisor or staff role.
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Approval request ID (UUID)"
// @Param body body ApproveRequest false "Reviewer notes and emergency worker"
// @Success 200 {object} models.ApprovalRequest
// @Failure 400 {object} ErrorResponse "Worker missing or not allowed for this request"
// @Failure 403 {object} ErrorResponse "Reviewer role required"
// @Failure 409 {object} ErrorResponse "Request is no longer pending or has expired"
// @Security BearerAuth
// @Router /approvals/{id}/approve [post]
func (h *ApprovalHandler) Approve(c *gin.Context) {
	id, ok := pathUUID(c, "id", "approval request")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var body ApproveRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &body) {
		return
	}

	r, err := h.service.Approve(c, id, actor, service.ApprovalDecision{Notes: body.Notes, WorkerID: body.WorkerID}, h.now())
	if err != nil {
		respondError(c, err, "Failed to approve request")
		return
	}
	c.JSON(http.StatusOK, r)
}

// Reject handles POST /api/v1/approvals/:id/reject
// @Summary Reject a pending request
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Approval request ID (UUID)"
// @Param body body RejectRequest true "Rejection reason"
// @Success 200 {object} models.ApprovalRequest
// @Failure 400 {object} ErrorResponse "Reason is required"
// @Failure 403 {object} ErrorResponse "Reviewer role required"
// @Failure 409 {object} ErrorResponse "Request is no longer pending"
// @Security BearerAuth
// @Router /approvals/{id}/reject [post]
func (h *ApprovalHandler) Reject(c *gin.Context) {
	id, ok := pathUUID(c, "id", "approval request")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var body RejectRequest
	if !bindJSON(c, &body) {
		return
	}

	r, err := h.service.Reject(c, id, actor, body.Reason, h.now())
	if err != nil {
		respondError(c, err, "Failed to reject request")
		return
	}
	c.JSON(http.StatusOK, r)
}

// CancelApproval handles POST /api/v1/approvals/:id/cancel
// @Summary Withdraw a pending request
// @Description Only the original requester may cancel
// @Tags approvals
// @Produce json
// @Param id path string true "Approval request ID (UUID)"
// @Success 200 {object} models.ApprovalRequest
// @Failure 403 {object} ErrorResponse "Not the requester"
// @Failure 409 {object} ErrorResponse "Request is no longer pending"
// @Security BearerAuth
// @Router /approvals/{id}/cancel [post]
func (h *ApprovalHandler) CancelApproval(c *gin.Context) {
	id, ok := pathUUID(c, "id", "approval request")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	r, err := h.service.Cancel(c, id, actor, h.now())
	if err != nil {
		respondError(c, err, "Failed to cancel request")
		return
	}
	c.JSON(http.StatusOK, r)
}
