package handlers

import (
	"net/http"

	"guard-deployment-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PostHandler handles post coverage, dispatch and post orders requests
type PostHandler struct {
	dispatch service.DispatchServiceInterface
	orders   service.PostOrdersServiceInterface
	now      Clock
}

// NewPostHandler creates a new post handler
func NewPostHandler(dispatch service.DispatchServiceInterface, orders service.PostOrdersServiceInterface) *PostHandler {
	return &PostHandler{dispatch: dispatch, orders: orders, now: systemClock}
}

// GetCoverage handles GET /api/v1/posts/:id/coverage
// @Summary Post coverage for a date
// @Tags posts
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Param date query string true "Date in the site's time zone (YYYY-MM-DD)"
// @Success 200 {object} service.Coverage
// @Failure 400 {object} ErrorResponse "Invalid post ID or date"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /posts/{id}/coverage [get]
func (h *PostHandler) GetCoverage(c *gin.Context) {
	id, ok := pathUUID(c, "id", "post")
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	cov, err := h.dispatch.PostCoverage(c, id, date)
	if err != nil {
		respondError(c, err, "Failed to compute coverage")
		return
	}
	c.JSON(http.StatusOK, cov)
}

// Dispatch handles POST /api/v1/posts/:id/dispatch
// @Summary Fill a post's coverage gap
// @Description Assign the best qualified available workers or escalate to an urgent emergency assignment request
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Param body body service.DispatchRequest true "Shift and date to fill"
// @Success 200 {object} service.DispatchResult
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Reviewer role required"
// @Failure 409 {object} ErrorResponse "Coverage already met"
// @Security BearerAuth
// @Router /posts/{id}/dispatch [post]
func (h *PostHandler) Dispatch(c *gin.Context) {
	id, ok := pathUUID(c, "id", "post")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.DispatchRequest
	if !bindJSON(c, &req) {
		return
	}
	req.PostID = id
	req.RequestedBy = actor.Username
	req.Now = h.now()

	result, err := h.dispatch.Dispatch(c, &req)
	if err != nil {
		respondError(c, err, "Failed to dispatch")
		return
	}
	c.JSON(http.StatusOK, result)
}

// ReviseOrders handles PUT /api/v1/posts/:id/orders
// @Summary Replace a post's orders
// @Description Changed content bumps the post orders version and invalidates earlier acknowledgements
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Param body body service.ReviseOrdersRequest true "New post orders"
// @Success 200 {object} models.Post
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Post modified concurrently"
// @Security BearerAuth
// @Router /posts/{id}/orders [put]
func (h *PostHandler) ReviseOrders(c *gin.Context) {
	id, ok := pathUUID(c, "id", "post")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.ReviseOrdersRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.orders.ReviseOrders(c, id, &req, actor)
	if err != nil {
		respondError(c, err, "Failed to revise post orders")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Acknowledge handles POST /api/v1/posts/:id/acknowledgements
// @Summary Acknowledge the current post orders
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Param body body service.AcknowledgeRequest true "Acknowledging worker"
// @Success 201 {object} models.PostOrdersAcknowledgement
// @Failure 400 {object} ErrorResponse "Invalid request or stale version"
// @Failure 409 {object} ErrorResponse "Already acknowledged today"
// @Security BearerAuth
// @Router /posts/{id}/acknowledgements [post]
func (h *PostHandler) Acknowledge(c *gin.Context) {
	id, ok := pathUUID(c, "id", "post")
	if !ok {
		return
	}
	var req service.AcknowledgeRequest
	if !bindJSON(c, &req) {
		return
	}

	ack, err := h.orders.Acknowledge(c, id, &req, h.now())
	if err != nil {
		respondError(c, err, "Failed to record acknowledgement")
		return
	}
	c.JSON(http.StatusCreated, ack)
}

// VerifyAcknowledgement handles GET /api/v1/acknowledgements/:id/verify
// @Summary Verify an acknowledgement
// @Description Reports whether the acknowledgement is for the current orders and whether its content hash still matches
// @Tags posts
// @Produce json
// @Param id path string true "Acknowledgement ID (UUID)"
// @Success 200 {object} service.AcknowledgementVerification
// @Failure 404 {object} ErrorResponse "Acknowledgement not found"
// @Security BearerAuth
// @Router /acknowledgements/{id}/verify [get]
func (h *PostHandler) VerifyAcknowledgement(c *gin.Context) {
	id, ok := pathUUID(c, "id", "acknowledgement")
	if !ok {
		return
	}

	v, err := h.orders.VerifyAcknowledgement(c, id)
	if err != nil {
		respondError(c, err, "Failed to verify acknowledgement")
		return
	}
	c.JSON(http.StatusOK, v)
}
