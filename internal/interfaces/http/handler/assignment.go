package handler

import (
	trackingapp "github.com/baletrack/backend/internal/application/tracking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles purchase order assignment endpoints
type AssignmentHandler struct {
	BaseHandler
	assignmentService *trackingapp.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler
func NewAssignmentHandler(assignmentService *trackingapp.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// CreateAssignmentRequest is the request body for granting an assignment
type CreateAssignmentRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// Grant assigns a customer or supplier user to a purchase order
func (h *AssignmentHandler) Grant(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	poID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	assignment, err := h.assignmentService.Grant(c.Request.Context(), principal, poID, trackingapp.CreateAssignmentRequest{
		UserID: req.UserID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, assignment)
}

// Revoke removes a user's assignment from a purchase order
func (h *AssignmentHandler) Revoke(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	poID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	if err := h.assignmentService.Revoke(c.Request.Context(), principal, poID, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListByPurchaseOrder retrieves the assignments on a purchase order
func (h *AssignmentHandler) ListByPurchaseOrder(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	poID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	assignments, err := h.assignmentService.ListByPurchaseOrder(c.Request.Context(), principal, poID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, assignments)
}
