package handler

import (
	trackingapp "github.com/baletrack/backend/internal/application/tracking"
	"github.com/gin-gonic/gin"
)

// ContainerHandler handles container endpoints
type ContainerHandler struct {
	BaseHandler
	containerService *trackingapp.ContainerService
}

// NewContainerHandler creates a new ContainerHandler
func NewContainerHandler(containerService *trackingapp.ContainerService) *ContainerHandler {
	return &ContainerHandler{
		containerService: containerService,
	}
}

// CreateContainerRequest is the request body for creating a container
type CreateContainerRequest struct {
	ContainerNumber string `json:"container_number" binding:"required,min=1,max=50"`
}

// UpdateContainerRequest is the request body for updating a container
type UpdateContainerRequest struct {
	SealNumber string `json:"seal_number" binding:"omitempty,max=50"`
	Notes      string `json:"notes" binding:"omitempty,max=2000"`
}

// Create creates a container under a shipment
func (h *ContainerHandler) Create(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shipmentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	var req CreateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	container, err := h.containerService.Create(c.Request.Context(), principal, shipmentID, trackingapp.CreateContainerRequest{
		ContainerNumber: req.ContainerNumber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, container)
}

// GetByID retrieves a container by ID
func (h *ContainerHandler) GetByID(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	containerID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid container ID format")
		return
	}

	container, err := h.containerService.GetByID(c.Request.Context(), principal, containerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, container)
}

// ListByShipment retrieves the containers of a shipment
func (h *ContainerHandler) ListByShipment(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shipmentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	var req TrackingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	containers, total, err := h.containerService.ListByShipment(c.Request.Context(), principal, shipmentID, req.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := pageMeta(req.ListRequest)
	h.SuccessWithMeta(c, containers, total, page, pageSize)
}

// Update modifies a container's mutable fields
func (h *ContainerHandler) Update(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	containerID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid container ID format")
		return
	}

	var req UpdateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	container, err := h.containerService.Update(c.Request.Context(), principal, containerID, trackingapp.UpdateContainerRequest{
		SealNumber: req.SealNumber,
		Notes:      req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, container)
}

// Delete removes a container
func (h *ContainerHandler) Delete(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	containerID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid container ID format")
		return
	}

	if err := h.containerService.Delete(c.Request.Context(), principal, containerID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
