package handler

import (
	"time"

	trackingapp "github.com/baletrack/backend/internal/application/tracking"
	"github.com/gin-gonic/gin"
)

// ShipmentHandler handles shipment endpoints
type ShipmentHandler struct {
	BaseHandler
	shipmentService *trackingapp.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler
func NewShipmentHandler(shipmentService *trackingapp.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentService: shipmentService,
	}
}

// CreateShipmentRequest is the request body for creating a shipment
type CreateShipmentRequest struct {
	Reference string `json:"reference" binding:"required,min=1,max=100"`
}

// UpdateShipmentRequest is the request body for updating a shipment
type UpdateShipmentRequest struct {
	VesselName string `json:"vessel_name" binding:"omitempty,max=200"`
	Notes      string `json:"notes" binding:"omitempty,max=2000"`
}

// DepartShipmentRequest is the request body for marking a departure.
// DepartedAt defaults to the current time when omitted.
type DepartShipmentRequest struct {
	DepartedAt *time.Time `json:"departed_at"`
}

// Create creates a shipment under a purchase order
func (h *ShipmentHandler) Create(c *gin.Context) {
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

	var req CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	shipment, err := h.shipmentService.Create(c.Request.Context(), principal, poID, trackingapp.CreateShipmentRequest{
		Reference: req.Reference,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, shipment)
}

// GetByID retrieves a shipment by ID
func (h *ShipmentHandler) GetByID(c *gin.Context) {
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

	shipment, err := h.shipmentService.GetByID(c.Request.Context(), principal, shipmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shipment)
}

// ListByPurchaseOrder retrieves the shipments of a purchase order
func (h *ShipmentHandler) ListByPurchaseOrder(c *gin.Context) {
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

	var req TrackingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	shipments, total, err := h.shipmentService.ListByPurchaseOrder(c.Request.Context(), principal, poID, req.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := pageMeta(req.ListRequest)
	h.SuccessWithMeta(c, shipments, total, page, pageSize)
}

// Update modifies a shipment's mutable fields
func (h *ShipmentHandler) Update(c *gin.Context) {
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

	var req UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	shipment, err := h.shipmentService.Update(c.Request.Context(), principal, shipmentID, trackingapp.UpdateShipmentRequest{
		VesselName: req.VesselName,
		Notes:      req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shipment)
}

// Depart marks a shipment as departed
func (h *ShipmentHandler) Depart(c *gin.Context) {
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

	var req DepartShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.HandleBindingError(c, err)
		return
	}

	departedAt := time.Now()
	if req.DepartedAt != nil {
		departedAt = *req.DepartedAt
	}

	shipment, err := h.shipmentService.Depart(c.Request.Context(), principal, shipmentID, departedAt)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shipment)
}

// MarkArrived marks a shipment as arrived
func (h *ShipmentHandler) MarkArrived(c *gin.Context) {
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

	shipment, err := h.shipmentService.MarkArrived(c.Request.Context(), principal, shipmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shipment)
}

// Delete removes a shipment
func (h *ShipmentHandler) Delete(c *gin.Context) {
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

	if err := h.shipmentService.Delete(c.Request.Context(), principal, shipmentID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
