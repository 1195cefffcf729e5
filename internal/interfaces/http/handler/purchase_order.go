package handler

import (
	trackingapp "github.com/baletrack/backend/internal/application/tracking"
	"github.com/gin-gonic/gin"
)

// PurchaseOrderHandler handles purchase order endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	poService *trackingapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(poService *trackingapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		poService: poService,
	}
}

// CreatePurchaseOrderRequest is the request body for creating a purchase order
type CreatePurchaseOrderRequest struct {
	OrderNumber  string `json:"order_number" binding:"required,min=1,max=50"`
	SupplierName string `json:"supplier_name" binding:"required,min=1,max=200"`
}

// UpdatePurchaseOrderRequest is the request body for updating a purchase order
type UpdatePurchaseOrderRequest struct {
	SupplierName string `json:"supplier_name" binding:"omitempty,min=1,max=200"`
	Notes        string `json:"notes" binding:"omitempty,max=2000"`
}

// Create creates a new purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	po, err := h.poService.Create(c.Request.Context(), principal, trackingapp.CreatePurchaseOrderRequest{
		OrderNumber:  req.OrderNumber,
		SupplierName: req.SupplierName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, po)
}

// GetByID retrieves a purchase order by ID
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
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

	po, err := h.poService.GetByID(c.Request.Context(), principal, poID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, po)
}

// List retrieves purchase orders visible to the caller. Assignment-scoped
// roles only see purchase orders they are assigned to.
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req TrackingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	orders, total, err := h.poService.List(c.Request.Context(), principal, req.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := pageMeta(req.ListRequest)
	h.SuccessWithMeta(c, orders, total, page, pageSize)
}

// Update modifies a purchase order's mutable fields
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
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

	var req UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	po, err := h.poService.Update(c.Request.Context(), principal, poID, trackingapp.UpdatePurchaseOrderRequest{
		SupplierName: req.SupplierName,
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, po)
}

// Close closes a purchase order, freezing its shipment tree
func (h *PurchaseOrderHandler) Close(c *gin.Context) {
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

	po, err := h.poService.Close(c.Request.Context(), principal, poID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, po)
}

// Delete removes a purchase order
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
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

	if err := h.poService.Delete(c.Request.Context(), principal, poID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// GradeSummary returns per-grade bale counts across the purchase order's
// whole shipment tree.
func (h *PurchaseOrderHandler) GradeSummary(c *gin.Context) {
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

	summary, err := h.poService.GradeSummary(c.Request.Context(), principal, poID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
