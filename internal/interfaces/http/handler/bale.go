package handler

import (
	trackingapp "github.com/baletrack/backend/internal/application/tracking"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BaleHandler handles bale inspection endpoints
type BaleHandler struct {
	BaseHandler
	baleService *trackingapp.BaleService
}

// NewBaleHandler creates a new BaleHandler
func NewBaleHandler(baleService *trackingapp.BaleService) *BaleHandler {
	return &BaleHandler{
		baleService: baleService,
	}
}

// InspectBaleRequest carries the raw inspection measurements. The grade
// and the bale's ancestry ids are computed server-side; any client-sent
// values for them are ignored.
type InspectBaleRequest struct {
	BaleNumber      string   `json:"bale_number" binding:"required,min=1,max=50"`
	WeightKg        float64  `json:"weight_kg" binding:"required,gt=0"`
	MoisturePercent *float64 `json:"moisture_percent" binding:"omitempty,gte=0,lte=100"`
	Color           string   `json:"color" binding:"required"`
	Wetness         string   `json:"wetness" binding:"required"`
	Mold            bool     `json:"mold"`
	Contamination   bool     `json:"contamination"`
	Notes           string   `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateBaleNotesRequest is the request body for editing inspection notes
type UpdateBaleNotesRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

func (r InspectBaleRequest) toAppRequest() trackingapp.InspectBaleRequest {
	req := trackingapp.InspectBaleRequest{
		BaleNumber:    r.BaleNumber,
		WeightKg:      decimal.NewFromFloat(r.WeightKg),
		Color:         r.Color,
		Wetness:       r.Wetness,
		Mold:          r.Mold,
		Contamination: r.Contamination,
		Notes:         r.Notes,
	}
	if r.MoisturePercent != nil {
		m := decimal.NewFromFloat(*r.MoisturePercent)
		req.MoisturePercent = &m
	}
	return req
}

// Create records a new bale inspection under a container
func (h *BaleHandler) Create(c *gin.Context) {
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

	var req InspectBaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	bale, err := h.baleService.Create(c.Request.Context(), principal, containerID, req.toAppRequest())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, bale)
}

// GetByID retrieves a bale by ID
func (h *BaleHandler) GetByID(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	baleID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bale ID format")
		return
	}

	bale, err := h.baleService.GetByID(c.Request.Context(), principal, baleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bale)
}

// ListByContainer retrieves the bales of a container
func (h *BaleHandler) ListByContainer(c *gin.Context) {
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

	var req TrackingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	bales, total, err := h.baleService.ListByContainer(c.Request.Context(), principal, containerID, req.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := pageMeta(req.ListRequest)
	h.SuccessWithMeta(c, bales, total, page, pageSize)
}

// Reinspect replaces a bale's measurements and recomputes its grade
func (h *BaleHandler) Reinspect(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	baleID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bale ID format")
		return
	}

	var req InspectBaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	bale, err := h.baleService.Reinspect(c.Request.Context(), principal, baleID, req.toAppRequest())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bale)
}

// UpdateNotes edits a bale's inspection notes
func (h *BaleHandler) UpdateNotes(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	baleID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bale ID format")
		return
	}

	var req UpdateBaleNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	bale, err := h.baleService.UpdateNotes(c.Request.Context(), principal, baleID, trackingapp.UpdateBaleNotesRequest{
		Notes: req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bale)
}

// Delete removes a bale
func (h *BaleHandler) Delete(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	baleID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bale ID format")
		return
	}

	if err := h.baleService.Delete(c.Request.Context(), principal, baleID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
