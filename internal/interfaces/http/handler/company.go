package handler

import (
	identityapp "github.com/baletrack/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company self-management endpoints. Companies are
// only ever visible to their own members; there is no cross-company
// listing surface.
type CompanyHandler struct {
	BaseHandler
	companyService *identityapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *identityapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// UpdateCompanyRequest is the request body for updating the own company
type UpdateCompanyRequest struct {
	Name    string `json:"name" binding:"omitempty,min=1,max=200"`
	Country string `json:"country" binding:"omitempty,max=100"`
	Notes   string `json:"notes" binding:"omitempty,max=2000"`
}

// GetOwn returns the caller's company
func (h *CompanyHandler) GetOwn(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	company, err := h.companyService.GetOwn(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, company)
}

// UpdateOwn updates the caller's company profile
func (h *CompanyHandler) UpdateOwn(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	company, err := h.companyService.UpdateOwn(c.Request.Context(), principal, identityapp.UpdateCompanyRequest{
		Name:    req.Name,
		Country: req.Country,
		Notes:   req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, company)
}
