package handler

import (
	identityapp "github.com/baletrack/backend/internal/application/identity"
	"github.com/baletrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email,max=200"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	DisplayName string `json:"display_name" binding:"max=100"`
	Role        string `json:"role" binding:"required"`
}

// UpdateUserRequest is the request body for updating a user
type UpdateUserRequest struct {
	DisplayName string `json:"display_name" binding:"omitempty,max=100"`
	Role        string `json:"role"`
	IsActive    *bool  `json:"is_active"`
}

// UserListRequest carries listing query parameters for users
type UserListRequest struct {
	dto.ListRequest
	Role     string `form:"role"`
	IsActive *bool  `form:"is_active"`
}

// Create creates a new user in the caller's company
func (h *UserHandler) Create(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), principal, identityapp.CreateUserRequest{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// GetByID retrieves a user by ID
func (h *UserHandler) GetByID(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), principal, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// List retrieves the users of the caller's company
func (h *UserHandler) List(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), principal, identityapp.UserListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := pageMeta(req.ListRequest)
	h.SuccessWithMeta(c, users, total, page, pageSize)
}

// Update modifies a user's profile, role, or active flag
func (h *UserHandler) Update(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), principal, userID, identityapp.UpdateUserRequest{
		DisplayName: req.DisplayName,
		Role:        req.Role,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// Delete removes a user from the caller's company
func (h *UserHandler) Delete(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), principal, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
