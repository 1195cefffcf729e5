package identity

import (
	"time"

	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// SignupInput contains the input for company signup
type SignupInput struct {
	CompanyCode string
	CompanyName string
	Email       string
	Password    string
	DisplayName string
}

// SignupResult contains the result of a successful signup
type SignupResult struct {
	Company CompanyInfo
	User    UserInfo
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
	IP       string // Client IP for login tracking
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains basic user information returned by identity operations
type UserInfo struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Email       string
	DisplayName string
	Role        identity.Role
	IsActive    bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
}

// CompanyInfo contains basic company information
type CompanyInfo struct {
	ID        uuid.UUID
	Code      string
	Name      string
	Country   string
	Status    identity.CompanyStatus
	Notes     string
	CreatedAt time.Time
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	TokenJTI  string
	TokenTTL  time.Duration
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// CreateUserRequest contains the input for creating a user
type CreateUserRequest struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

// UpdateUserRequest contains the mutable user fields
type UpdateUserRequest struct {
	DisplayName string
	Role        string
	IsActive    *bool
}

// UserListFilter contains filtering options for user listing
type UserListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Role     string
	IsActive *bool
}

// UpdateCompanyRequest contains the mutable company fields
type UpdateCompanyRequest struct {
	Name    string
	Country string
	Notes   string
}

// ToUserInfo converts a domain user to its DTO representation
func ToUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		CompanyID:   user.CompanyID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// ToCompanyInfo converts a domain company to its DTO representation
func ToCompanyInfo(company *identity.Company) CompanyInfo {
	return CompanyInfo{
		ID:        company.ID,
		Code:      company.Code,
		Name:      company.Name,
		Country:   company.Country,
		Status:    company.Status,
		Notes:     company.Notes,
		CreatedAt: company.CreatedAt,
	}
}
