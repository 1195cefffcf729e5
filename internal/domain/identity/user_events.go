package identity

import (
	"github.com/baletrack/backend/internal/domain/shared"
)

// Event types for the user aggregate
const (
	EventTypeUserCreated     = "identity.user.created"
	EventTypeUserRoleChanged = "identity.user.role_changed"
)

// UserCreatedEvent is raised when a new user is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, "User", user.ID, user.CompanyID),
		Email:           user.Email,
		Role:            user.Role,
	}
}

// UserRoleChangedEvent is raised when a user's role changes
type UserRoleChangedEvent struct {
	shared.BaseDomainEvent
	Role Role `json:"role"`
}

// NewUserRoleChangedEvent creates a new UserRoleChangedEvent
func NewUserRoleChangedEvent(user *User) *UserRoleChangedEvent {
	return &UserRoleChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRoleChanged, "User", user.ID, user.CompanyID),
		Role:            user.Role,
	}
}
