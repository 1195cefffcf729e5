package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents a user in the system. A user belongs to exactly one
// company and carries exactly one role from the closed role set.
// It is the aggregate root for user-related operations.
type User struct {
	shared.CompanyAggregateRoot
	Email          string
	PasswordHash   string
	DisplayName    string
	Role           Role
	IsActive       bool
	LastLoginAt    *time.Time
	LastLoginIP    string
	FailedAttempts int
	LockedUntil    *time.Time
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NewUser creates a new active user with required fields
func NewUser(companyID uuid.UUID, email, password string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Email:                email,
		PasswordHash:         passwordHash,
		Role:                 role,
		IsActive:             true,
	}

	user.AddDomainEvent(NewUserCreatedEvent(user))

	return user, nil
}

// SetDisplayName sets the user's display name
func (u *User) SetDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_DISPLAY_NAME", "Display name cannot exceed 200 characters")
	}

	u.DisplayName = name
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// ChangeRole changes the user's role
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	if u.Role == role {
		return nil
	}

	u.Role = role
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserRoleChangedEvent(u))

	return nil
}

// ChangePassword verifies the current password and sets a new one
func (u *User) ChangePassword(currentPassword, newPassword string) error {
	if !u.VerifyPassword(currentPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// VerifyPassword checks the given password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Deactivate deactivates the user
func (u *User) Deactivate() error {
	if !u.IsActive {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "User is already deactivated")
	}

	u.IsActive = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// Activate reactivates the user
func (u *User) Activate() error {
	if u.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "User is already active")
	}

	u.IsActive = true
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// IsLocked reports whether the user is temporarily locked out
func (u *User) IsLocked() bool {
	return u.LockedUntil != nil && u.LockedUntil.After(time.Now())
}

// CanLogin reports whether the user may authenticate right now
func (u *User) CanLogin() bool {
	return u.IsActive && !u.IsLocked()
}

// RecordLoginFailure records a failed login attempt and locks the account
// after maxAttempts consecutive failures. Returns true if the account was
// locked by this failure.
func (u *User) RecordLoginFailure(maxAttempts int, lockDuration time.Duration) bool {
	u.FailedAttempts++
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	if u.FailedAttempts >= maxAttempts {
		until := time.Now().Add(lockDuration)
		u.LockedUntil = &until
		return true
	}
	return false
}

// RecordLoginSuccess resets failure tracking and records login metadata
func (u *User) RecordLoginSuccess(ip string) {
	now := time.Now()
	u.LastLoginAt = &now
	u.LastLoginIP = ip
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.UpdatedAt = now
	u.IncrementVersion()
}

// Capability returns the capability record for the user's role
func (u *User) Capability() Capability {
	return CapabilityFor(u.Role)
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
