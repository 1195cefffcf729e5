package models

import (
	"time"

	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/domain/shared"
)

// CompanyModel is the persistence model for the Company domain entity.
type CompanyModel struct {
	AggregateModel
	Code    string                 `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name    string                 `gorm:"type:varchar(200);not null"`
	Country string                 `gorm:"type:varchar(100)"`
	Status  identity.CompanyStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Notes   string                 `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *identity.Company {
	return &identity.Company{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Code:    m.Code,
		Name:    m.Name,
		Country: m.Country,
		Status:  m.Status,
		Notes:   m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Company entity.
func (m *CompanyModel) FromDomain(c *identity.Company) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	m.Country = c.Country
	m.Status = c.Status
	m.Notes = c.Notes
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity.
func CompanyModelFromDomain(c *identity.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	CompanyAggregateModel
	Email          string        `gorm:"type:varchar(200);not null;uniqueIndex:idx_users_company_email,composite:company_id"`
	PasswordHash   string        `gorm:"type:varchar(255);not null"`
	DisplayName    string        `gorm:"type:varchar(200)"`
	Role           identity.Role `gorm:"type:varchar(20);not null"`
	IsActive       bool          `gorm:"not null;default:true"`
	LastLoginAt    *time.Time    `gorm:"index"`
	LastLoginIP    string        `gorm:"type:varchar(45)"`
	FailedAttempts int           `gorm:"not null;default:0"`
	LockedUntil    *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		DisplayName:    m.DisplayName,
		Role:           m.Role,
		IsActive:       m.IsActive,
		LastLoginAt:    m.LastLoginAt,
		LastLoginIP:    m.LastLoginIP,
		FailedAttempts: m.FailedAttempts,
		LockedUntil:    m.LockedUntil,
	}
	m.PopulateCompanyAggregateRoot(&user.CompanyAggregateRoot)
	return user
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainCompanyAggregateRoot(u.CompanyAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.DisplayName = u.DisplayName
	m.Role = u.Role
	m.IsActive = u.IsActive
	m.LastLoginAt = u.LastLoginAt
	m.LastLoginIP = u.LastLoginIP
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
