package models

import (
	"time"

	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel provides common persistence fields for aggregate roots.
// It extends BaseModel with version for optimistic locking.
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// CompanyAggregateModel provides common persistence fields for
// company-scoped aggregate roots. It extends AggregateModel with the owning
// company id and creator info.
type CompanyAggregateModel struct {
	AggregateModel
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`
}

// FromDomainCompanyAggregateRoot populates CompanyAggregateModel from domain CompanyAggregateRoot
func (m *CompanyAggregateModel) FromDomainCompanyAggregateRoot(c shared.CompanyAggregateRoot) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.CompanyID = c.CompanyID
	m.CreatedBy = c.CreatedBy
}

// PopulateCompanyAggregateRoot populates a domain CompanyAggregateRoot from persistence model
func (m *CompanyAggregateModel) PopulateCompanyAggregateRoot(c *shared.CompanyAggregateRoot) {
	c.BaseAggregateRoot.BaseEntity.ID = m.ID
	c.BaseAggregateRoot.BaseEntity.CreatedAt = m.CreatedAt
	c.BaseAggregateRoot.BaseEntity.UpdatedAt = m.UpdatedAt
	c.BaseAggregateRoot.Version = m.Version
	c.CompanyID = m.CompanyID
	c.CreatedBy = m.CreatedBy
}
