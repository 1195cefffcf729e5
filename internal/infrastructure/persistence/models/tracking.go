package models

import (
	"time"

	"github.com/baletrack/backend/internal/domain/tracking"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderModel is the persistence model for the PurchaseOrder domain entity.
type PurchaseOrderModel struct {
	CompanyAggregateModel
	OrderNumber  string                       `gorm:"type:varchar(50);not null;uniqueIndex:idx_po_company_number,composite:company_id"`
	SupplierName string                       `gorm:"type:varchar(200)"`
	Status       tracking.PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'open'"`
	Notes        string                       `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the persistence model to a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) ToDomain() *tracking.PurchaseOrder {
	po := &tracking.PurchaseOrder{
		OrderNumber:  m.OrderNumber,
		SupplierName: m.SupplierName,
		Status:       m.Status,
		Notes:        m.Notes,
	}
	m.PopulateCompanyAggregateRoot(&po.CompanyAggregateRoot)
	return po
}

// FromDomain populates the persistence model from a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) FromDomain(po *tracking.PurchaseOrder) {
	m.FromDomainCompanyAggregateRoot(po.CompanyAggregateRoot)
	m.OrderNumber = po.OrderNumber
	m.SupplierName = po.SupplierName
	m.Status = po.Status
	m.Notes = po.Notes
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder.
func PurchaseOrderModelFromDomain(po *tracking.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(po)
	return m
}

// ShipmentModel is the persistence model for the Shipment domain entity.
type ShipmentModel struct {
	CompanyAggregateModel
	PurchaseOrderID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Reference       string                  `gorm:"type:varchar(50);not null"`
	VesselName      string                  `gorm:"type:varchar(200)"`
	DepartedAt      *time.Time              `gorm:""`
	Status          tracking.ShipmentStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes           string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ShipmentModel) TableName() string {
	return "shipments"
}

// ToDomain converts the persistence model to a domain Shipment entity.
func (m *ShipmentModel) ToDomain() *tracking.Shipment {
	s := &tracking.Shipment{
		PurchaseOrderID: m.PurchaseOrderID,
		Reference:       m.Reference,
		VesselName:      m.VesselName,
		DepartedAt:      m.DepartedAt,
		Status:          m.Status,
		Notes:           m.Notes,
	}
	m.PopulateCompanyAggregateRoot(&s.CompanyAggregateRoot)
	return s
}

// FromDomain populates the persistence model from a domain Shipment entity.
func (m *ShipmentModel) FromDomain(s *tracking.Shipment) {
	m.FromDomainCompanyAggregateRoot(s.CompanyAggregateRoot)
	m.PurchaseOrderID = s.PurchaseOrderID
	m.Reference = s.Reference
	m.VesselName = s.VesselName
	m.DepartedAt = s.DepartedAt
	m.Status = s.Status
	m.Notes = s.Notes
}

// ShipmentModelFromDomain creates a new persistence model from a domain Shipment.
func ShipmentModelFromDomain(s *tracking.Shipment) *ShipmentModel {
	m := &ShipmentModel{}
	m.FromDomain(s)
	return m
}

// ContainerModel is the persistence model for the Container domain entity.
type ContainerModel struct {
	CompanyAggregateModel
	ShipmentID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ContainerNumber string    `gorm:"type:varchar(50);not null"`
	SealNumber      string    `gorm:"type:varchar(50)"`
	Notes           string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ContainerModel) TableName() string {
	return "containers"
}

// ToDomain converts the persistence model to a domain Container entity.
func (m *ContainerModel) ToDomain() *tracking.Container {
	c := &tracking.Container{
		ShipmentID:      m.ShipmentID,
		ContainerNumber: m.ContainerNumber,
		SealNumber:      m.SealNumber,
		Notes:           m.Notes,
	}
	m.PopulateCompanyAggregateRoot(&c.CompanyAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Container entity.
func (m *ContainerModel) FromDomain(c *tracking.Container) {
	m.FromDomainCompanyAggregateRoot(c.CompanyAggregateRoot)
	m.ShipmentID = c.ShipmentID
	m.ContainerNumber = c.ContainerNumber
	m.SealNumber = c.SealNumber
	m.Notes = c.Notes
}

// ContainerModelFromDomain creates a new persistence model from a domain Container.
func ContainerModelFromDomain(c *tracking.Container) *ContainerModel {
	m := &ContainerModel{}
	m.FromDomain(c)
	return m
}

// BaleModel is the persistence model for the Bale domain entity. Shipment
// and purchase order ids are denormalized copies of the container's chain.
type BaleModel struct {
	CompanyAggregateModel
	ContainerID     uuid.UUID            `gorm:"type:uuid;not null;index"`
	ShipmentID      uuid.UUID            `gorm:"type:uuid;not null;index"`
	PurchaseOrderID uuid.UUID            `gorm:"type:uuid;not null;index"`
	BaleNumber      string               `gorm:"type:varchar(50);not null"`
	WeightKg        decimal.Decimal      `gorm:"type:numeric(10,2);not null"`
	MoisturePercent *decimal.Decimal     `gorm:"type:numeric(5,2)"`
	Color           tracking.BaleColor   `gorm:"type:varchar(20);not null"`
	Wetness         tracking.BaleWetness `gorm:"type:varchar(20);not null"`
	Mold            bool                 `gorm:"not null;default:false"`
	Contamination   bool                 `gorm:"not null;default:false"`
	Grade           tracking.Grade       `gorm:"type:varchar(10);not null;index"`
	InspectedBy     uuid.UUID            `gorm:"type:uuid;not null;index"`
	InspectionNotes string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BaleModel) TableName() string {
	return "bales"
}

// ToDomain converts the persistence model to a domain Bale entity.
func (m *BaleModel) ToDomain() *tracking.Bale {
	b := &tracking.Bale{
		ContainerID:     m.ContainerID,
		ShipmentID:      m.ShipmentID,
		PurchaseOrderID: m.PurchaseOrderID,
		BaleNumber:      m.BaleNumber,
		WeightKg:        m.WeightKg,
		MoisturePercent: m.MoisturePercent,
		Color:           m.Color,
		Wetness:         m.Wetness,
		Mold:            m.Mold,
		Contamination:   m.Contamination,
		Grade:           m.Grade,
		InspectedBy:     m.InspectedBy,
		InspectionNotes: m.InspectionNotes,
	}
	m.PopulateCompanyAggregateRoot(&b.CompanyAggregateRoot)
	return b
}

// FromDomain populates the persistence model from a domain Bale entity.
func (m *BaleModel) FromDomain(b *tracking.Bale) {
	m.FromDomainCompanyAggregateRoot(b.CompanyAggregateRoot)
	m.ContainerID = b.ContainerID
	m.ShipmentID = b.ShipmentID
	m.PurchaseOrderID = b.PurchaseOrderID
	m.BaleNumber = b.BaleNumber
	m.WeightKg = b.WeightKg
	m.MoisturePercent = b.MoisturePercent
	m.Color = b.Color
	m.Wetness = b.Wetness
	m.Mold = b.Mold
	m.Contamination = b.Contamination
	m.Grade = b.Grade
	m.InspectedBy = b.InspectedBy
	m.InspectionNotes = b.InspectionNotes
}

// BaleModelFromDomain creates a new persistence model from a domain Bale.
func BaleModelFromDomain(b *tracking.Bale) *BaleModel {
	m := &BaleModel{}
	m.FromDomain(b)
	return m
}

// POUserAssignmentModel is the persistence model for POUserAssignment.
type POUserAssignmentModel struct {
	BaseModel
	CompanyID       uuid.UUID `gorm:"type:uuid;not null;index"`
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assignments_po_user"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assignments_po_user"`
	GrantedBy       uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (POUserAssignmentModel) TableName() string {
	return "po_user_assignments"
}

// ToDomain converts the persistence model to a domain POUserAssignment.
func (m *POUserAssignmentModel) ToDomain() *tracking.POUserAssignment {
	return &tracking.POUserAssignment{
		BaseEntity:      m.BaseModel.ToDomain(),
		CompanyID:       m.CompanyID,
		PurchaseOrderID: m.PurchaseOrderID,
		UserID:          m.UserID,
		GrantedBy:       m.GrantedBy,
	}
}

// FromDomain populates the persistence model from a domain POUserAssignment.
func (m *POUserAssignmentModel) FromDomain(a *tracking.POUserAssignment) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.CompanyID = a.CompanyID
	m.PurchaseOrderID = a.PurchaseOrderID
	m.UserID = a.UserID
	m.GrantedBy = a.GrantedBy
}

// POUserAssignmentModelFromDomain creates a new persistence model from a domain assignment.
func POUserAssignmentModelFromDomain(a *tracking.POUserAssignment) *POUserAssignmentModel {
	m := &POUserAssignmentModel{}
	m.FromDomain(a)
	return m
}
