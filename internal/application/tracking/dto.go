package tracking

import (
	"time"

	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/baletrack/backend/internal/domain/tracking"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest contains the input for creating a purchase order
type CreatePurchaseOrderRequest struct {
	OrderNumber  string
	SupplierName string
}

// UpdatePurchaseOrderRequest contains the mutable purchase order fields
type UpdatePurchaseOrderRequest struct {
	SupplierName string
	Notes        string
}

// PurchaseOrderResponse is the DTO representation of a purchase order
type PurchaseOrderResponse struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	OrderNumber  string
	SupplierName string
	Status       tracking.PurchaseOrderStatus
	Notes        string
	CreatedBy    *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Version      int
}

// GradeSummaryResponse holds per-grade bale counts for a purchase order
type GradeSummaryResponse struct {
	PurchaseOrderID uuid.UUID
	Counts          map[tracking.Grade]int64
	Total           int64
}

// ListFilter contains common pagination and ordering options
type ListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Status   string
	Grade    string
}

// CreateShipmentRequest contains the input for creating a shipment
type CreateShipmentRequest struct {
	Reference string
}

// UpdateShipmentRequest contains the mutable shipment fields
type UpdateShipmentRequest struct {
	VesselName string
	Notes      string
}

// ShipmentResponse is the DTO representation of a shipment
type ShipmentResponse struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	PurchaseOrderID uuid.UUID
	Reference       string
	VesselName      string
	DepartedAt      *time.Time
	Status          tracking.ShipmentStatus
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int
}

// CreateContainerRequest contains the input for creating a container
type CreateContainerRequest struct {
	ContainerNumber string
}

// UpdateContainerRequest contains the mutable container fields
type UpdateContainerRequest struct {
	SealNumber string
	Notes      string
}

// ContainerResponse is the DTO representation of a container
type ContainerResponse struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	ShipmentID      uuid.UUID
	ContainerNumber string
	SealNumber      string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int
}

// InspectBaleRequest contains the raw inspection measurements for a bale.
// The grade is always computed server-side from these values.
type InspectBaleRequest struct {
	BaleNumber      string
	WeightKg        decimal.Decimal
	MoisturePercent *decimal.Decimal
	Color           string
	Wetness         string
	Mold            bool
	Contamination   bool
	Notes           string
}

// UpdateBaleNotesRequest contains the input for editing inspection notes
type UpdateBaleNotesRequest struct {
	Notes string
}

// BaleResponse is the DTO representation of a bale
type BaleResponse struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	ContainerID     uuid.UUID
	ShipmentID      uuid.UUID
	PurchaseOrderID uuid.UUID
	BaleNumber      string
	WeightKg        decimal.Decimal
	MoisturePercent *decimal.Decimal
	Color           tracking.BaleColor
	Wetness         tracking.BaleWetness
	Mold            bool
	Contamination   bool
	Grade           tracking.Grade
	InspectedBy     uuid.UUID
	InspectionNotes string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int
}

// CreateAssignmentRequest contains the input for granting a purchase order
// assignment to a restricted-visibility user.
type CreateAssignmentRequest struct {
	UserID uuid.UUID
}

// AssignmentResponse is the DTO representation of an assignment
type AssignmentResponse struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	PurchaseOrderID uuid.UUID
	UserID          uuid.UUID
	GrantedBy       uuid.UUID
	CreatedAt       time.Time
}

// ToPurchaseOrderResponse converts a domain purchase order to its DTO
func ToPurchaseOrderResponse(po *tracking.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:           po.ID,
		CompanyID:    po.CompanyID,
		OrderNumber:  po.OrderNumber,
		SupplierName: po.SupplierName,
		Status:       po.Status,
		Notes:        po.Notes,
		CreatedBy:    po.CreatedBy,
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
		Version:      po.Version,
	}
}

// ToShipmentResponse converts a domain shipment to its DTO
func ToShipmentResponse(s *tracking.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:              s.ID,
		CompanyID:       s.CompanyID,
		PurchaseOrderID: s.PurchaseOrderID,
		Reference:       s.Reference,
		VesselName:      s.VesselName,
		DepartedAt:      s.DepartedAt,
		Status:          s.Status,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		Version:         s.Version,
	}
}

// ToContainerResponse converts a domain container to its DTO
func ToContainerResponse(c *tracking.Container) ContainerResponse {
	return ContainerResponse{
		ID:              c.ID,
		CompanyID:       c.CompanyID,
		ShipmentID:      c.ShipmentID,
		ContainerNumber: c.ContainerNumber,
		SealNumber:      c.SealNumber,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		Version:         c.Version,
	}
}

// ToBaleResponse converts a domain bale to its DTO
func ToBaleResponse(b *tracking.Bale) BaleResponse {
	return BaleResponse{
		ID:              b.ID,
		CompanyID:       b.CompanyID,
		ContainerID:     b.ContainerID,
		ShipmentID:      b.ShipmentID,
		PurchaseOrderID: b.PurchaseOrderID,
		BaleNumber:      b.BaleNumber,
		WeightKg:        b.WeightKg,
		MoisturePercent: b.MoisturePercent,
		Color:           b.Color,
		Wetness:         b.Wetness,
		Mold:            b.Mold,
		Contamination:   b.Contamination,
		Grade:           b.Grade,
		InspectedBy:     b.InspectedBy,
		InspectionNotes: b.InspectionNotes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		Version:         b.Version,
	}
}

// ToAssignmentResponse converts a domain assignment to its DTO
func ToAssignmentResponse(a *tracking.POUserAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:              a.ID,
		CompanyID:       a.CompanyID,
		PurchaseOrderID: a.PurchaseOrderID,
		UserID:          a.UserID,
		GrantedBy:       a.GrantedBy,
		CreatedAt:       a.CreatedAt,
	}
}

// domainFilter converts the list filter into a shared.Filter with defaults
func (f ListFilter) domainFilter() shared.Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
		Filters:  make(map[string]interface{}),
	}
	if f.Status != "" {
		domainFilter.Filters["status"] = f.Status
	}
	if f.Grade != "" {
		domainFilter.Filters["grade"] = f.Grade
	}
	return domainFilter
}
