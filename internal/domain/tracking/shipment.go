package tracking

import (
	"strings"
	"time"

	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ShipmentStatus represents the status of a shipment
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "pending"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusArrived   ShipmentStatus = "arrived"
)

// Shipment belongs to exactly one purchase order. The parent reference is
// immutable after creation.
type Shipment struct {
	shared.CompanyAggregateRoot
	PurchaseOrderID uuid.UUID
	Reference       string
	VesselName      string
	DepartedAt      *time.Time
	Status          ShipmentStatus
	Notes           string
}

// NewShipment creates a new pending shipment under a purchase order
func NewShipment(companyID, createdBy, purchaseOrderID uuid.UUID, reference string) (*Shipment, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Shipment reference cannot be empty")
	}
	if len(reference) > 50 {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Shipment reference cannot exceed 50 characters")
	}
	if purchaseOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PURCHASE_ORDER", "Shipment must belong to a purchase order")
	}

	shipment := &Shipment{
		CompanyAggregateRoot: shared.NewCompanyAggregateRootWithCreator(companyID, createdBy),
		PurchaseOrderID:      purchaseOrderID,
		Reference:            reference,
		Status:               ShipmentStatusPending,
	}

	shipment.AddDomainEvent(NewShipmentCreatedEvent(shipment))

	return shipment, nil
}

// Update updates the shipment's mutable fields
func (s *Shipment) Update(vesselName, notes string) error {
	vesselName = strings.TrimSpace(vesselName)
	if len(vesselName) > 200 {
		return shared.NewDomainError("INVALID_VESSEL_NAME", "Vessel name cannot exceed 200 characters")
	}

	s.VesselName = vesselName
	s.Notes = notes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Depart marks the shipment as in transit
func (s *Shipment) Depart(departedAt time.Time) error {
	if s.Status != ShipmentStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending shipments can depart")
	}

	s.Status = ShipmentStatusInTransit
	s.DepartedAt = &departedAt
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// MarkArrived marks the shipment as arrived
func (s *Shipment) MarkArrived() error {
	if s.Status == ShipmentStatusArrived {
		return shared.NewDomainError("ALREADY_ARRIVED", "Shipment has already arrived")
	}

	s.Status = ShipmentStatusArrived
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}
