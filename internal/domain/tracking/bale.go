package tracking

import (
	"strings"
	"time"

	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bale is the leaf of the inspection hierarchy. It belongs to exactly one
// container and carries denormalized shipment and purchase order ids for
// query efficiency. Those ids must always equal the values reachable by
// walking Container -> Shipment -> PurchaseOrder; constructors take them
// from the resolved ownership chain, never from client input.
type Bale struct {
	shared.CompanyAggregateRoot
	ContainerID     uuid.UUID
	ShipmentID      uuid.UUID
	PurchaseOrderID uuid.UUID
	BaleNumber      string
	WeightKg        decimal.Decimal
	MoisturePercent *decimal.Decimal
	Color           BaleColor
	Wetness         BaleWetness
	Mold            bool
	Contamination   bool
	Grade           Grade
	InspectedBy     uuid.UUID
	InspectionNotes string
}

// BaleInspection holds the raw measurements taken for a bale
type BaleInspection struct {
	WeightKg        decimal.Decimal
	MoisturePercent *decimal.Decimal
	Color           BaleColor
	Wetness         BaleWetness
	Mold            bool
	Contamination   bool
	Notes           string
}

// NewBale creates a new bale under a container. The shipment and purchase
// order ids come from the container's resolved ownership chain, and the
// grade is computed from the inspection measurements.
func NewBale(companyID, inspectorID, containerID, shipmentID, purchaseOrderID uuid.UUID, baleNumber string, inspection BaleInspection) (*Bale, error) {
	baleNumber = strings.ToUpper(strings.TrimSpace(baleNumber))
	if baleNumber == "" {
		return nil, shared.NewDomainError("INVALID_BALE_NUMBER", "Bale number cannot be empty")
	}
	if len(baleNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_BALE_NUMBER", "Bale number cannot exceed 50 characters")
	}
	if containerID == uuid.Nil || shipmentID == uuid.Nil || purchaseOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNERSHIP", "Bale requires a complete ownership chain")
	}
	if err := validateInspection(inspection); err != nil {
		return nil, err
	}

	bale := &Bale{
		CompanyAggregateRoot: shared.NewCompanyAggregateRootWithCreator(companyID, inspectorID),
		ContainerID:          containerID,
		ShipmentID:           shipmentID,
		PurchaseOrderID:      purchaseOrderID,
		BaleNumber:           baleNumber,
		WeightKg:             inspection.WeightKg,
		MoisturePercent:      inspection.MoisturePercent,
		Color:                inspection.Color,
		Wetness:              inspection.Wetness,
		Mold:                 inspection.Mold,
		Contamination:        inspection.Contamination,
		Grade:                ClassifyGrade(inspection.MoisturePercent, inspection.Color, inspection.Wetness, inspection.Mold, inspection.Contamination),
		InspectedBy:          inspectorID,
		InspectionNotes:      inspection.Notes,
	}

	bale.AddDomainEvent(NewBaleInspectedEvent(bale))

	return bale, nil
}

// Reinspect replaces the bale's measurements and recomputes its grade
func (b *Bale) Reinspect(inspectorID uuid.UUID, inspection BaleInspection) error {
	if err := validateInspection(inspection); err != nil {
		return err
	}

	b.WeightKg = inspection.WeightKg
	b.MoisturePercent = inspection.MoisturePercent
	b.Color = inspection.Color
	b.Wetness = inspection.Wetness
	b.Mold = inspection.Mold
	b.Contamination = inspection.Contamination
	b.Grade = ClassifyGrade(inspection.MoisturePercent, inspection.Color, inspection.Wetness, inspection.Mold, inspection.Contamination)
	b.InspectedBy = inspectorID
	b.InspectionNotes = inspection.Notes
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewBaleInspectedEvent(b))

	return nil
}

// SetInspectionNotes updates the free-form inspection notes
func (b *Bale) SetInspectionNotes(notes string) error {
	if len(notes) > 2000 {
		return shared.NewDomainError("INVALID_NOTES", "Inspection notes cannot exceed 2000 characters")
	}

	b.InspectionNotes = notes
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

func validateInspection(inspection BaleInspection) error {
	if inspection.WeightKg.IsNegative() {
		return shared.NewDomainError("INVALID_WEIGHT", "Weight cannot be negative")
	}
	if inspection.MoisturePercent != nil {
		if inspection.MoisturePercent.IsNegative() || inspection.MoisturePercent.GreaterThan(decimal.NewFromInt(100)) {
			return shared.NewDomainError("INVALID_MOISTURE", "Moisture percent must be between 0 and 100")
		}
	}
	if !inspection.Color.IsValid() {
		return shared.NewDomainError("INVALID_COLOR", "Unknown bale color: "+string(inspection.Color))
	}
	if !inspection.Wetness.IsValid() {
		return shared.NewDomainError("INVALID_WETNESS", "Unknown bale wetness: "+string(inspection.Wetness))
	}
	if len(inspection.Notes) > 2000 {
		return shared.NewDomainError("INVALID_NOTES", "Inspection notes cannot exceed 2000 characters")
	}
	return nil
}
