package persistence

import (
	"context"
	"errors"

	"github.com/baletrack/backend/internal/domain/access"
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/baletrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOwnershipLoader implements access.OwnershipLoader using GORM. Each
// lookup reads the minimal column set needed to reconstruct the entity's
// ownership chain; absence maps to shared.ErrNotFound and every other error
// is passed through untouched.
type GormOwnershipLoader struct {
	db *gorm.DB
}

// NewGormOwnershipLoader creates a new GormOwnershipLoader
func NewGormOwnershipLoader(db *gorm.DB) *GormOwnershipLoader {
	return &GormOwnershipLoader{db: db}
}

// PurchaseOrderOwnership resolves a purchase order's ownership chain
func (l *GormOwnershipLoader) PurchaseOrderOwnership(ctx context.Context, purchaseOrderID uuid.UUID) (*access.OwnershipChain, error) {
	var row struct {
		CompanyID uuid.UUID
	}
	err := l.db.WithContext(ctx).
		Model(&models.PurchaseOrderModel{}).
		Select("company_id").
		Where("id = ?", purchaseOrderID).
		Take(&row).Error
	if err != nil {
		return nil, mapLookupError(err)
	}

	return &access.OwnershipChain{
		CompanyID:       row.CompanyID,
		PurchaseOrderID: purchaseOrderID,
	}, nil
}

// ShipmentOwnership resolves a shipment's ownership chain
func (l *GormOwnershipLoader) ShipmentOwnership(ctx context.Context, shipmentID uuid.UUID) (*access.OwnershipChain, error) {
	var row struct {
		CompanyID       uuid.UUID
		PurchaseOrderID uuid.UUID
	}
	err := l.db.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Select("company_id, purchase_order_id").
		Where("id = ?", shipmentID).
		Take(&row).Error
	if err != nil {
		return nil, mapLookupError(err)
	}

	return &access.OwnershipChain{
		CompanyID:       row.CompanyID,
		PurchaseOrderID: row.PurchaseOrderID,
		ShipmentID:      shipmentID,
	}, nil
}

// ContainerOwnership resolves a container's ownership chain. Containers do
// not denormalize the purchase order id, so the shipment is joined in.
func (l *GormOwnershipLoader) ContainerOwnership(ctx context.Context, containerID uuid.UUID) (*access.OwnershipChain, error) {
	var row struct {
		CompanyID       uuid.UUID
		ShipmentID      uuid.UUID
		PurchaseOrderID uuid.UUID
	}
	err := l.db.WithContext(ctx).
		Model(&models.ContainerModel{}).
		Select("containers.company_id, containers.shipment_id, shipments.purchase_order_id").
		Joins("JOIN shipments ON shipments.id = containers.shipment_id").
		Where("containers.id = ?", containerID).
		Take(&row).Error
	if err != nil {
		return nil, mapLookupError(err)
	}

	return &access.OwnershipChain{
		CompanyID:       row.CompanyID,
		PurchaseOrderID: row.PurchaseOrderID,
		ShipmentID:      row.ShipmentID,
		ContainerID:     containerID,
	}, nil
}

// BaleOwnership resolves a bale's ownership chain from its denormalized ids
func (l *GormOwnershipLoader) BaleOwnership(ctx context.Context, baleID uuid.UUID) (*access.OwnershipChain, error) {
	var row struct {
		CompanyID       uuid.UUID
		ContainerID     uuid.UUID
		ShipmentID      uuid.UUID
		PurchaseOrderID uuid.UUID
	}
	err := l.db.WithContext(ctx).
		Model(&models.BaleModel{}).
		Select("company_id, container_id, shipment_id, purchase_order_id").
		Where("id = ?", baleID).
		Take(&row).Error
	if err != nil {
		return nil, mapLookupError(err)
	}

	return &access.OwnershipChain{
		CompanyID:       row.CompanyID,
		PurchaseOrderID: row.PurchaseOrderID,
		ShipmentID:      row.ShipmentID,
		ContainerID:     row.ContainerID,
		BaleID:          baleID,
	}, nil
}

// AssignmentExists checks for an assignment on the (purchase order, user) pair
func (l *GormOwnershipLoader) AssignmentExists(ctx context.Context, purchaseOrderID, userID uuid.UUID) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).
		Model(&models.POUserAssignmentModel{}).
		Where("purchase_order_id = ? AND user_id = ?", purchaseOrderID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// mapLookupError maps gorm's record-not-found to the domain's absence
// signal. Infrastructure failures pass through so they are never mistaken
// for absence.
func mapLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}

var _ access.OwnershipLoader = (*GormOwnershipLoader)(nil)
