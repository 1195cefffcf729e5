package persistence

import (
	"context"
	"errors"

	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/baletrack/backend/internal/domain/tracking"
	"github.com/baletrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormShipmentRepository implements tracking.ShipmentRepository using GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// FindByID finds a shipment by its ID
func (r *GormShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*tracking.Shipment, error) {
	var model models.ShipmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPurchaseOrder finds the shipments under a purchase order
func (r *GormShipmentRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID, filter shared.Filter) ([]tracking.Shipment, error) {
	var shipmentModels []models.ShipmentModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.ShipmentModel{}).Where("purchase_order_id = ?", purchaseOrderID),
		filter, "created_at DESC",
	)

	if err := query.Find(&shipmentModels).Error; err != nil {
		return nil, err
	}

	shipments := make([]tracking.Shipment, 0, len(shipmentModels))
	for i := range shipmentModels {
		shipments = append(shipments, *shipmentModels[i].ToDomain())
	}
	return shipments, nil
}

// CountByPurchaseOrder counts the shipments under a purchase order
func (r *GormShipmentRepository) CountByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.ShipmentModel{}).Where("purchase_order_id = ?", purchaseOrderID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a shipment
func (r *GormShipmentRepository) Save(ctx context.Context, shipment *tracking.Shipment) error {
	model := models.ShipmentModelFromDomain(shipment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a shipment within a company
func (r *GormShipmentRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ShipmentModel{}, "company_id = ? AND id = ?", companyID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ tracking.ShipmentRepository = (*GormShipmentRepository)(nil)
