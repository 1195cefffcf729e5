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

// GormContainerRepository implements tracking.ContainerRepository using GORM
type GormContainerRepository struct {
	db *gorm.DB
}

// NewGormContainerRepository creates a new GormContainerRepository
func NewGormContainerRepository(db *gorm.DB) *GormContainerRepository {
	return &GormContainerRepository{db: db}
}

// FindByID finds a container by its ID
func (r *GormContainerRepository) FindByID(ctx context.Context, id uuid.UUID) (*tracking.Container, error) {
	var model models.ContainerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByShipment finds the containers under a shipment
func (r *GormContainerRepository) FindByShipment(ctx context.Context, shipmentID uuid.UUID, filter shared.Filter) ([]tracking.Container, error) {
	var containerModels []models.ContainerModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.ContainerModel{}).Where("shipment_id = ?", shipmentID),
		filter, "created_at DESC",
	)

	if err := query.Find(&containerModels).Error; err != nil {
		return nil, err
	}

	containers := make([]tracking.Container, 0, len(containerModels))
	for i := range containerModels {
		containers = append(containers, *containerModels[i].ToDomain())
	}
	return containers, nil
}

// CountByShipment counts the containers under a shipment
func (r *GormContainerRepository) CountByShipment(ctx context.Context, shipmentID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.ContainerModel{}).Where("shipment_id = ?", shipmentID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a container
func (r *GormContainerRepository) Save(ctx context.Context, container *tracking.Container) error {
	model := models.ContainerModelFromDomain(container)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a container within a company
func (r *GormContainerRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ContainerModel{}, "company_id = ? AND id = ?", companyID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ tracking.ContainerRepository = (*GormContainerRepository)(nil)
