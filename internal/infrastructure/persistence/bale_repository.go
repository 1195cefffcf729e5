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

// GormBaleRepository implements tracking.BaleRepository using GORM
type GormBaleRepository struct {
	db *gorm.DB
}

// NewGormBaleRepository creates a new GormBaleRepository
func NewGormBaleRepository(db *gorm.DB) *GormBaleRepository {
	return &GormBaleRepository{db: db}
}

// FindByID finds a bale by its ID
func (r *GormBaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*tracking.Bale, error) {
	var model models.BaleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByContainer finds the bales inside a container
func (r *GormBaleRepository) FindByContainer(ctx context.Context, containerID uuid.UUID, filter shared.Filter) ([]tracking.Bale, error) {
	var baleModels []models.BaleModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.BaleModel{}).Where("container_id = ?", containerID),
		filter, "bale_number ASC",
	)

	if err := query.Find(&baleModels).Error; err != nil {
		return nil, err
	}

	bales := make([]tracking.Bale, 0, len(baleModels))
	for i := range baleModels {
		bales = append(bales, *baleModels[i].ToDomain())
	}
	return bales, nil
}

// CountByContainer counts the bales inside a container
func (r *GormBaleRepository) CountByContainer(ctx context.Context, containerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.BaleModel{}).Where("container_id = ?", containerID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByGradeForPurchaseOrder returns per-grade bale counts across a
// purchase order's whole subtree, using the denormalized purchase order id.
func (r *GormBaleRepository) CountByGradeForPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) (map[tracking.Grade]int64, error) {
	type gradeCount struct {
		Grade tracking.Grade
		Count int64
	}

	var rows []gradeCount
	if err := r.db.WithContext(ctx).
		Model(&models.BaleModel{}).
		Select("grade, COUNT(*) AS count").
		Where("purchase_order_id = ?", purchaseOrderID).
		Group("grade").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[tracking.Grade]int64, len(rows))
	for _, row := range rows {
		counts[row.Grade] = row.Count
	}
	return counts, nil
}

// Save creates or updates a bale
func (r *GormBaleRepository) Save(ctx context.Context, bale *tracking.Bale) error {
	model := models.BaleModelFromDomain(bale)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a bale within a company
func (r *GormBaleRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BaleModel{}, "company_id = ? AND id = ?", companyID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ tracking.BaleRepository = (*GormBaleRepository)(nil)
