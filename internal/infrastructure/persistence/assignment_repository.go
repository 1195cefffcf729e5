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

// GormAssignmentRepository implements tracking.AssignmentRepository using GORM
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GormAssignmentRepository
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Find finds an assignment by its (purchase order, user) pair
func (r *GormAssignmentRepository) Find(ctx context.Context, purchaseOrderID, userID uuid.UUID) (*tracking.POUserAssignment, error) {
	var model models.POUserAssignmentModel
	if err := r.db.WithContext(ctx).
		Where("purchase_order_id = ? AND user_id = ?", purchaseOrderID, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPurchaseOrder finds all assignments on a purchase order
func (r *GormAssignmentRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]tracking.POUserAssignment, error) {
	var assignmentModels []models.POUserAssignmentModel
	if err := r.db.WithContext(ctx).
		Where("purchase_order_id = ?", purchaseOrderID).
		Order("created_at ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return assignmentsToDomain(assignmentModels), nil
}

// FindByUser finds all assignments a user holds within a company
func (r *GormAssignmentRepository) FindByUser(ctx context.Context, companyID, userID uuid.UUID) ([]tracking.POUserAssignment, error) {
	var assignmentModels []models.POUserAssignmentModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND user_id = ?", companyID, userID).
		Order("created_at ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return assignmentsToDomain(assignmentModels), nil
}

// Exists checks whether an assignment exists for the (purchase order, user) pair
func (r *GormAssignmentRepository) Exists(ctx context.Context, purchaseOrderID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.POUserAssignmentModel{}).
		Where("purchase_order_id = ? AND user_id = ?", purchaseOrderID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an assignment
func (r *GormAssignmentRepository) Save(ctx context.Context, assignment *tracking.POUserAssignment) error {
	model := models.POUserAssignmentModelFromDomain(assignment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an assignment by its (purchase order, user) pair
func (r *GormAssignmentRepository) Delete(ctx context.Context, purchaseOrderID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.POUserAssignmentModel{}, "purchase_order_id = ? AND user_id = ?", purchaseOrderID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func assignmentsToDomain(assignmentModels []models.POUserAssignmentModel) []tracking.POUserAssignment {
	assignments := make([]tracking.POUserAssignment, 0, len(assignmentModels))
	for i := range assignmentModels {
		assignments = append(assignments, *assignmentModels[i].ToDomain())
	}
	return assignments
}

var _ tracking.AssignmentRepository = (*GormAssignmentRepository)(nil)
