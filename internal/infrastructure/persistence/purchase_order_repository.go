package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/baletrack/backend/internal/domain/tracking"
	"github.com/baletrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements tracking.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds a purchase order by its ID
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*tracking.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCompany finds all purchase orders for a company
func (r *GormPurchaseOrderRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]tracking.PurchaseOrder, error) {
	var poModels []models.PurchaseOrderModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{}).Where("company_id = ?", companyID),
		filter, "created_at DESC",
	)

	if err := query.Find(&poModels).Error; err != nil {
		return nil, err
	}
	return purchaseOrdersToDomain(poModels), nil
}

// FindAssignedToUser finds the purchase orders a user holds an assignment for
func (r *GormPurchaseOrderRepository) FindAssignedToUser(ctx context.Context, companyID, userID uuid.UUID, filter shared.Filter) ([]tracking.PurchaseOrder, error) {
	var poModels []models.PurchaseOrderModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{}).
			Joins("JOIN po_user_assignments ON po_user_assignments.purchase_order_id = purchase_orders.id").
			Where("purchase_orders.company_id = ? AND po_user_assignments.user_id = ?", companyID, userID),
		filter, "purchase_orders.created_at DESC",
	)

	if err := query.Find(&poModels).Error; err != nil {
		return nil, err
	}
	return purchaseOrdersToDomain(poModels), nil
}

// CountForCompany counts purchase orders for a company
func (r *GormPurchaseOrderRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{}).Where("company_id = ?", companyID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountAssignedToUser counts the purchase orders a user holds an assignment for
func (r *GormPurchaseOrderRepository) CountAssignedToUser(ctx context.Context, companyID, userID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{}).
			Joins("JOIN po_user_assignments ON po_user_assignments.purchase_order_id = purchase_orders.id").
			Where("purchase_orders.company_id = ? AND po_user_assignments.user_id = ?", companyID, userID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByOrderNumber checks if an order number is already used within a company
func (r *GormPurchaseOrderRepository) ExistsByOrderNumber(ctx context.Context, companyID uuid.UUID, orderNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PurchaseOrderModel{}).
		Where("company_id = ? AND order_number = ?", companyID, strings.ToUpper(orderNumber)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a purchase order
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, po *tracking.PurchaseOrder) error {
	model := models.PurchaseOrderModelFromDomain(po)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a purchase order within a company
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PurchaseOrderModel{}, "company_id = ? AND id = ?", companyID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func purchaseOrdersToDomain(poModels []models.PurchaseOrderModel) []tracking.PurchaseOrder {
	orders := make([]tracking.PurchaseOrder, 0, len(poModels))
	for i := range poModels {
		orders = append(orders, *poModels[i].ToDomain())
	}
	return orders
}

var _ tracking.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
