package tracking

import (
	"context"

	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseOrderRepository defines persistence operations for purchase orders
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]PurchaseOrder, error)
	FindAssignedToUser(ctx context.Context, companyID, userID uuid.UUID, filter shared.Filter) ([]PurchaseOrder, error)
	CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)
	CountAssignedToUser(ctx context.Context, companyID, userID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsByOrderNumber(ctx context.Context, companyID uuid.UUID, orderNumber string) (bool, error)
	Save(ctx context.Context, po *PurchaseOrder) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

// ShipmentRepository defines persistence operations for shipments
type ShipmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Shipment, error)
	FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID, filter shared.Filter) ([]Shipment, error)
	CountByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, shipment *Shipment) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

// ContainerRepository defines persistence operations for containers
type ContainerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Container, error)
	FindByShipment(ctx context.Context, shipmentID uuid.UUID, filter shared.Filter) ([]Container, error)
	CountByShipment(ctx context.Context, shipmentID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, container *Container) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

// BaleRepository defines persistence operations for bales
type BaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Bale, error)
	FindByContainer(ctx context.Context, containerID uuid.UUID, filter shared.Filter) ([]Bale, error)
	CountByContainer(ctx context.Context, containerID uuid.UUID, filter shared.Filter) (int64, error)
	CountByGradeForPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) (map[Grade]int64, error)
	Save(ctx context.Context, bale *Bale) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

// AssignmentRepository defines persistence operations for purchase order
// user assignments
type AssignmentRepository interface {
	Find(ctx context.Context, purchaseOrderID, userID uuid.UUID) (*POUserAssignment, error)
	FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]POUserAssignment, error)
	FindByUser(ctx context.Context, companyID, userID uuid.UUID) ([]POUserAssignment, error)
	Exists(ctx context.Context, purchaseOrderID, userID uuid.UUID) (bool, error)
	Save(ctx context.Context, assignment *POUserAssignment) error
	Delete(ctx context.Context, purchaseOrderID, userID uuid.UUID) error
}
