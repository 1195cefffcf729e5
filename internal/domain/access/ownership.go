package access

import (
	"context"

	"github.com/google/uuid"
)

// EntityType identifies which level of the ownership hierarchy an access
// resolution targets.
type EntityType string

const (
	EntityPurchaseOrder EntityType = "purchase_order"
	EntityShipment      EntityType = "shipment"
	EntityContainer     EntityType = "container"
	EntityBale          EntityType = "bale"
)

// IsValid reports whether the entity type is one of the known values
func (t EntityType) IsValid() bool {
	switch t {
	case EntityPurchaseOrder, EntityShipment, EntityContainer, EntityBale:
		return true
	default:
		return false
	}
}

// OwnershipChain carries the ancestor ids of a resolved entity up to its
// company. Ids below the resolved entity's level are Nil: a shipment's
// chain has no container or bale id.
type OwnershipChain struct {
	CompanyID       uuid.UUID
	PurchaseOrderID uuid.UUID
	ShipmentID      uuid.UUID
	ContainerID     uuid.UUID
	BaleID          uuid.UUID
}

// OwnershipLoader is the read contract against the persistence
// collaborator. Each call returns the target entity's ownership chain in
// one logical lookup; implementations must signal absence with
// shared.ErrNotFound and reserve all other errors for infrastructure
// failures. The loader never writes.
type OwnershipLoader interface {
	PurchaseOrderOwnership(ctx context.Context, purchaseOrderID uuid.UUID) (*OwnershipChain, error)
	ShipmentOwnership(ctx context.Context, shipmentID uuid.UUID) (*OwnershipChain, error)
	ContainerOwnership(ctx context.Context, containerID uuid.UUID) (*OwnershipChain, error)
	BaleOwnership(ctx context.Context, baleID uuid.UUID) (*OwnershipChain, error)
	AssignmentExists(ctx context.Context, purchaseOrderID, userID uuid.UUID) (bool, error)
}
