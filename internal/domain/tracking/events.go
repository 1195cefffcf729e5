package tracking

import (
	"github.com/baletrack/backend/internal/domain/shared"
)

// Event types for the tracking aggregates
const (
	EventTypePurchaseOrderCreated = "tracking.purchase_order.created"
	EventTypeShipmentCreated      = "tracking.shipment.created"
	EventTypeContainerCreated     = "tracking.container.created"
	EventTypeBaleInspected        = "tracking.bale.inspected"
)

// PurchaseOrderCreatedEvent is raised when a purchase order is created
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
}

// NewPurchaseOrderCreatedEvent creates a new PurchaseOrderCreatedEvent
func NewPurchaseOrderCreatedEvent(po *PurchaseOrder) *PurchaseOrderCreatedEvent {
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCreated, "PurchaseOrder", po.ID, po.CompanyID),
		OrderNumber:     po.OrderNumber,
	}
}

// ShipmentCreatedEvent is raised when a shipment is created
type ShipmentCreatedEvent struct {
	shared.BaseDomainEvent
	Reference string `json:"reference"`
}

// NewShipmentCreatedEvent creates a new ShipmentCreatedEvent
func NewShipmentCreatedEvent(s *Shipment) *ShipmentCreatedEvent {
	return &ShipmentCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShipmentCreated, "Shipment", s.ID, s.CompanyID),
		Reference:       s.Reference,
	}
}

// ContainerCreatedEvent is raised when a container is created
type ContainerCreatedEvent struct {
	shared.BaseDomainEvent
	ContainerNumber string `json:"container_number"`
}

// NewContainerCreatedEvent creates a new ContainerCreatedEvent
func NewContainerCreatedEvent(c *Container) *ContainerCreatedEvent {
	return &ContainerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContainerCreated, "Container", c.ID, c.CompanyID),
		ContainerNumber: c.ContainerNumber,
	}
}

// BaleInspectedEvent is raised when a bale is inspected or re-inspected
type BaleInspectedEvent struct {
	shared.BaseDomainEvent
	BaleNumber string `json:"bale_number"`
	Grade      Grade  `json:"grade"`
}

// NewBaleInspectedEvent creates a new BaleInspectedEvent
func NewBaleInspectedEvent(b *Bale) *BaleInspectedEvent {
	return &BaleInspectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBaleInspected, "Bale", b.ID, b.CompanyID),
		BaleNumber:      b.BaleNumber,
		Grade:           b.Grade,
	}
}
