package tracking

import (
	"strings"
	"time"

	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Container belongs to exactly one shipment. The parent reference is
// immutable after creation.
type Container struct {
	shared.CompanyAggregateRoot
	ShipmentID      uuid.UUID
	ContainerNumber string
	SealNumber      string
	Notes           string
}

// NewContainer creates a new container under a shipment
func NewContainer(companyID, createdBy, shipmentID uuid.UUID, containerNumber string) (*Container, error) {
	containerNumber = strings.ToUpper(strings.TrimSpace(containerNumber))
	if containerNumber == "" {
		return nil, shared.NewDomainError("INVALID_CONTAINER_NUMBER", "Container number cannot be empty")
	}
	if len(containerNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_CONTAINER_NUMBER", "Container number cannot exceed 50 characters")
	}
	if shipmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHIPMENT", "Container must belong to a shipment")
	}

	container := &Container{
		CompanyAggregateRoot: shared.NewCompanyAggregateRootWithCreator(companyID, createdBy),
		ShipmentID:           shipmentID,
		ContainerNumber:      containerNumber,
	}

	container.AddDomainEvent(NewContainerCreatedEvent(container))

	return container, nil
}

// Update updates the container's mutable fields
func (c *Container) Update(sealNumber, notes string) error {
	sealNumber = strings.TrimSpace(sealNumber)
	if len(sealNumber) > 50 {
		return shared.NewDomainError("INVALID_SEAL_NUMBER", "Seal number cannot exceed 50 characters")
	}

	c.SealNumber = sealNumber
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}
