package tracking

import (
	"context"

	"github.com/baletrack/backend/internal/domain/access"
	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/baletrack/backend/internal/domain/tracking"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContainerService handles container operations under a shipment
type ContainerService struct {
	containerRepo tracking.ContainerRepository
	resolver      *access.Resolver
	logger        *zap.Logger
}

// NewContainerService creates a new ContainerService
func NewContainerService(
	containerRepo tracking.ContainerRepository,
	resolver *access.Resolver,
	logger *zap.Logger,
) *ContainerService {
	return &ContainerService{
		containerRepo: containerRepo,
		resolver:      resolver,
		logger:        logger,
	}
}

// Create creates a new container under a shipment the actor may access
func (s *ContainerService) Create(ctx context.Context, actor access.Principal, shipmentID uuid.UUID, req CreateContainerRequest) (*ContainerResponse, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityShipment, shipmentID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}
	if !identity.CapabilityFor(actor.Role).CanCreateEntities {
		return nil, shared.ErrForbidden
	}

	container, err := tracking.NewContainer(actor.CompanyID, actor.UserID, shipmentID, req.ContainerNumber)
	if err != nil {
		return nil, err
	}

	if err := s.containerRepo.Save(ctx, container); err != nil {
		return nil, err
	}

	s.logger.Info("Container created",
		zap.String("container_id", container.ID.String()),
		zap.String("shipment_id", shipmentID.String()),
		zap.String("created_by", actor.UserID.String()))

	response := ToContainerResponse(container)
	return &response, nil
}

// GetByID retrieves a container the actor may access
func (s *ContainerService) GetByID(ctx context.Context, actor access.Principal, containerID uuid.UUID) (*ContainerResponse, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityContainer, containerID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}

	container, err := s.containerRepo.FindByID(ctx, containerID)
	if err != nil {
		return nil, err
	}

	response := ToContainerResponse(container)
	return &response, nil
}

// ListByShipment retrieves the containers under a shipment
func (s *ContainerService) ListByShipment(ctx context.Context, actor access.Principal, shipmentID uuid.UUID, filter ListFilter) ([]ContainerResponse, int64, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityShipment, shipmentID)
	if err != nil {
		return nil, 0, err
	}
	if err := decisionError(decision); err != nil {
		return nil, 0, err
	}

	domainFilter := filter.domainFilter()
	containers, err := s.containerRepo.FindByShipment(ctx, shipmentID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.containerRepo.CountByShipment(ctx, shipmentID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ContainerResponse, 0, len(containers))
	for i := range containers {
		responses = append(responses, ToContainerResponse(&containers[i]))
	}
	return responses, total, nil
}

// Update updates a container's mutable fields
func (s *ContainerService) Update(ctx context.Context, actor access.Principal, containerID uuid.UUID, req UpdateContainerRequest) (*ContainerResponse, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityContainer, containerID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}
	if !identity.CapabilityFor(actor.Role).CanEditAny {
		return nil, shared.ErrForbidden
	}

	container, err := s.containerRepo.FindByID(ctx, containerID)
	if err != nil {
		return nil, err
	}

	if err := container.Update(req.SealNumber, req.Notes); err != nil {
		return nil, err
	}
	if err := s.containerRepo.Save(ctx, container); err != nil {
		return nil, err
	}

	response := ToContainerResponse(container)
	return &response, nil
}

// Delete removes a container
func (s *ContainerService) Delete(ctx context.Context, actor access.Principal, containerID uuid.UUID) error {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityContainer, containerID)
	if err != nil {
		return err
	}
	if err := decisionError(decision); err != nil {
		return err
	}
	if !identity.CapabilityFor(actor.Role).CanDeleteAny {
		return shared.ErrForbidden
	}

	if err := s.containerRepo.Delete(ctx, actor.CompanyID, containerID); err != nil {
		return err
	}

	s.logger.Info("Container deleted",
		zap.String("container_id", containerID.String()),
		zap.String("deleted_by", actor.UserID.String()))

	return nil
}
