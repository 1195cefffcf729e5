package tracking

import (
	"context"
	"time"

	"github.com/baletrack/backend/internal/domain/access"
	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/baletrack/backend/internal/domain/tracking"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShipmentService handles shipment operations under a purchase order
type ShipmentService struct {
	shipmentRepo tracking.ShipmentRepository
	poRepo       tracking.PurchaseOrderRepository
	resolver     *access.Resolver
	logger       *zap.Logger
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(
	shipmentRepo tracking.ShipmentRepository,
	poRepo tracking.PurchaseOrderRepository,
	resolver *access.Resolver,
	logger *zap.Logger,
) *ShipmentService {
	return &ShipmentService{
		shipmentRepo: shipmentRepo,
		poRepo:       poRepo,
		resolver:     resolver,
		logger:       logger,
	}
}

// Create creates a new shipment under a purchase order the actor may access
func (s *ShipmentService) Create(ctx context.Context, actor access.Principal, poID uuid.UUID, req CreateShipmentRequest) (*ShipmentResponse, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityPurchaseOrder, poID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}
	if !identity.CapabilityFor(actor.Role).CanCreateEntities {
		return nil, shared.ErrForbidden
	}

	po, err := s.poRepo.FindByID(ctx, poID)
	if err != nil {
		return nil, err
	}
	if !po.IsOpen() {
		return nil, shared.NewDomainError("PURCHASE_ORDER_CLOSED", "Cannot add shipments to a closed purchase order")
	}

	shipment, err := tracking.NewShipment(actor.CompanyID, actor.UserID, poID, req.Reference)
	if err != nil {
		return nil, err
	}

	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		return nil, err
	}

	s.logger.Info("Shipment created",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("purchase_order_id", poID.String()),
		zap.String("created_by", actor.UserID.String()))

	response := ToShipmentResponse(shipment)
	return &response, nil
}

// GetByID retrieves a shipment the actor may access
func (s *ShipmentService) GetByID(ctx context.Context, actor access.Principal, shipmentID uuid.UUID) (*ShipmentResponse, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityShipment, shipmentID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}

	shipment, err := s.shipmentRepo.FindByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	response := ToShipmentResponse(shipment)
	return &response, nil
}

// ListByPurchaseOrder retrieves the shipments under a purchase order
func (s *ShipmentService) ListByPurchaseOrder(ctx context.Context, actor access.Principal, poID uuid.UUID, filter ListFilter) ([]ShipmentResponse, int64, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityPurchaseOrder, poID)
	if err != nil {
		return nil, 0, err
	}
	if err := decisionError(decision); err != nil {
		return nil, 0, err
	}

	domainFilter := filter.domainFilter()
	shipments, err := s.shipmentRepo.FindByPurchaseOrder(ctx, poID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.shipmentRepo.CountByPurchaseOrder(ctx, poID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ShipmentResponse, 0, len(shipments))
	for i := range shipments {
		responses = append(responses, ToShipmentResponse(&shipments[i]))
	}
	return responses, total, nil
}

// Update updates a shipment's mutable fields
func (s *ShipmentService) Update(ctx context.Context, actor access.Principal, shipmentID uuid.UUID, req UpdateShipmentRequest) (*ShipmentResponse, error) {
	shipment, err := s.authorizeEdit(ctx, actor, shipmentID)
	if err != nil {
		return nil, err
	}

	if err := shipment.Update(req.VesselName, req.Notes); err != nil {
		return nil, err
	}
	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		return nil, err
	}

	response := ToShipmentResponse(shipment)
	return &response, nil
}

// Depart marks a shipment as in transit
func (s *ShipmentService) Depart(ctx context.Context, actor access.Principal, shipmentID uuid.UUID, departedAt time.Time) (*ShipmentResponse, error) {
	shipment, err := s.authorizeEdit(ctx, actor, shipmentID)
	if err != nil {
		return nil, err
	}

	if err := shipment.Depart(departedAt); err != nil {
		return nil, err
	}
	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		return nil, err
	}

	response := ToShipmentResponse(shipment)
	return &response, nil
}

// MarkArrived marks a shipment as arrived
func (s *ShipmentService) MarkArrived(ctx context.Context, actor access.Principal, shipmentID uuid.UUID) (*ShipmentResponse, error) {
	shipment, err := s.authorizeEdit(ctx, actor, shipmentID)
	if err != nil {
		return nil, err
	}

	if err := shipment.MarkArrived(); err != nil {
		return nil, err
	}
	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		return nil, err
	}

	response := ToShipmentResponse(shipment)
	return &response, nil
}

// Delete removes a shipment
func (s *ShipmentService) Delete(ctx context.Context, actor access.Principal, shipmentID uuid.UUID) error {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityShipment, shipmentID)
	if err != nil {
		return err
	}
	if err := decisionError(decision); err != nil {
		return err
	}
	if !identity.CapabilityFor(actor.Role).CanDeleteAny {
		return shared.ErrForbidden
	}

	if err := s.shipmentRepo.Delete(ctx, actor.CompanyID, shipmentID); err != nil {
		return err
	}

	s.logger.Info("Shipment deleted",
		zap.String("shipment_id", shipmentID.String()),
		zap.String("deleted_by", actor.UserID.String()))

	return nil
}

func (s *ShipmentService) authorizeEdit(ctx context.Context, actor access.Principal, shipmentID uuid.UUID) (*tracking.Shipment, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityShipment, shipmentID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}
	if !identity.CapabilityFor(actor.Role).CanEditAny {
		return nil, shared.ErrForbidden
	}

	return s.shipmentRepo.FindByID(ctx, shipmentID)
}
