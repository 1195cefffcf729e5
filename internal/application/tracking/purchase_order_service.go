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

// PurchaseOrderService handles purchase order operations. Every access to an
// existing purchase order goes through the resolver first; listings are
// scoped by the caller's view scope.
type PurchaseOrderService struct {
	poRepo   tracking.PurchaseOrderRepository
	baleRepo tracking.BaleRepository
	resolver *access.Resolver
	logger   *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	poRepo tracking.PurchaseOrderRepository,
	baleRepo tracking.BaleRepository,
	resolver *access.Resolver,
	logger *zap.Logger,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		poRepo:   poRepo,
		baleRepo: baleRepo,
		resolver: resolver,
		logger:   logger,
	}
}

// Create creates a new purchase order in the actor's company
func (s *PurchaseOrderService) Create(ctx context.Context, actor access.Principal, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	if !identity.CapabilityFor(actor.Role).CanCreateEntities {
		return nil, shared.ErrForbidden
	}

	po, err := tracking.NewPurchaseOrder(actor.CompanyID, actor.UserID, req.OrderNumber, req.SupplierName)
	if err != nil {
		return nil, err
	}

	exists, err := s.poRepo.ExistsByOrderNumber(ctx, actor.CompanyID, po.OrderNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Purchase order with this order number already exists")
	}

	if err := s.poRepo.Save(ctx, po); err != nil {
		return nil, err
	}

	s.logger.Info("Purchase order created",
		zap.String("purchase_order_id", po.ID.String()),
		zap.String("order_number", po.OrderNumber),
		zap.String("created_by", actor.UserID.String()))

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// GetByID retrieves a purchase order the actor may access
func (s *PurchaseOrderService) GetByID(ctx context.Context, actor access.Principal, poID uuid.UUID) (*PurchaseOrderResponse, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityPurchaseOrder, poID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}

	po, err := s.poRepo.FindByID(ctx, poID)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// List retrieves the purchase orders visible to the actor. Users with
// assignment-gated visibility see only their assigned purchase orders.
func (s *PurchaseOrderService) List(ctx context.Context, actor access.Principal, filter ListFilter) ([]PurchaseOrderResponse, int64, error) {
	domainFilter := filter.domainFilter()

	var (
		orders []tracking.PurchaseOrder
		total  int64
		err    error
	)
	if actor.Role.RequiresAssignment() {
		orders, err = s.poRepo.FindAssignedToUser(ctx, actor.CompanyID, actor.UserID, domainFilter)
		if err != nil {
			return nil, 0, err
		}
		total, err = s.poRepo.CountAssignedToUser(ctx, actor.CompanyID, actor.UserID, domainFilter)
	} else {
		orders, err = s.poRepo.FindAllForCompany(ctx, actor.CompanyID, domainFilter)
		if err != nil {
			return nil, 0, err
		}
		total, err = s.poRepo.CountForCompany(ctx, actor.CompanyID, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToPurchaseOrderResponse(&orders[i]))
	}
	return responses, total, nil
}

// Update updates a purchase order's mutable fields
func (s *PurchaseOrderService) Update(ctx context.Context, actor access.Principal, poID uuid.UUID, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	po, err := s.authorizeEdit(ctx, actor, poID)
	if err != nil {
		return nil, err
	}

	if err := po.Update(req.SupplierName, req.Notes); err != nil {
		return nil, err
	}
	if err := s.poRepo.Save(ctx, po); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// Close closes a purchase order
func (s *PurchaseOrderService) Close(ctx context.Context, actor access.Principal, poID uuid.UUID) (*PurchaseOrderResponse, error) {
	po, err := s.authorizeEdit(ctx, actor, poID)
	if err != nil {
		return nil, err
	}

	if err := po.Close(); err != nil {
		return nil, err
	}
	if err := s.poRepo.Save(ctx, po); err != nil {
		return nil, err
	}

	s.logger.Info("Purchase order closed",
		zap.String("purchase_order_id", po.ID.String()),
		zap.String("closed_by", actor.UserID.String()))

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// Delete removes a purchase order
func (s *PurchaseOrderService) Delete(ctx context.Context, actor access.Principal, poID uuid.UUID) error {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityPurchaseOrder, poID)
	if err != nil {
		return err
	}
	if err := decisionError(decision); err != nil {
		return err
	}
	if !identity.CapabilityFor(actor.Role).CanDeleteAny {
		return shared.ErrForbidden
	}

	if err := s.poRepo.Delete(ctx, actor.CompanyID, poID); err != nil {
		return err
	}

	s.logger.Info("Purchase order deleted",
		zap.String("purchase_order_id", poID.String()),
		zap.String("deleted_by", actor.UserID.String()))

	return nil
}

// GradeSummary returns per-grade bale counts across the purchase order's
// whole subtree.
func (s *PurchaseOrderService) GradeSummary(ctx context.Context, actor access.Principal, poID uuid.UUID) (*GradeSummaryResponse, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityPurchaseOrder, poID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}

	counts, err := s.baleRepo.CountByGradeForPurchaseOrder(ctx, poID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, count := range counts {
		total += count
	}

	return &GradeSummaryResponse{
		PurchaseOrderID: poID,
		Counts:          counts,
		Total:           total,
	}, nil
}

func (s *PurchaseOrderService) authorizeEdit(ctx context.Context, actor access.Principal, poID uuid.UUID) (*tracking.PurchaseOrder, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityPurchaseOrder, poID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}
	if !identity.CapabilityFor(actor.Role).CanEditAny {
		return nil, shared.ErrForbidden
	}

	return s.poRepo.FindByID(ctx, poID)
}
