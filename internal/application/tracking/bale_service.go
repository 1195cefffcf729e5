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

// BaleService handles bale inspection operations. The bale's denormalized
// shipment and purchase order ids always come from the container's resolved
// ownership chain, and the grade is always recomputed server-side.
type BaleService struct {
	baleRepo tracking.BaleRepository
	resolver *access.Resolver
	logger   *zap.Logger
}

// NewBaleService creates a new BaleService
func NewBaleService(baleRepo tracking.BaleRepository, resolver *access.Resolver, logger *zap.Logger) *BaleService {
	return &BaleService{
		baleRepo: baleRepo,
		resolver: resolver,
		logger:   logger,
	}
}

// Create inspects a new bale into a container the actor may access
func (s *BaleService) Create(ctx context.Context, actor access.Principal, containerID uuid.UUID, req InspectBaleRequest) (*BaleResponse, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityContainer, containerID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}
	if !identity.CapabilityFor(actor.Role).CanCreateBales {
		return nil, shared.ErrForbidden
	}

	chain := decision.Chain
	bale, err := tracking.NewBale(
		actor.CompanyID,
		actor.UserID,
		chain.ContainerID,
		chain.ShipmentID,
		chain.PurchaseOrderID,
		req.BaleNumber,
		toInspection(req),
	)
	if err != nil {
		return nil, err
	}

	if err := s.baleRepo.Save(ctx, bale); err != nil {
		return nil, err
	}

	s.logger.Info("Bale inspected",
		zap.String("bale_id", bale.ID.String()),
		zap.String("container_id", containerID.String()),
		zap.String("grade", string(bale.Grade)),
		zap.String("inspected_by", actor.UserID.String()))

	response := ToBaleResponse(bale)
	return &response, nil
}

// GetByID retrieves a bale the actor may access
func (s *BaleService) GetByID(ctx context.Context, actor access.Principal, baleID uuid.UUID) (*BaleResponse, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityBale, baleID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}

	bale, err := s.baleRepo.FindByID(ctx, baleID)
	if err != nil {
		return nil, err
	}

	response := ToBaleResponse(bale)
	return &response, nil
}

// ListByContainer retrieves the bales inside a container
func (s *BaleService) ListByContainer(ctx context.Context, actor access.Principal, containerID uuid.UUID, filter ListFilter) ([]BaleResponse, int64, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityContainer, containerID)
	if err != nil {
		return nil, 0, err
	}
	if err := decisionError(decision); err != nil {
		return nil, 0, err
	}

	domainFilter := filter.domainFilter()
	bales, err := s.baleRepo.FindByContainer(ctx, containerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.baleRepo.CountByContainer(ctx, containerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BaleResponse, 0, len(bales))
	for i := range bales {
		responses = append(responses, ToBaleResponse(&bales[i]))
	}
	return responses, total, nil
}

// Reinspect replaces a bale's measurements and recomputes its grade.
// Allowed for editors of any entity, or for the bale's own inspector when
// they hold the bale-creation capability.
func (s *BaleService) Reinspect(ctx context.Context, actor access.Principal, baleID uuid.UUID, req InspectBaleRequest) (*BaleResponse, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityBale, baleID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}

	bale, err := s.baleRepo.FindByID(ctx, baleID)
	if err != nil {
		return nil, err
	}

	capability := identity.CapabilityFor(actor.Role)
	if !capability.CanEditAny && !(capability.CanCreateBales && bale.InspectedBy == actor.UserID) {
		return nil, shared.ErrForbidden
	}

	if err := bale.Reinspect(actor.UserID, toInspection(req)); err != nil {
		return nil, err
	}
	if err := s.baleRepo.Save(ctx, bale); err != nil {
		return nil, err
	}

	s.logger.Info("Bale reinspected",
		zap.String("bale_id", bale.ID.String()),
		zap.String("grade", string(bale.Grade)),
		zap.String("inspected_by", actor.UserID.String()))

	response := ToBaleResponse(bale)
	return &response, nil
}

// UpdateNotes edits a bale's inspection notes, honoring the actor's note
// edit scope: own-only editors may touch only bales they inspected.
func (s *BaleService) UpdateNotes(ctx context.Context, actor access.Principal, baleID uuid.UUID, req UpdateBaleNotesRequest) (*BaleResponse, error) {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityBale, baleID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}

	bale, err := s.baleRepo.FindByID(ctx, baleID)
	if err != nil {
		return nil, err
	}

	if identity.CapabilityFor(actor.Role).NoteEditScope == identity.NoteEditScopeOwnOnly &&
		bale.InspectedBy != actor.UserID {
		return nil, shared.ErrForbidden
	}

	if err := bale.SetInspectionNotes(req.Notes); err != nil {
		return nil, err
	}
	if err := s.baleRepo.Save(ctx, bale); err != nil {
		return nil, err
	}

	response := ToBaleResponse(bale)
	return &response, nil
}

// Delete removes a bale
func (s *BaleService) Delete(ctx context.Context, actor access.Principal, baleID uuid.UUID) error {
	decision, err := s.resolver.Resolve(ctx, actor, access.EntityBale, baleID)
	if err != nil {
		return err
	}
	if err := decisionError(decision); err != nil {
		return err
	}
	if !identity.CapabilityFor(actor.Role).CanDeleteAny {
		return shared.ErrForbidden
	}

	if err := s.baleRepo.Delete(ctx, actor.CompanyID, baleID); err != nil {
		return err
	}

	s.logger.Info("Bale deleted",
		zap.String("bale_id", baleID.String()),
		zap.String("deleted_by", actor.UserID.String()))

	return nil
}

func toInspection(req InspectBaleRequest) tracking.BaleInspection {
	return tracking.BaleInspection{
		WeightKg:        req.WeightKg,
		MoisturePercent: req.MoisturePercent,
		Color:           tracking.BaleColor(req.Color),
		Wetness:         tracking.BaleWetness(req.Wetness),
		Mold:            req.Mold,
		Contamination:   req.Contamination,
		Notes:           req.Notes,
	}
}
