package tracking

import (
	"context"
	"errors"

	"github.com/baletrack/backend/internal/domain/access"
	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/baletrack/backend/internal/domain/tracking"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssignmentService manages purchase order assignments for
// restricted-visibility users. Supervisors only.
type AssignmentService struct {
	assignmentRepo tracking.AssignmentRepository
	userRepo       identity.UserRepository
	resolver       *access.Resolver
	logger         *zap.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo tracking.AssignmentRepository,
	userRepo identity.UserRepository,
	resolver *access.Resolver,
	logger *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Grant assigns a purchase order to a customer or supplier user of the
// actor's company.
func (s *AssignmentService) Grant(ctx context.Context, actor access.Principal, poID uuid.UUID, req CreateAssignmentRequest) (*AssignmentResponse, error) {
	if actor.Role != identity.RoleSupervisor {
		return nil, shared.ErrForbidden
	}

	decision, err := s.resolver.Resolve(ctx, actor, access.EntityPurchaseOrder, poID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}

	target, err := s.userRepo.FindByIDForCompany(ctx, actor.CompanyID, req.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	if !target.Role.RequiresAssignment() {
		return nil, shared.NewDomainError("INVALID_ASSIGNMENT_TARGET", "Assignments apply only to customer and supplier users")
	}

	exists, err := s.assignmentRepo.Exists(ctx, poID, target.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User is already assigned to this purchase order")
	}

	assignment, err := tracking.NewPOUserAssignment(actor.CompanyID, poID, target.ID, actor.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.assignmentRepo.Save(ctx, assignment); err != nil {
		return nil, err
	}

	s.logger.Info("Assignment granted",
		zap.String("purchase_order_id", poID.String()),
		zap.String("user_id", target.ID.String()),
		zap.String("granted_by", actor.UserID.String()))

	response := ToAssignmentResponse(assignment)
	return &response, nil
}

// Revoke removes a user's assignment from a purchase order
func (s *AssignmentService) Revoke(ctx context.Context, actor access.Principal, poID, userID uuid.UUID) error {
	if actor.Role != identity.RoleSupervisor {
		return shared.ErrForbidden
	}

	decision, err := s.resolver.Resolve(ctx, actor, access.EntityPurchaseOrder, poID)
	if err != nil {
		return err
	}
	if err := decisionError(decision); err != nil {
		return err
	}

	if err := s.assignmentRepo.Delete(ctx, poID, userID); err != nil {
		return err
	}

	s.logger.Info("Assignment revoked",
		zap.String("purchase_order_id", poID.String()),
		zap.String("user_id", userID.String()),
		zap.String("revoked_by", actor.UserID.String()))

	return nil
}

// ListByPurchaseOrder retrieves the assignments on a purchase order
func (s *AssignmentService) ListByPurchaseOrder(ctx context.Context, actor access.Principal, poID uuid.UUID) ([]AssignmentResponse, error) {
	if actor.Role != identity.RoleSupervisor {
		return nil, shared.ErrForbidden
	}

	decision, err := s.resolver.Resolve(ctx, actor, access.EntityPurchaseOrder, poID)
	if err != nil {
		return nil, err
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.FindByPurchaseOrder(ctx, poID)
	if err != nil {
		return nil, err
	}

	responses := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		responses = append(responses, ToAssignmentResponse(&assignments[i]))
	}
	return responses, nil
}
