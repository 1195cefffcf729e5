package identity

import (
	"context"

	"github.com/baletrack/backend/internal/domain/access"
	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService handles user management within a company. All mutating
// operations are restricted to supervisors; reads of other users follow the
// same-company rule of the access resolver.
type UserService struct {
	userRepo identity.UserRepository
	resolver *access.Resolver
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, resolver *access.Resolver, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		resolver: resolver,
		logger:   logger,
	}
}

// Create creates a new user in the actor's company
func (s *UserService) Create(ctx context.Context, actor access.Principal, req CreateUserRequest) (*UserInfo, error) {
	if actor.Role != identity.RoleSupervisor {
		return nil, shared.ErrForbidden
	}

	role, err := identity.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User with this email already exists")
	}

	user, err := identity.NewUser(actor.CompanyID, req.Email, req.Password, role)
	if err != nil {
		return nil, err
	}
	user.SetCreatedBy(actor.UserID)
	if req.DisplayName != "" {
		if err := user.SetDisplayName(req.DisplayName); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
		zap.String("created_by", actor.UserID.String()))

	info := ToUserInfo(user)
	return &info, nil
}

// GetByID retrieves a user in the actor's company
func (s *UserService) GetByID(ctx context.Context, actor access.Principal, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByIDForCompany(ctx, actor.CompanyID, userID)
	if err != nil {
		return nil, err
	}

	if decision := s.resolver.ResolveUser(actor, user); !decision.Allowed() {
		return nil, shared.ErrNotFound
	}

	info := ToUserInfo(user)
	return &info, nil
}

// List retrieves the users of the actor's company with pagination
func (s *UserService) List(ctx context.Context, actor access.Principal, filter UserListFilter) ([]UserInfo, int64, error) {
	if actor.Role != identity.RoleSupervisor {
		return nil, 0, shared.ErrForbidden
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Role != "" {
		domainFilter.Filters["role"] = filter.Role
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	users, err := s.userRepo.FindAllForCompany(ctx, actor.CompanyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.CountForCompany(ctx, actor.CompanyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	infos := make([]UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, ToUserInfo(&users[i]))
	}
	return infos, total, nil
}

// Update updates another user's display name, role, or active flag
func (s *UserService) Update(ctx context.Context, actor access.Principal, userID uuid.UUID, req UpdateUserRequest) (*UserInfo, error) {
	if actor.Role != identity.RoleSupervisor {
		return nil, shared.ErrForbidden
	}

	user, err := s.userRepo.FindByIDForCompany(ctx, actor.CompanyID, userID)
	if err != nil {
		return nil, err
	}
	if decision := s.resolver.ResolveUser(actor, user); !decision.Allowed() {
		return nil, shared.ErrNotFound
	}

	if req.DisplayName != "" {
		if err := user.SetDisplayName(req.DisplayName); err != nil {
			return nil, err
		}
	}
	if req.Role != "" {
		role, err := identity.ParseRole(req.Role)
		if err != nil {
			return nil, err
		}
		if err := user.ChangeRole(role); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil && *req.IsActive != user.IsActive {
		if *req.IsActive {
			err = user.Activate()
		} else {
			if user.ID == actor.UserID {
				return nil, shared.NewDomainError("INVALID_OPERATION", "Cannot deactivate your own account")
			}
			err = user.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User updated",
		zap.String("user_id", user.ID.String()),
		zap.String("updated_by", actor.UserID.String()))

	info := ToUserInfo(user)
	return &info, nil
}

// Delete removes a user from the actor's company
func (s *UserService) Delete(ctx context.Context, actor access.Principal, userID uuid.UUID) error {
	if actor.Role != identity.RoleSupervisor {
		return shared.ErrForbidden
	}
	if userID == actor.UserID {
		return shared.NewDomainError("INVALID_OPERATION", "Cannot delete your own account")
	}

	if err := s.userRepo.Delete(ctx, actor.CompanyID, userID); err != nil {
		return err
	}

	s.logger.Info("User deleted",
		zap.String("user_id", userID.String()),
		zap.String("deleted_by", actor.UserID.String()))

	return nil
}
