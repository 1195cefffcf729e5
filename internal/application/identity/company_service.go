package identity

import (
	"context"

	"github.com/baletrack/backend/internal/domain/access"
	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CompanyService handles operations on the caller's own company
type CompanyService struct {
	companyRepo identity.CompanyRepository
	logger      *zap.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo identity.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// GetOwn retrieves the actor's company
func (s *CompanyService) GetOwn(ctx context.Context, actor access.Principal) (*CompanyInfo, error) {
	company, err := s.companyRepo.FindByID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	info := ToCompanyInfo(company)
	return &info, nil
}

// UpdateOwn updates the actor's company; supervisors only
func (s *CompanyService) UpdateOwn(ctx context.Context, actor access.Principal, req UpdateCompanyRequest) (*CompanyInfo, error) {
	if actor.Role != identity.RoleSupervisor {
		return nil, shared.ErrForbidden
	}

	company, err := s.companyRepo.FindByID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	if err := company.Update(req.Name, req.Country, req.Notes); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info("Company updated",
		zap.String("company_id", company.ID.String()),
		zap.String("updated_by", actor.UserID.String()))

	info := ToCompanyInfo(company)
	return &info, nil
}
