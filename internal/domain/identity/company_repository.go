package identity

import (
	"context"

	"github.com/google/uuid"
)

// CompanyRepository defines persistence operations for companies
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByCode(ctx context.Context, code string) (*Company, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Save(ctx context.Context, company *Company) error
}
