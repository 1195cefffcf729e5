package identity

import (
	"context"

	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]User, error)
	CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}
