package tracking

import (
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// POUserAssignment grants a restricted-visibility user (CUSTOMER or
// SUPPLIER) access to one purchase order's subtree. Assignments are unique
// per (purchase order, user) pair and are managed by supervisors only.
type POUserAssignment struct {
	shared.BaseEntity
	CompanyID       uuid.UUID
	PurchaseOrderID uuid.UUID
	UserID          uuid.UUID
	GrantedBy       uuid.UUID
}

// NewPOUserAssignment creates a new assignment record
func NewPOUserAssignment(companyID, purchaseOrderID, userID, grantedBy uuid.UUID) (*POUserAssignment, error) {
	if purchaseOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PURCHASE_ORDER", "Assignment requires a purchase order")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Assignment requires a user")
	}

	return &POUserAssignment{
		BaseEntity:      shared.NewBaseEntity(),
		CompanyID:       companyID,
		PurchaseOrderID: purchaseOrderID,
		UserID:          userID,
		GrantedBy:       grantedBy,
	}, nil
}
