package identity

import (
	"strings"

	"github.com/baletrack/backend/internal/domain/shared"
)

// Role represents a user's role within a company. Roles form a closed set;
// values outside of it must be rejected at the boundary via ParseRole.
type Role string

const (
	RoleSupervisor Role = "SUPERVISOR"
	RoleInspector  Role = "INSPECTOR"
	RoleCustomer   Role = "CUSTOMER"
	RoleSupplier   Role = "SUPPLIER"
)

// ParseRole converts a string into a Role, rejecting unknown values
func ParseRole(value string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleSupervisor:
		return RoleSupervisor, nil
	case RoleInspector:
		return RoleInspector, nil
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleSupplier:
		return RoleSupplier, nil
	default:
		return "", shared.NewDomainError("INVALID_ROLE", "Unknown role: "+value)
	}
}

// IsValid reports whether the role is one of the known values
func (r Role) IsValid() bool {
	switch r {
	case RoleSupervisor, RoleInspector, RoleCustomer, RoleSupplier:
		return true
	default:
		return false
	}
}

// ViewScope describes how broadly a role can see company data
type ViewScope string

const (
	// ViewScopeAllInCompany grants visibility into every entity whose root
	// company matches the principal's company.
	ViewScopeAllInCompany ViewScope = "all_in_company"
	// ViewScopeAssignedOnly restricts visibility to purchase orders the user
	// has an explicit assignment for.
	ViewScopeAssignedOnly ViewScope = "assigned_only"
)

// NoteEditScope describes which inspection notes a role may edit
type NoteEditScope string

const (
	NoteEditScopeOwnOnly NoteEditScope = "own_only"
	NoteEditScopeAny     NoteEditScope = "any"
)

// Capability is the set of flags granted to a role. It is a value object;
// the mapping from role to capability is fixed and has no error paths.
type Capability struct {
	CanCreateEntities bool
	CanCreateBales    bool
	CanEditAny        bool
	CanDeleteAny      bool
	ViewScope         ViewScope
	NoteEditScope     NoteEditScope
}

// CapabilityFor returns the capability record for a role. Unknown roles
// receive no capabilities and the most restrictive scopes; callers are
// expected to reject unknown roles before reaching this table.
func CapabilityFor(role Role) Capability {
	switch role {
	case RoleSupervisor:
		return Capability{
			CanCreateEntities: true,
			CanCreateBales:    true,
			CanEditAny:        true,
			CanDeleteAny:      true,
			ViewScope:         ViewScopeAllInCompany,
			NoteEditScope:     NoteEditScopeAny,
		}
	case RoleInspector:
		return Capability{
			CanCreateEntities: true,
			CanCreateBales:    true,
			ViewScope:         ViewScopeAllInCompany,
			NoteEditScope:     NoteEditScopeOwnOnly,
		}
	case RoleCustomer, RoleSupplier:
		return Capability{
			ViewScope:     ViewScopeAssignedOnly,
			NoteEditScope: NoteEditScopeOwnOnly,
		}
	default:
		return Capability{
			ViewScope:     ViewScopeAssignedOnly,
			NoteEditScope: NoteEditScopeOwnOnly,
		}
	}
}

// RequiresAssignment reports whether the role's visibility is gated on
// per-purchase-order assignments.
func (r Role) RequiresAssignment() bool {
	return CapabilityFor(r).ViewScope == ViewScopeAssignedOnly
}
