package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Principal is the verified identity of a caller, produced by the
// authentication collaborator. The resolver trusts it as-is.
type Principal struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      identity.Role
}

// Outcome is the terminal decision of an access resolution
type Outcome string

const (
	// OutcomeAllow grants access and carries the resolved ownership chain
	OutcomeAllow Outcome = "allow"
	// OutcomeNotFound covers both a genuinely absent entity and an entity
	// owned by another company; callers must not be able to tell the two
	// apart.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeForbidden means the entity exists in the principal's company
	// but the principal lacks the required purchase order assignment.
	OutcomeForbidden Outcome = "forbidden"
)

// Decision is the result of an access resolution. Chain is populated only
// when Outcome is OutcomeAllow.
type Decision struct {
	Outcome Outcome
	Chain   *OwnershipChain
}

// Allowed reports whether the decision grants access
func (d Decision) Allowed() bool {
	return d.Outcome == OutcomeAllow
}

var (
	decisionNotFound  = Decision{Outcome: OutcomeNotFound}
	decisionForbidden = Decision{Outcome: OutcomeForbidden}
)

// Resolver decides whether a principal may access an entity. It is
// stateless: every resolution is an independent read-then-decide pass over
// the loader's current snapshot, safe for arbitrary concurrent use.
type Resolver struct {
	loader OwnershipLoader
}

// NewResolver creates a new Resolver backed by the given ownership loader
func NewResolver(loader OwnershipLoader) *Resolver {
	return &Resolver{loader: loader}
}

// Resolve decides access for a principal against an entity. A returned
// error means the ownership lookup itself failed; it is never evidence of
// absence and callers must not map it to a not-found outcome.
//
// The company check runs, and must pass, before the assignment lookup is
// attempted: a cross-company entity yields the same not-found decision as
// a missing one, so a caller from another company cannot probe for
// existence. Only inside the principal's own company does the decision
// distinguish forbidden from allowed.
func (r *Resolver) Resolve(ctx context.Context, principal Principal, entityType EntityType, entityID uuid.UUID) (Decision, error) {
	chain, err := r.loadOwnership(ctx, entityType, entityID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return decisionNotFound, nil
		}
		return Decision{}, fmt.Errorf("ownership lookup for %s %s: %w", entityType, entityID, err)
	}

	if chain.CompanyID != principal.CompanyID {
		return decisionNotFound, nil
	}

	if identity.CapabilityFor(principal.Role).ViewScope == identity.ViewScopeAssignedOnly {
		assigned, err := r.loader.AssignmentExists(ctx, chain.PurchaseOrderID, principal.UserID)
		if err != nil {
			return Decision{}, fmt.Errorf("assignment lookup for purchase order %s: %w", chain.PurchaseOrderID, err)
		}
		if !assigned {
			return decisionForbidden, nil
		}
	}

	return Decision{Outcome: OutcomeAllow, Chain: chain}, nil
}

// ResolveUser decides whether a principal may act on another user. Users
// carry no assignment concept; the only rule is company membership, and a
// cross-company user is reported as not found.
func (r *Resolver) ResolveUser(principal Principal, target *identity.User) Decision {
	if target == nil || target.CompanyID != principal.CompanyID {
		return decisionNotFound
	}
	return Decision{Outcome: OutcomeAllow}
}

func (r *Resolver) loadOwnership(ctx context.Context, entityType EntityType, entityID uuid.UUID) (*OwnershipChain, error) {
	switch entityType {
	case EntityPurchaseOrder:
		return r.loader.PurchaseOrderOwnership(ctx, entityID)
	case EntityShipment:
		return r.loader.ShipmentOwnership(ctx, entityID)
	case EntityContainer:
		return r.loader.ContainerOwnership(ctx, entityID)
	case EntityBale:
		return r.loader.BaleOwnership(ctx, entityID)
	default:
		return nil, shared.NewDomainError("INVALID_ENTITY_TYPE", "Unknown entity type: "+string(entityType))
	}
}
