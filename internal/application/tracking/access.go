package tracking

import (
	"github.com/baletrack/backend/internal/domain/access"
	"github.com/baletrack/backend/internal/domain/shared"
)

// decisionError translates a terminal resolver decision into the domain
// error surfaced to callers. Allow yields nil; the not-found outcome covers
// both absence and cross-company entities by design.
func decisionError(d access.Decision) error {
	switch d.Outcome {
	case access.OutcomeAllow:
		return nil
	case access.OutcomeForbidden:
		return shared.ErrForbidden
	default:
		return shared.ErrNotFound
	}
}
