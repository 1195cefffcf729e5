package identity

import (
	"github.com/baletrack/backend/internal/domain/shared"
)

// Event types for the company aggregate
const (
	EventTypeCompanyCreated = "identity.company.created"
)

// CompanyCreatedEvent is raised when a new company is registered
type CompanyCreatedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewCompanyCreatedEvent creates a new CompanyCreatedEvent
func NewCompanyCreatedEvent(company *Company) *CompanyCreatedEvent {
	return &CompanyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyCreated, "Company", company.ID, company.ID),
		Code:            company.Code,
		Name:            company.Name,
	}
}
