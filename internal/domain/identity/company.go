package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/baletrack/backend/internal/domain/shared"
)

// CompanyStatus represents the status of a company
type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "active"
	CompanyStatusSuspended CompanyStatus = "suspended"
)

// Company is the tenant boundary of the system. Every purchase order,
// shipment, container and bale transitively belongs to exactly one company.
// It is the aggregate root for company-related operations.
type Company struct {
	shared.BaseAggregateRoot
	Code    string
	Name    string
	Country string
	Status  CompanyStatus
	Notes   string
}

var companyCodeRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_-]*$`)

// NewCompany creates a new company with required fields
func NewCompany(code, name string) (*Company, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if err := validateCompanyCode(code); err != nil {
		return nil, err
	}
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}

	company := &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              strings.TrimSpace(name),
		Status:            CompanyStatusActive,
	}

	company.AddDomainEvent(NewCompanyCreatedEvent(company))

	return company, nil
}

// Update updates the company's basic information
func (c *Company) Update(name, country, notes string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Country = strings.TrimSpace(country)
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Suspend suspends the company
func (c *Company) Suspend() error {
	if c.Status == CompanyStatusSuspended {
		return shared.NewDomainError("ALREADY_SUSPENDED", "Company is already suspended")
	}

	c.Status = CompanyStatusSuspended
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Activate reactivates a suspended company
func (c *Company) Activate() error {
	if c.Status == CompanyStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Company is already active")
	}

	c.Status = CompanyStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// IsActive reports whether the company is active
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}

func validateCompanyCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_COMPANY_CODE", "Company code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_COMPANY_CODE", "Company code cannot exceed 50 characters")
	}
	if !companyCodeRegex.MatchString(code) {
		return shared.NewDomainError("INVALID_COMPANY_CODE", "Company code must start with a letter and contain only letters, numbers, hyphens, and underscores")
	}
	return nil
}

func validateCompanyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}
