package tracking

import (
	"regexp"
	"strings"
	"time"

	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusOpen   PurchaseOrderStatus = "open"
	PurchaseOrderStatusClosed PurchaseOrderStatus = "closed"
)

// PurchaseOrder is the top of the inspection hierarchy below Company.
// Shipments, containers, and bales all resolve their ownership through it.
type PurchaseOrder struct {
	shared.CompanyAggregateRoot
	OrderNumber  string
	SupplierName string
	Status       PurchaseOrderStatus
	Notes        string
}

var orderNumberRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9/_-]*$`)

// NewPurchaseOrder creates a new open purchase order
func NewPurchaseOrder(companyID, createdBy uuid.UUID, orderNumber, supplierName string) (*PurchaseOrder, error) {
	orderNumber = strings.ToUpper(strings.TrimSpace(orderNumber))
	if err := validateOrderNumber(orderNumber); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(supplierName)) > 200 {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot exceed 200 characters")
	}

	po := &PurchaseOrder{
		CompanyAggregateRoot: shared.NewCompanyAggregateRootWithCreator(companyID, createdBy),
		OrderNumber:          orderNumber,
		SupplierName:         strings.TrimSpace(supplierName),
		Status:               PurchaseOrderStatusOpen,
	}

	po.AddDomainEvent(NewPurchaseOrderCreatedEvent(po))

	return po, nil
}

// Update updates the purchase order's mutable fields
func (po *PurchaseOrder) Update(supplierName, notes string) error {
	supplierName = strings.TrimSpace(supplierName)
	if len(supplierName) > 200 {
		return shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot exceed 200 characters")
	}

	po.SupplierName = supplierName
	po.Notes = notes
	po.UpdatedAt = time.Now()
	po.IncrementVersion()

	return nil
}

// Close closes the purchase order
func (po *PurchaseOrder) Close() error {
	if po.Status == PurchaseOrderStatusClosed {
		return shared.NewDomainError("ALREADY_CLOSED", "Purchase order is already closed")
	}

	po.Status = PurchaseOrderStatusClosed
	po.UpdatedAt = time.Now()
	po.IncrementVersion()

	return nil
}

// IsOpen reports whether the purchase order still accepts new shipments
func (po *PurchaseOrder) IsOpen() bool {
	return po.Status == PurchaseOrderStatusOpen
}

func validateOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if !orderNumberRegex.MatchString(orderNumber) {
		return shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number may contain only letters, numbers, slashes, hyphens, and underscores")
	}
	return nil
}
