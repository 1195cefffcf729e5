package tracking

import (
	"context"

	"github.com/baletrack/backend/internal/domain/access"
	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/baletrack/backend/internal/domain/tracking"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Fake ownership loader
// =============================================================================

// fakeOwnershipLoader backs the resolver in service tests with an in-memory
// chain and assignment table.
type fakeOwnershipLoader struct {
	chains      map[uuid.UUID]*access.OwnershipChain
	assignments map[[2]uuid.UUID]bool
}

func newFakeOwnershipLoader() *fakeOwnershipLoader {
	return &fakeOwnershipLoader{
		chains:      make(map[uuid.UUID]*access.OwnershipChain),
		assignments: make(map[[2]uuid.UUID]bool),
	}
}

func (l *fakeOwnershipLoader) lookup(id uuid.UUID) (*access.OwnershipChain, error) {
	chain, ok := l.chains[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return chain, nil
}

func (l *fakeOwnershipLoader) PurchaseOrderOwnership(_ context.Context, id uuid.UUID) (*access.OwnershipChain, error) {
	return l.lookup(id)
}

func (l *fakeOwnershipLoader) ShipmentOwnership(_ context.Context, id uuid.UUID) (*access.OwnershipChain, error) {
	return l.lookup(id)
}

func (l *fakeOwnershipLoader) ContainerOwnership(_ context.Context, id uuid.UUID) (*access.OwnershipChain, error) {
	return l.lookup(id)
}

func (l *fakeOwnershipLoader) BaleOwnership(_ context.Context, id uuid.UUID) (*access.OwnershipChain, error) {
	return l.lookup(id)
}

func (l *fakeOwnershipLoader) AssignmentExists(_ context.Context, poID, userID uuid.UUID) (bool, error) {
	return l.assignments[[2]uuid.UUID{poID, userID}], nil
}

// =============================================================================
// Mock repositories
// =============================================================================

// MockPurchaseOrderRepository is a mock implementation of PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*tracking.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]tracking.PurchaseOrder, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]tracking.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAssignedToUser(ctx context.Context, companyID, userID uuid.UUID, filter shared.Filter) ([]tracking.PurchaseOrder, error) {
	args := m.Called(ctx, companyID, userID, filter)
	return args.Get(0).([]tracking.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderRepository) CountAssignedToUser(ctx context.Context, companyID, userID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderRepository) ExistsByOrderNumber(ctx context.Context, companyID uuid.UUID, orderNumber string) (bool, error) {
	args := m.Called(ctx, companyID, orderNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, po *tracking.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

// MockBaleRepository is a mock implementation of BaleRepository
type MockBaleRepository struct {
	mock.Mock
}

func (m *MockBaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*tracking.Bale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Bale), args.Error(1)
}

func (m *MockBaleRepository) FindByContainer(ctx context.Context, containerID uuid.UUID, filter shared.Filter) ([]tracking.Bale, error) {
	args := m.Called(ctx, containerID, filter)
	return args.Get(0).([]tracking.Bale), args.Error(1)
}

func (m *MockBaleRepository) CountByContainer(ctx context.Context, containerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, containerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBaleRepository) CountByGradeForPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) (map[tracking.Grade]int64, error) {
	args := m.Called(ctx, purchaseOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[tracking.Grade]int64), args.Error(1)
}

func (m *MockBaleRepository) Save(ctx context.Context, bale *tracking.Bale) error {
	args := m.Called(ctx, bale)
	return args.Error(0)
}

func (m *MockBaleRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

// MockAssignmentRepository is a mock implementation of AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Find(ctx context.Context, purchaseOrderID, userID uuid.UUID) (*tracking.POUserAssignment, error) {
	args := m.Called(ctx, purchaseOrderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.POUserAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]tracking.POUserAssignment, error) {
	args := m.Called(ctx, purchaseOrderID)
	return args.Get(0).([]tracking.POUserAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByUser(ctx context.Context, companyID, userID uuid.UUID) ([]tracking.POUserAssignment, error) {
	args := m.Called(ctx, companyID, userID)
	return args.Get(0).([]tracking.POUserAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) Exists(ctx context.Context, purchaseOrderID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, purchaseOrderID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) Save(ctx context.Context, assignment *tracking.POUserAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, purchaseOrderID, userID uuid.UUID) error {
	args := m.Called(ctx, purchaseOrderID, userID)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}
