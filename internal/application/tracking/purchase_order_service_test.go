package tracking

import (
	"context"
	"testing"

	"github.com/baletrack/backend/internal/domain/access"
	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/baletrack/backend/internal/domain/tracking"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type poServiceFixture struct {
	service   *PurchaseOrderService
	poRepo    *MockPurchaseOrderRepository
	baleRepo  *MockBaleRepository
	loader    *fakeOwnershipLoader
	companyID uuid.UUID
}

func newPOServiceFixture() *poServiceFixture {
	loader := newFakeOwnershipLoader()
	poRepo := new(MockPurchaseOrderRepository)
	baleRepo := new(MockBaleRepository)

	return &poServiceFixture{
		service:   NewPurchaseOrderService(poRepo, baleRepo, access.NewResolver(loader), zap.NewNop()),
		poRepo:    poRepo,
		baleRepo:  baleRepo,
		loader:    loader,
		companyID: uuid.New(),
	}
}

func (f *poServiceFixture) principal(role identity.Role) access.Principal {
	return access.Principal{
		UserID:    uuid.New(),
		CompanyID: f.companyID,
		Role:      role,
	}
}

func (f *poServiceFixture) seedPO() (uuid.UUID, *tracking.PurchaseOrder) {
	po, err := tracking.NewPurchaseOrder(f.companyID, uuid.New(), "PO/2026-001", "Greenfield Farms")
	if err != nil {
		panic(err)
	}
	f.loader.chains[po.ID] = &access.OwnershipChain{
		CompanyID:       f.companyID,
		PurchaseOrderID: po.ID,
	}
	return po.ID, po
}

func TestPurchaseOrderService_Create(t *testing.T) {
	t.Run("supervisor creates purchase order", func(t *testing.T) {
		f := newPOServiceFixture()
		actor := f.principal(identity.RoleSupervisor)

		f.poRepo.On("ExistsByOrderNumber", mock.Anything, f.companyID, "PO/2026-001").Return(false, nil)
		f.poRepo.On("Save", mock.Anything, mock.AnythingOfType("*tracking.PurchaseOrder")).Return(nil)

		response, err := f.service.Create(context.Background(), actor, CreatePurchaseOrderRequest{
			OrderNumber:  "po/2026-001",
			SupplierName: "Greenfield Farms",
		})

		require.NoError(t, err)
		assert.Equal(t, "PO/2026-001", response.OrderNumber)
		assert.Equal(t, f.companyID, response.CompanyID)
		assert.Equal(t, tracking.PurchaseOrderStatusOpen, response.Status)
		f.poRepo.AssertExpectations(t)
	})

	t.Run("duplicate order number is rejected", func(t *testing.T) {
		f := newPOServiceFixture()
		actor := f.principal(identity.RoleSupervisor)

		f.poRepo.On("ExistsByOrderNumber", mock.Anything, f.companyID, "PO/2026-001").Return(true, nil)

		response, err := f.service.Create(context.Background(), actor, CreatePurchaseOrderRequest{
			OrderNumber: "PO/2026-001",
		})

		assert.Nil(t, response)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("customer cannot create purchase orders", func(t *testing.T) {
		f := newPOServiceFixture()
		actor := f.principal(identity.RoleCustomer)

		response, err := f.service.Create(context.Background(), actor, CreatePurchaseOrderRequest{
			OrderNumber: "PO/2026-001",
		})

		assert.Nil(t, response)
		assert.Equal(t, shared.ErrForbidden, err)
		f.poRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPurchaseOrderService_GetByID(t *testing.T) {
	t.Run("inspector reads any purchase order in company", func(t *testing.T) {
		f := newPOServiceFixture()
		actor := f.principal(identity.RoleInspector)
		poID, po := f.seedPO()

		f.poRepo.On("FindByID", mock.Anything, poID).Return(po, nil)

		response, err := f.service.GetByID(context.Background(), actor, poID)

		require.NoError(t, err)
		assert.Equal(t, poID, response.ID)
	})

	t.Run("unassigned supplier is forbidden", func(t *testing.T) {
		f := newPOServiceFixture()
		actor := f.principal(identity.RoleSupplier)
		poID, _ := f.seedPO()

		response, err := f.service.GetByID(context.Background(), actor, poID)

		assert.Nil(t, response)
		assert.Equal(t, shared.ErrForbidden, err)
	})

	t.Run("assigned supplier reads the purchase order", func(t *testing.T) {
		f := newPOServiceFixture()
		actor := f.principal(identity.RoleSupplier)
		poID, po := f.seedPO()
		f.loader.assignments[[2]uuid.UUID{poID, actor.UserID}] = true

		f.poRepo.On("FindByID", mock.Anything, poID).Return(po, nil)

		response, err := f.service.GetByID(context.Background(), actor, poID)

		require.NoError(t, err)
		assert.Equal(t, poID, response.ID)
	})

	t.Run("cross-company purchase order reports not found", func(t *testing.T) {
		f := newPOServiceFixture()
		poID, _ := f.seedPO()
		actor := access.Principal{UserID: uuid.New(), CompanyID: uuid.New(), Role: identity.RoleSupervisor}

		response, err := f.service.GetByID(context.Background(), actor, poID)

		assert.Nil(t, response)
		assert.Equal(t, shared.ErrNotFound, err)
		f.poRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestPurchaseOrderService_List(t *testing.T) {
	t.Run("supervisor lists all company purchase orders", func(t *testing.T) {
		f := newPOServiceFixture()
		actor := f.principal(identity.RoleSupervisor)
		_, po := f.seedPO()

		f.poRepo.On("FindAllForCompany", mock.Anything, f.companyID, mock.AnythingOfType("shared.Filter")).
			Return([]tracking.PurchaseOrder{*po}, nil)
		f.poRepo.On("CountForCompany", mock.Anything, f.companyID, mock.AnythingOfType("shared.Filter")).
			Return(int64(1), nil)

		responses, total, err := f.service.List(context.Background(), actor, ListFilter{})

		require.NoError(t, err)
		assert.Len(t, responses, 1)
		assert.Equal(t, int64(1), total)
		f.poRepo.AssertNotCalled(t, "FindAssignedToUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("customer listing is scoped to assigned purchase orders", func(t *testing.T) {
		f := newPOServiceFixture()
		actor := f.principal(identity.RoleCustomer)

		f.poRepo.On("FindAssignedToUser", mock.Anything, f.companyID, actor.UserID, mock.AnythingOfType("shared.Filter")).
			Return([]tracking.PurchaseOrder{}, nil)
		f.poRepo.On("CountAssignedToUser", mock.Anything, f.companyID, actor.UserID, mock.AnythingOfType("shared.Filter")).
			Return(int64(0), nil)

		responses, total, err := f.service.List(context.Background(), actor, ListFilter{})

		require.NoError(t, err)
		assert.Empty(t, responses)
		assert.Equal(t, int64(0), total)
		f.poRepo.AssertNotCalled(t, "FindAllForCompany", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPurchaseOrderService_Close(t *testing.T) {
	t.Run("supervisor closes purchase order", func(t *testing.T) {
		f := newPOServiceFixture()
		actor := f.principal(identity.RoleSupervisor)
		poID, po := f.seedPO()

		f.poRepo.On("FindByID", mock.Anything, poID).Return(po, nil)
		f.poRepo.On("Save", mock.Anything, po).Return(nil)

		response, err := f.service.Close(context.Background(), actor, poID)

		require.NoError(t, err)
		assert.Equal(t, tracking.PurchaseOrderStatusClosed, response.Status)
	})

	t.Run("inspector cannot close purchase orders", func(t *testing.T) {
		f := newPOServiceFixture()
		actor := f.principal(identity.RoleInspector)
		poID, _ := f.seedPO()

		response, err := f.service.Close(context.Background(), actor, poID)

		assert.Nil(t, response)
		assert.Equal(t, shared.ErrForbidden, err)
	})
}

func TestPurchaseOrderService_GradeSummary(t *testing.T) {
	t.Run("sums per-grade counts across the subtree", func(t *testing.T) {
		f := newPOServiceFixture()
		actor := f.principal(identity.RoleSupervisor)
		poID, _ := f.seedPO()

		f.baleRepo.On("CountByGradeForPurchaseOrder", mock.Anything, poID).Return(map[tracking.Grade]int64{
			tracking.GradeA:      7,
			tracking.GradeB:      2,
			tracking.GradeReject: 1,
		}, nil)

		summary, err := f.service.GradeSummary(context.Background(), actor, poID)

		require.NoError(t, err)
		assert.Equal(t, int64(10), summary.Total)
		assert.Equal(t, int64(7), summary.Counts[tracking.GradeA])
	})
}
