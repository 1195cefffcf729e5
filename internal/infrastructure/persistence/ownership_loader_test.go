package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockOwnershipLoader creates a GormOwnershipLoader with a mocked SQL connection
func newMockOwnershipLoader(t *testing.T) (*GormOwnershipLoader, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormOwnershipLoader(gormDB), mock, mockDB
}

func TestGormOwnershipLoader_PurchaseOrderOwnership(t *testing.T) {
	t.Run("resolves chain for existing purchase order", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		poID := uuid.New()
		companyID := uuid.New()

		rows := sqlmock.NewRows([]string{"company_id"}).AddRow(companyID)

		mock.ExpectQuery(`SELECT company_id FROM "purchase_orders" WHERE id = \$1 LIMIT .*`).
			WithArgs(poID, 1).
			WillReturnRows(rows)

		chain, err := loader.PurchaseOrderOwnership(context.Background(), poID)

		assert.NoError(t, err)
		require.NotNil(t, chain)
		assert.Equal(t, companyID, chain.CompanyID)
		assert.Equal(t, poID, chain.PurchaseOrderID)
		assert.Equal(t, uuid.Nil, chain.ShipmentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps absence to not found", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		poID := uuid.New()

		mock.ExpectQuery(`SELECT company_id FROM "purchase_orders" WHERE id = \$1 LIMIT .*`).
			WithArgs(poID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"company_id"}))

		chain, err := loader.PurchaseOrderOwnership(context.Background(), poID)

		assert.Nil(t, chain)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("passes infrastructure errors through", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		poID := uuid.New()

		mock.ExpectQuery(`SELECT company_id FROM "purchase_orders" WHERE id = \$1 LIMIT .*`).
			WithArgs(poID, 1).
			WillReturnError(sql.ErrConnDone)

		chain, err := loader.PurchaseOrderOwnership(context.Background(), poID)

		assert.Nil(t, chain)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NotErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOwnershipLoader_ShipmentOwnership(t *testing.T) {
	t.Run("resolves chain for existing shipment", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		shipmentID := uuid.New()
		poID := uuid.New()
		companyID := uuid.New()

		rows := sqlmock.NewRows([]string{"company_id", "purchase_order_id"}).
			AddRow(companyID, poID)

		mock.ExpectQuery(`SELECT company_id, purchase_order_id FROM "shipments" WHERE id = \$1 LIMIT .*`).
			WithArgs(shipmentID, 1).
			WillReturnRows(rows)

		chain, err := loader.ShipmentOwnership(context.Background(), shipmentID)

		assert.NoError(t, err)
		require.NotNil(t, chain)
		assert.Equal(t, companyID, chain.CompanyID)
		assert.Equal(t, poID, chain.PurchaseOrderID)
		assert.Equal(t, shipmentID, chain.ShipmentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps absence to not found", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		shipmentID := uuid.New()

		mock.ExpectQuery(`SELECT company_id, purchase_order_id FROM "shipments" WHERE id = \$1 LIMIT .*`).
			WithArgs(shipmentID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		chain, err := loader.ShipmentOwnership(context.Background(), shipmentID)

		assert.Nil(t, chain)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOwnershipLoader_ContainerOwnership(t *testing.T) {
	t.Run("joins shipment to recover purchase order id", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		containerID := uuid.New()
		shipmentID := uuid.New()
		poID := uuid.New()
		companyID := uuid.New()

		rows := sqlmock.NewRows([]string{"company_id", "shipment_id", "purchase_order_id"}).
			AddRow(companyID, shipmentID, poID)

		mock.ExpectQuery(`SELECT containers.company_id, containers.shipment_id, shipments.purchase_order_id FROM "containers" JOIN shipments ON shipments.id = containers.shipment_id WHERE containers.id = \$1 LIMIT .*`).
			WithArgs(containerID, 1).
			WillReturnRows(rows)

		chain, err := loader.ContainerOwnership(context.Background(), containerID)

		assert.NoError(t, err)
		require.NotNil(t, chain)
		assert.Equal(t, companyID, chain.CompanyID)
		assert.Equal(t, poID, chain.PurchaseOrderID)
		assert.Equal(t, shipmentID, chain.ShipmentID)
		assert.Equal(t, containerID, chain.ContainerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps absence to not found", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		containerID := uuid.New()

		mock.ExpectQuery(`SELECT containers.company_id, containers.shipment_id, shipments.purchase_order_id FROM "containers" JOIN shipments ON shipments.id = containers.shipment_id WHERE containers.id = \$1 LIMIT .*`).
			WithArgs(containerID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		chain, err := loader.ContainerOwnership(context.Background(), containerID)

		assert.Nil(t, chain)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOwnershipLoader_BaleOwnership(t *testing.T) {
	t.Run("resolves full chain from denormalized columns", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		baleID := uuid.New()
		containerID := uuid.New()
		shipmentID := uuid.New()
		poID := uuid.New()
		companyID := uuid.New()

		rows := sqlmock.NewRows([]string{"company_id", "container_id", "shipment_id", "purchase_order_id"}).
			AddRow(companyID, containerID, shipmentID, poID)

		mock.ExpectQuery(`SELECT company_id, container_id, shipment_id, purchase_order_id FROM "bales" WHERE id = \$1 LIMIT .*`).
			WithArgs(baleID, 1).
			WillReturnRows(rows)

		chain, err := loader.BaleOwnership(context.Background(), baleID)

		assert.NoError(t, err)
		require.NotNil(t, chain)
		assert.Equal(t, companyID, chain.CompanyID)
		assert.Equal(t, poID, chain.PurchaseOrderID)
		assert.Equal(t, shipmentID, chain.ShipmentID)
		assert.Equal(t, containerID, chain.ContainerID)
		assert.Equal(t, baleID, chain.BaleID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps absence to not found", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		baleID := uuid.New()

		mock.ExpectQuery(`SELECT company_id, container_id, shipment_id, purchase_order_id FROM "bales" WHERE id = \$1 LIMIT .*`).
			WithArgs(baleID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		chain, err := loader.BaleOwnership(context.Background(), baleID)

		assert.Nil(t, chain)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOwnershipLoader_AssignmentExists(t *testing.T) {
	t.Run("returns true when assignment exists", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		poID := uuid.New()
		userID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "po_user_assignments" WHERE purchase_order_id = \$1 AND user_id = \$2`).
			WithArgs(poID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := loader.AssignmentExists(context.Background(), poID, userID)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when no assignment exists", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		poID := uuid.New()
		userID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "po_user_assignments" WHERE purchase_order_id = \$1 AND user_id = \$2`).
			WithArgs(poID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := loader.AssignmentExists(context.Background(), poID, userID)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("surfaces lookup failures without masking them", func(t *testing.T) {
		loader, mock, mockDB := newMockOwnershipLoader(t)
		defer mockDB.Close()

		poID := uuid.New()
		userID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "po_user_assignments" WHERE purchase_order_id = \$1 AND user_id = \$2`).
			WithArgs(poID, userID).
			WillReturnError(sql.ErrConnDone)

		exists, err := loader.AssignmentExists(context.Background(), poID, userID)

		assert.False(t, exists)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
