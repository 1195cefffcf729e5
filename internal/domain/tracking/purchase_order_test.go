package tracking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchaseOrder(t *testing.T) {
	companyID := uuid.New()
	createdBy := uuid.New()

	t.Run("creates an open purchase order", func(t *testing.T) {
		po, err := NewPurchaseOrder(companyID, createdBy, "po/2026-001", "Highland Farms")

		require.NoError(t, err)
		assert.Equal(t, "PO/2026-001", po.OrderNumber)
		assert.Equal(t, companyID, po.CompanyID)
		require.NotNil(t, po.CreatedBy)
		assert.Equal(t, createdBy, *po.CreatedBy)
		assert.True(t, po.IsOpen())
		assert.Len(t, po.GetDomainEvents(), 1)
	})

	t.Run("rejects invalid order numbers", func(t *testing.T) {
		for _, number := range []string{"", "PO 001", "PO#001", "-PO"} {
			_, err := NewPurchaseOrder(companyID, createdBy, number, "Highland Farms")
			assert.Error(t, err, "order number %q", number)
		}
	})
}

func TestPurchaseOrder_Close(t *testing.T) {
	po, err := NewPurchaseOrder(uuid.New(), uuid.New(), "PO-001", "Highland Farms")
	require.NoError(t, err)

	require.NoError(t, po.Close())
	assert.False(t, po.IsOpen())
	assert.Error(t, po.Close())
}
