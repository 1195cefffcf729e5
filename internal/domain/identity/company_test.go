package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	t.Run("creates an active company", func(t *testing.T) {
		company, err := NewCompany("acme-01", "  Acme Trading  ")

		require.NoError(t, err)
		assert.Equal(t, "ACME-01", company.Code)
		assert.Equal(t, "Acme Trading", company.Name)
		assert.Equal(t, CompanyStatusActive, company.Status)
		assert.True(t, company.IsActive())
		assert.Len(t, company.GetDomainEvents(), 1)
	})

	t.Run("rejects invalid codes", func(t *testing.T) {
		for _, code := range []string{"", "1ACME", "AC ME", "ACME!", strings.Repeat("A", 51)} {
			_, err := NewCompany(code, "Acme Trading")
			assert.Error(t, err, "code %q", code)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCompany("ACME", "   ")
		assert.Error(t, err)
	})
}

func TestCompany_SuspendActivate(t *testing.T) {
	company, err := NewCompany("ACME", "Acme Trading")
	require.NoError(t, err)

	require.NoError(t, company.Suspend())
	assert.False(t, company.IsActive())
	assert.Error(t, company.Suspend())

	require.NoError(t, company.Activate())
	assert.True(t, company.IsActive())
	assert.Error(t, company.Activate())
}
