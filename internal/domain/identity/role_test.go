package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("accepts known roles", func(t *testing.T) {
		cases := map[string]Role{
			"SUPERVISOR": RoleSupervisor,
			"INSPECTOR":  RoleInspector,
			"CUSTOMER":   RoleCustomer,
			"SUPPLIER":   RoleSupplier,
		}
		for input, want := range cases {
			role, err := ParseRole(input)
			require.NoError(t, err)
			assert.Equal(t, want, role)
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		role, err := ParseRole("  supervisor ")
		require.NoError(t, err)
		assert.Equal(t, RoleSupervisor, role)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		for _, input := range []string{"", "ADMIN", "MANAGER", "supervisorr"} {
			_, err := ParseRole(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestCapabilityFor(t *testing.T) {
	t.Run("supervisor has full capabilities", func(t *testing.T) {
		cap := CapabilityFor(RoleSupervisor)

		assert.True(t, cap.CanCreateEntities)
		assert.True(t, cap.CanCreateBales)
		assert.True(t, cap.CanEditAny)
		assert.True(t, cap.CanDeleteAny)
		assert.Equal(t, ViewScopeAllInCompany, cap.ViewScope)
		assert.Equal(t, NoteEditScopeAny, cap.NoteEditScope)
	})

	t.Run("inspector creates but cannot edit or delete others' work", func(t *testing.T) {
		cap := CapabilityFor(RoleInspector)

		assert.True(t, cap.CanCreateEntities)
		assert.True(t, cap.CanCreateBales)
		assert.False(t, cap.CanEditAny)
		assert.False(t, cap.CanDeleteAny)
		assert.Equal(t, ViewScopeAllInCompany, cap.ViewScope)
		assert.Equal(t, NoteEditScopeOwnOnly, cap.NoteEditScope)
	})

	t.Run("customer and supplier are read-only and assignment-scoped", func(t *testing.T) {
		for _, role := range []Role{RoleCustomer, RoleSupplier} {
			cap := CapabilityFor(role)

			assert.False(t, cap.CanCreateEntities)
			assert.False(t, cap.CanCreateBales)
			assert.False(t, cap.CanEditAny)
			assert.False(t, cap.CanDeleteAny)
			assert.Equal(t, ViewScopeAssignedOnly, cap.ViewScope)
			assert.Equal(t, NoteEditScopeOwnOnly, cap.NoteEditScope)
		}
	})

	t.Run("unknown role gets no capabilities", func(t *testing.T) {
		cap := CapabilityFor(Role("ADMIN"))

		assert.False(t, cap.CanCreateEntities)
		assert.False(t, cap.CanCreateBales)
		assert.False(t, cap.CanEditAny)
		assert.False(t, cap.CanDeleteAny)
		assert.Equal(t, ViewScopeAssignedOnly, cap.ViewScope)
	})
}

func TestRole_RequiresAssignment(t *testing.T) {
	assert.False(t, RoleSupervisor.RequiresAssignment())
	assert.False(t, RoleInspector.RequiresAssignment())
	assert.True(t, RoleCustomer.RequiresAssignment())
	assert.True(t, RoleSupplier.RequiresAssignment())
}
