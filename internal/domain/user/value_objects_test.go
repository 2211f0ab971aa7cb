//go:build unit

package user_test

import (
	"testing"

	"closeout-market/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"buyer", "seller", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("operator")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestPrincipal(t *testing.T) {
	t.Run("anonymous is not authenticated", func(t *testing.T) {
		assert.False(t, user.Anonymous().IsAuthenticated())
	})

	t.Run("nil id is not authenticated", func(t *testing.T) {
		assert.False(t, user.NewPrincipal(uuid.Nil, user.RoleBuyer).IsAuthenticated())
	})

	t.Run("unknown role is not authenticated", func(t *testing.T) {
		assert.False(t, user.NewPrincipal(uuid.New(), user.Role("ghost")).IsAuthenticated())
	})

	t.Run("seller and admin can sell", func(t *testing.T) {
		assert.True(t, user.NewPrincipal(uuid.New(), user.RoleSeller).CanSell())
		assert.True(t, user.NewPrincipal(uuid.New(), user.RoleAdmin).CanSell())
		assert.False(t, user.NewPrincipal(uuid.New(), user.RoleBuyer).CanSell())
	})
}
