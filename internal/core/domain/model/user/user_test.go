package user_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create user with validated role", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "Abebe", kernel.RoleCustomer)
		require.NoError(t, err)

		assert.Equal(t, id, u.ID())
		assert.Equal(t, "Abebe", u.Name())
		assert.Equal(t, kernel.RoleCustomer, u.Role())
		assert.Zero(t, u.Earnings().Total())
		assert.Zero(t, u.Earnings().Deliveries())
		require.NoError(t, u.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", kernel.RoleCustomer)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Abebe", kernel.Role("superuser"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUser_AccrueDelivery(t *testing.T) {
	t.Run("should credit the agent share of the fee", func(t *testing.T) {
		agent, err := user.NewUser(kernel.NewUUID(), "Chaltu", kernel.RoleDeliveryAgent)
		require.NoError(t, err)

		require.NoError(t, agent.AccrueDelivery(50))
		require.NoError(t, agent.AccrueDelivery(75))

		assert.InDelta(t, 125*user.AgentEarningsShare, agent.Earnings().Total(), 0.001)
		assert.Equal(t, 2, agent.Earnings().Deliveries())
	})

	t.Run("should refuse non-agent roles", func(t *testing.T) {
		customer, err := user.NewUser(kernel.NewUUID(), "Abebe", kernel.RoleCustomer)
		require.NoError(t, err)

		require.ErrorIs(t, customer.AccrueDelivery(50), user.ErrNotDeliveryAgent)
		assert.Zero(t, customer.Earnings().Total())
	})

	t.Run("should reject a negative fee", func(t *testing.T) {
		agent, err := user.NewUser(kernel.NewUUID(), "Chaltu", kernel.RoleDeliveryAgent)
		require.NoError(t, err)

		require.Error(t, agent.AccrueDelivery(-1))
		assert.Zero(t, agent.Earnings().Deliveries())
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("should restore the earnings ledger", func(t *testing.T) {
		u, err := user.RestoreUser(kernel.NewUUID(), "Chaltu", kernel.RoleDeliveryAgent, 320, 8)
		require.NoError(t, err)

		assert.InDelta(t, 320.0, u.Earnings().Total(), 0.001)
		assert.Equal(t, 8, u.Earnings().Deliveries())
	})

	t.Run("should reject negative ledger values", func(t *testing.T) {
		_, err := user.RestoreUser(kernel.NewUUID(), "Chaltu", kernel.RoleDeliveryAgent, -1, 0)
		require.Error(t, err)

		_, err = user.RestoreUser(kernel.NewUUID(), "Chaltu", kernel.RoleDeliveryAgent, 0, -1)
		require.Error(t, err)
	})
}

func TestUser_Validate(t *testing.T) {
	var u user.User
	require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)

	var nilUser *user.User
	require.ErrorIs(t, nilUser.Validate(), user.ErrUserIsNotConstructed)
}
