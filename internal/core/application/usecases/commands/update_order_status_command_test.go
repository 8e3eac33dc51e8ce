package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actorID, kernel.RoleSeller, order.Accepted, "on it")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, actorID, cmd.ActorID())
	assert.Equal(t, kernel.RoleSeller, cmd.ActorRole())
	assert.Equal(t, order.Accepted, cmd.Target())
	assert.Equal(t, "on it", cmd.Message())
}

func TestNewUpdateOrderStatusCommand_UnknownTarget(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.RoleAdmin, order.Unknown, "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateOrderStatusCommand_UnknownRole(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.Role("superuser"), order.Accepted, "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateOrderStatusCommand_NotConstructed(t *testing.T) {
	var cmd commands.UpdateOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
