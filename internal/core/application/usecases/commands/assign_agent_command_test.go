package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignAgentCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	agentID := kernel.NewUUID()

	cmd, err := commands.NewAssignAgentCommand(orderID, agentID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, agentID, cmd.AgentID())
}

func TestNewAssignAgentCommand_InvalidAgentID(t *testing.T) {
	_, err := commands.NewAssignAgentCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAssignAgentCommand_NotConstructed(t *testing.T) {
	var cmd commands.AssignAgentCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAssignAgentCommandIsNotConstructed)
}
