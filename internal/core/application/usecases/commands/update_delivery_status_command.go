package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

// ErrUpdateDeliveryStatusCommandIsNotConstructed indicates improper command construction.
var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents an assigned agent's progress report.
// Agents speak a two-word vocabulary, "picked_up" and "delivered", which is
// mapped onto the internal state machine at construction time.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	agentID  kernel.UUID
	target   order.Status
	message  string
	location *string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command from an agent's report.
// The report must be "picked_up" or "delivered"; the optional message and
// location are recorded on the resulting tracking event.
func NewUpdateDeliveryStatusCommand(
	orderID, agentID kernel.UUID,
	report string,
	message string,
	location *string,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		message:  message,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgentID(agentID),
		cmd.setTarget(report),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being reported on.
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the reporting agent's identifier.
func (c UpdateDeliveryStatusCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Target returns the internal status the agent's report maps to.
func (c UpdateDeliveryStatusCommand) Target() order.Status {
	return c.target
}

// Message returns the optional tracking event text.
func (c UpdateDeliveryStatusCommand) Message() string {
	return c.message
}

// Location returns the optional free-form location of the report.
func (c UpdateDeliveryStatusCommand) Location() *string {
	return c.location
}

func (c *UpdateDeliveryStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(report string) error {
	target, err := order.StatusFromAgentReport(report)
	if err != nil {
		return err
	}

	c.target = target
	return nil
}
