package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

// ErrUpdateOrderStatusCommandIsNotConstructed indicates improper command construction.
var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a seller's or administrator's request to
// move an order to a new lifecycle status. The optional message becomes the
// tracking event text.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole kernel.Role
	target    order.Status
	message   string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// The target must be a valid status; whether the transition is allowed from
// the order's current status is decided by the aggregate when handled.
func NewUpdateOrderStatusCommand(
	orderID, actorID kernel.UUID,
	actorRole kernel.Role,
	target order.Status,
	message string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actorID, actorRole),
		cmd.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting principal's identifier.
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the acting principal's role.
func (c UpdateOrderStatusCommand) ActorRole() kernel.Role {
	return c.actorRole
}

// Target returns the requested destination status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// Message returns the optional tracking event text.
func (c UpdateOrderStatusCommand) Message() string {
	return c.message
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actorID kernel.UUID, actorRole kernel.Role) error {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
