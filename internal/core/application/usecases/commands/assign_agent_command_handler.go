package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// AssignAgentCommandHandler handles delivery agent self-assignment.
// Assignment is exclusive: the first agent to claim a ready order wins and the
// order moves to dispatched. Exclusivity under concurrency comes from the
// version-guarded order update, so when two agents race for the same order the
// slower writer's version check fails and that agent sees
// order.ErrAgentAlreadyAssigned, exactly as if it had read the order a moment
// later.
//
// Example:
//
//	handler := NewAssignAgentCommandHandler(uowFactory, notifier)
//	cmd, _ := NewAssignAgentCommand(orderID, agentID)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrAgentAlreadyAssigned):
//	    // another agent got there first
//	case errors.Is(err, order.ErrOrderNotReadyForPickup):
//	    // order has not reached ready_for_pickup
//	}
type AssignAgentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationPublisher
}

// NewAssignAgentCommandHandler creates a handler for agent assignment operations.
func NewAssignAgentCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationPublisher,
) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the assignment command.
// After commit the customer is told their order was dispatched.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignAgent(cmd.AgentID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrVersionConflict) {
			return order.ErrAgentAlreadyAssigned
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.CustomerID(), ports.Notification{
		Type:    ports.NotificationStatusUpdated,
		Title:   "Order dispatched",
		Message: fmt.Sprintf("Order %s has been picked up by a delivery agent", aggregate.Number()),
	})

	return nil
}
