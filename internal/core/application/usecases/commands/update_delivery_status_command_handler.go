package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler handles progress reports from assigned
// delivery agents. Only the agent who owns the delivery may report, and the
// reports follow the state machine: dispatched -> in_transit -> delivered.
// A "delivered" report settles the order and credits the agent's earnings in
// the same transaction.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderUserUoWFactory
	notifier   ports.NotificationPublisher
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for agent progress reports.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory OrderUserUoWFactory,
	notifier ports.NotificationPublisher,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the progress report.
// Returns ErrNotAuthorized when the reporting agent is not the assigned agent.
// After commit the customer is notified of the movement.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	if !aggregate.IsAssignedTo(cmd.AgentID()) {
		return ErrNotAuthorized
	}

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Message(), cmd.Location()); err != nil {
		return err
	}

	if aggregate.Status() == order.Delivered {
		if err = uow.UserRepository().AccrueEarnings(ctx, cmd.AgentID(), aggregate.DeliveryFee()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.CustomerID(), h.notification(aggregate))

	return nil
}

func (h UpdateDeliveryStatusCommandHandler) notification(aggregate *order.Order) ports.Notification {
	if aggregate.Status() == order.Delivered {
		return ports.Notification{
			Type:    ports.NotificationOrderDelivered,
			Title:   "Order delivered",
			Message: fmt.Sprintf("Order %s has been delivered", aggregate.Number()),
		}
	}
	return ports.Notification{
		Type:    ports.NotificationStatusUpdated,
		Title:   "Order on the way",
		Message: fmt.Sprintf("Order %s is now %s", aggregate.Number(), aggregate.Status()),
	}
}
