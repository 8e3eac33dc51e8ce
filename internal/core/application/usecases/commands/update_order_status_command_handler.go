package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles seller and administrator driven
// status changes. Administrators may move any order; sellers only orders that
// contain at least one of their items. Both go through the same transition
// table: there is no administrative bypass of the state machine.
//
// Side effects depend on the destination status. Moving to cancelled restores
// the reserved stock; moving to delivered credits the assigned agent's
// earnings. Both happen in the same transaction as the status change.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update operations.
// Requires the full UoWFactory because the side effects span all three aggregates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status update command.
// Returns ErrNotAuthorized when the actor may not touch the order and an error
// wrapping order.ErrInvalidStatusTransition when the state machine forbids the
// move. After commit the customer is notified of the new status.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if !h.isAuthorized(aggregate, cmd) {
		return ErrNotAuthorized
	}

	switch cmd.Target() {
	case order.Cancelled:
		if err = h.cancel(ctx, uow, aggregate, cmd); err != nil {
			return err
		}
	case order.Delivered:
		if err = aggregate.TransitionTo(cmd.Target(), cmd.Message(), nil); err != nil {
			return err
		}
		if agentID := aggregate.DeliveryAgent(); agentID != nil {
			if err = uow.UserRepository().AccrueEarnings(ctx, *agentID, aggregate.DeliveryFee()); err != nil {
				return err
			}
		}
	default:
		if err = aggregate.TransitionTo(cmd.Target(), cmd.Message(), nil); err != nil {
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

// isAuthorized applies the actor rules: administrators act on any order,
// sellers only on orders carrying their items.
func (h UpdateOrderStatusCommandHandler) isAuthorized(aggregate *order.Order, cmd UpdateOrderStatusCommand) bool {
	switch cmd.ActorRole() {
	case kernel.RoleAdmin:
		return true
	case kernel.RoleSeller:
		return aggregate.HasSeller(cmd.ActorID())
	default:
		return false
	}
}

// cancel performs a seller/admin cancellation: the transition table still
// applies, then the aggregate's cancellation path records the reason and any
// refund, and the reserved stock flows back.
func (h UpdateOrderStatusCommandHandler) cancel(
	ctx context.Context, uow UoW, aggregate *order.Order, cmd UpdateOrderStatusCommand,
) error {
	if !aggregate.Status().CanTransitionTo(order.Cancelled) {
		return fmt.Errorf("%w: %s -> %s", order.ErrInvalidStatusTransition, aggregate.Status(), order.Cancelled)
	}

	reason := cmd.Message()
	if reason == "" {
		reason = "Cancelled by " + cmd.ActorRole().String()
	}
	if err := aggregate.Cancel(reason); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		if err := productRepo.RestoreStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

func (h UpdateOrderStatusCommandHandler) notification(aggregate *order.Order) ports.Notification {
	if aggregate.Status() == order.Delivered {
		return ports.Notification{
			Type:    ports.NotificationOrderDelivered,
			Title:   "Order delivered",
			Message: fmt.Sprintf("Order %s has been delivered", aggregate.Number()),
		}
	}
	return ports.Notification{
		Type:    ports.NotificationStatusUpdated,
		Title:   "Order status updated",
		Message: fmt.Sprintf("Order %s is now %s", aggregate.Number(), aggregate.Status()),
	}
}
