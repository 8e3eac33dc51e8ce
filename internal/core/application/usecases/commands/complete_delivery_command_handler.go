package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CompleteDeliveryCommandHandler handles the final hand-over of an order.
// Completion is the agent's "delivered" report enriched with an optional note
// and proof of delivery: the order settles, the delivery timestamp is stamped,
// and the agent's share of the delivery fee is credited, all atomically.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUserUoWFactory
	notifier   ports.NotificationPublisher
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion operations.
func NewCompleteDeliveryCommandHandler(
	uowFactory OrderUserUoWFactory,
	notifier ports.NotificationPublisher,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command.
// Returns ErrNotAuthorized when the caller is not the assigned agent and an
// error wrapping order.ErrInvalidStatusTransition unless the order is in
// transit. After commit the customer is notified of the delivery.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if err = aggregate.TransitionTo(order.Delivered, "Order delivered", nil); err != nil {
		return err
	}

	if cmd.Note() != "" {
		if err = aggregate.SetNote(kernel.RoleDeliveryAgent, cmd.Note()); err != nil {
			return err
		}
	}
	aggregate.RecordProofOfDelivery(cmd.ProofOfDelivery())

	if err = uow.UserRepository().AccrueEarnings(ctx, cmd.AgentID(), aggregate.DeliveryFee()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.CustomerID(), ports.Notification{
		Type:    ports.NotificationOrderDelivered,
		Title:   "Order delivered",
		Message: fmt.Sprintf("Order %s has been delivered", aggregate.Number()),
	})

	return nil
}
