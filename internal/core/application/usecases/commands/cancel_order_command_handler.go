package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler handles customer-initiated order cancellation.
// Cancellation restores the stock reserved at placement and records a refund
// when the order was already paid. The order row itself is never deleted.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, notifier)
//	cmd, _ := NewCancelOrderCommand(orderID, customerID, "changed my mind")
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNotAuthorized):
//	    // another customer's order
//	case errors.Is(err, order.ErrOrderNotCancellable):
//	    // already picked up or terminal
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
	notifier   ports.NotificationPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(
	uowFactory OrderProductUoWFactory,
	notifier ports.NotificationPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
// Verifies ownership, cancels the aggregate, restores stock per line item, and
// persists the order through the version-guarded update, all in one
// transaction. Stock restoration is lenient: a product deleted since the order
// was placed does not block the cancellation.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if !aggregate.IsOwnedBy(cmd.CustomerID()) {
		return ErrNotAuthorized
	}

	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		if err = productRepo.RestoreStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notification := ports.Notification{
		Type:    ports.NotificationOrderCancelled,
		Title:   "Order cancelled",
		Message: fmt.Sprintf("Order %s was cancelled: %s", aggregate.Number(), cmd.Reason()),
	}

	h.notifier.Notify(ctx, aggregate.CustomerID(), notification)
	for _, sellerID := range aggregate.SellerIDs() {
		h.notifier.Notify(ctx, sellerID, notification)
	}

	return nil
}
