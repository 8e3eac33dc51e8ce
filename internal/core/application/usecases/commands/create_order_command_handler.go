package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Snapshots each product's price and seller into line items, reserves stock
// through the repository's atomic conditional decrement, and creates the order
// in "pending" status. Because every reservation runs inside one transaction,
// a batch that cannot be fully satisfied reserves nothing.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, items,
//	    "12 Feres Megala", kernel.CityHarar, nil, nil, order.PaymentCashOnDelivery, false)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending seller review
type CreateOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
	notifier   ports.NotificationPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderProductUoWFactory for transactional persistence and a
// NotificationPublisher for the post-commit customer and seller notifications.
func NewCreateOrderCommandHandler(
	uowFactory OrderProductUoWFactory,
	notifier ports.NotificationPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order placement command and returns the created order.
// Validates and reserves stock per requested item, derives the delivery fee
// from the destination city, and persists the aggregate. After commit it
// notifies the customer and every distinct seller involved in the order.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	items := make([]order.LineItem, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		product, err := productRepo.Get(ctx, requested.ProductID)
		if err != nil {
			return nil, err
		}

		if err = product.ValidateReservation(requested.Quantity); err != nil {
			return nil, err
		}

		item, err := order.NewLineItem(product.ID(), product.SellerID(), requested.Quantity, product.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if err = productRepo.ReserveStock(ctx, product.ID(), requested.Quantity); err != nil {
			return nil, err
		}
	}

	address, err := order.NewAddress(cmd.Street(), cmd.City(), cmd.Latitude(), cmd.Longitude())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		kernel.GenerateOrderNumber(),
		cmd.CustomerID(),
		items,
		address,
		cmd.PaymentMethod(),
		cmd.Urgent(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, aggregate.CustomerID(), ports.Notification{
		Type:    ports.NotificationOrderCreated,
		Title:   "Order placed",
		Message: fmt.Sprintf("Your order %s has been placed", aggregate.Number()),
	})
	for _, sellerID := range aggregate.SellerIDs() {
		h.notifier.Notify(ctx, sellerID, ports.Notification{
			Type:    ports.NotificationOrderCreated,
			Title:   "New order received",
			Message: fmt.Sprintf("Order %s contains items from your catalog", aggregate.Number()),
		})
	}

	return aggregate, nil
}
