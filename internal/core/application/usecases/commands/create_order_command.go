package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrNoItems = errors.New("order must contain at least one item")
)

// CreateOrderItem is one requested product/quantity pair. Price and seller
// are snapshotted from the catalog when the command is handled.
type CreateOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a customer's request to place a new order.
// Encapsulates the requested items, the delivery address, and payment intent.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, items,
//	    "12 Feres Megala", kernel.CityHarar, nil, nil, order.PaymentCashOnDelivery, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	items         []CreateOrderItem
	street        string
	city          kernel.City
	latitude      *float64
	longitude     *float64
	paymentMethod order.PaymentMethod
	urgent        bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identities, the destination city, the payment method, and that
// every requested item names a distinct product with a positive quantity.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	items []CreateOrderItem,
	street string,
	city kernel.City,
	latitude, longitude *float64,
	paymentMethod order.PaymentMethod,
	urgent bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		latitude:  latitude,
		longitude: longitude,
		urgent:    urgent,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setStreet(street),
		cmd.setCity(city),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested product/quantity pairs.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}

// Street returns the delivery street line.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// City returns the delivery destination city.
func (c CreateOrderCommand) City() kernel.City {
	return c.city
}

// Latitude returns the optional delivery latitude.
func (c CreateOrderCommand) Latitude() *float64 {
	return c.latitude
}

// Longitude returns the optional delivery longitude.
func (c CreateOrderCommand) Longitude() *float64 {
	return c.longitude
}

// PaymentMethod returns the requested payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Urgent reports whether the customer requested urgent delivery.
func (c CreateOrderCommand) Urgent() bool {
	return c.urgent
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity < 1 {
			return errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, "unbounded")
		}
		if _, ok := seen[item.ProductID.String()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("product %s is listed more than once", item.ProductID))
		}
		seen[item.ProductID.String()] = struct{}{}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}

	c.street = street
	return nil
}

func (c *CreateOrderCommand) setCity(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return err
	}

	c.city = city
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
