package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// CartItem is one product/quantity pair in a customer's cart.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is a customer's current shopping cart. Carts are transient staging
// state outside the order workflow; prices and stock are only checked when
// the cart is turned into an order.
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartStore is a keyed read/write store for customer carts.
// Implementations must be safe for concurrent per-key access.
type CartStore interface {
	// Get returns the customer's cart, or an empty cart when none exists.
	Get(ctx context.Context, customerID kernel.UUID) (Cart, error)

	// Put replaces the customer's cart.
	Put(ctx context.Context, customerID kernel.UUID, cart Cart) error
}
