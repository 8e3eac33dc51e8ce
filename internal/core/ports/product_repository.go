package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product inventory.
//
// ReserveStock is the authoritative stock adjustment: it must be an atomic
// decrement-if-sufficient against the backing store, never a read-then-write,
// so concurrent orders for the same product cannot oversell. RestoreStock is
// deliberately lenient so cancellations are never blocked by stale product
// references.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// ReserveStock atomically decrements stock and increments the sales count
	// by quantity, succeeding only if the product is active and has at least
	// quantity units. Returns product.ErrInsufficientStock,
	// product.ErrProductInactive, or an object-not-found error.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error

	// RestoreStock reverses a reservation's counter movement. A missing
	// product is skipped, not an error.
	RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error
}
