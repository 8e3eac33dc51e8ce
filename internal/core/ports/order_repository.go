package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is version-guarded: the write succeeds only if the stored version
// still matches the version the aggregate was loaded with, so two concurrent
// writers on the same order cannot interleave or lose tracking events. A lost
// race surfaces as errs.ErrVersionConflict.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using an atomic
	// conditional write on the aggregate's version.
	// Returns errs.ErrVersionConflict when a concurrent writer got there first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its human-readable order number.
	GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetOverdueInTransit retrieves orders still in transit whose estimated
	// delivery time lies before asOf. Used by the delivery reminder job.
	GetOverdueInTransit(ctx context.Context, asOf time.Time) ([]*order.Order, error)
}
