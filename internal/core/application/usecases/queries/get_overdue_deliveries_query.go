package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOverdueDeliveriesQueryIsNotConstructed = errors.New(
	"GetOverdueDeliveriesQuery must be created via NewGetOverdueDeliveriesQuery constructor",
)

// GetOverdueDeliveriesQuery retrieves in-transit orders whose delivery
// estimate has passed. Used by administrators to monitor delayed deliveries.
//
// Example:
//
//	query := NewGetOverdueDeliveriesQuery()
//	handler := NewGetOverdueDeliveriesQueryHandler(db)
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get overdue deliveries: %w", err)
//	}
//	fmt.Printf("%d deliveries are running late\n", len(overdue))
type GetOverdueDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueDeliveriesQuery creates a query for currently overdue deliveries.
func NewGetOverdueDeliveriesQuery() GetOverdueDeliveriesQuery {
	return GetOverdueDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueDeliveriesQueryIsNotConstructed)
}

// GetOverdueDeliveriesQueryResponse is one delayed delivery.
type GetOverdueDeliveriesQueryResponse struct {
	OrderID               kernel.UUID
	Number                string
	CustomerID            kernel.UUID
	DeliveryAgentID       *kernel.UUID
	EstimatedDeliveryTime time.Time
}
