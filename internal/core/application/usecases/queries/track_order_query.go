package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves the public tracking view of an order by its
// human-readable order number. This is the read model behind the customer
// facing tracking page: current status, amounts, delivery estimate, and the
// full tracking history in chronological order.
//
// Example:
//
//	number, _ := kernel.OrderNumberFromString("EL482951307")
//	query, _ := NewTrackOrderQuery(number)
//	handler := NewTrackOrderQueryHandler(db)
//
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", tracking.Number, tracking.Status)
type TrackOrderQuery struct {
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for the order identified by number.
func NewTrackOrderQuery(number kernel.OrderNumber) (TrackOrderQuery, error) {
	if err := number.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// Number returns the queried order number.
func (q TrackOrderQuery) Number() kernel.OrderNumber {
	return q.number
}

// TrackOrderQueryResponse is the tracking view of one order.
type TrackOrderQueryResponse struct {
	Number                string
	Status                string
	TotalAmount           float64
	DeliveryFee           float64
	FinalAmount           float64
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	DeliveryAgentID       *string
	Events                []TrackOrderEventResponse
}

// TrackOrderEventResponse is one entry of the tracking history.
type TrackOrderEventResponse struct {
	Status    string
	Message   string
	Location  *string
	Timestamp time.Time
}
