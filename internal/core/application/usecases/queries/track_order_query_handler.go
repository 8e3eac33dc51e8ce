package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler serves the tracking read model straight from the
// database, bypassing the aggregate. The tracking history is ordered by the
// append sequence, which matches insertion order.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns errs.ErrObjectNotFound when no order carries the queried number.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var resp TrackOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			status,
			total_amount,
			delivery_fee,
			final_amount,
			estimated_delivery_time,
			actual_delivery_time,
			delivery_agent_id
		FROM orders
		WHERE number = ?
	`, query.Number().String()).Row()

	err := row.Scan(
		&resp.Number,
		&resp.Status,
		&resp.TotalAmount,
		&resp.DeliveryFee,
		&resp.FinalAmount,
		&resp.EstimatedDeliveryTime,
		&resp.ActualDeliveryTime,
		&resp.DeliveryAgentID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("number", query.Number().String())
	}
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			te.status,
			te.message,
			te.location,
			te.timestamp
		FROM tracking_events te
		JOIN orders o ON o.id = te.order_id
		WHERE o.number = ?
		ORDER BY te.sequence
	`, query.Number().String()).Rows()
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackOrderEventResponse
		if err = rows.Scan(&event.Status, &event.Message, &event.Location, &event.Timestamp); err != nil {
			return TrackOrderQueryResponse{}, err
		}
		resp.Events = append(resp.Events, event)
	}
	if err = rows.Err(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return resp, nil
}
