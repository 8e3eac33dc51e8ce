package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOverdueDeliveriesQueryHandler lists in-transit orders whose estimated
// delivery time lies in the past, oldest estimate first.
type GetOverdueDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueDeliveriesQueryHandler creates a handler for overdue delivery queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueDeliveriesQueryHandler(db *gorm.DB) GetOverdueDeliveriesQueryHandler {
	return GetOverdueDeliveriesQueryHandler{db: db}
}

// Handle executes the query against the current time.
func (h GetOverdueDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueDeliveriesQuery,
) ([]GetOverdueDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			delivery_agent_id,
			estimated_delivery_time
		FROM orders
		WHERE status = ?
		  AND estimated_delivery_time < ?
		ORDER BY estimated_delivery_time
	`, order.InTransit.String(), time.Now().UTC()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueDeliveriesQueryResponse
		var id, customerID string
		var agentID *string

		if err = rows.Scan(&id, &resp.Number, &customerID, &agentID, &resp.EstimatedDeliveryTime); err != nil {
			return nil, err
		}

		if resp.OrderID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromString(customerID); err != nil {
			return nil, err
		}
		if agentID != nil {
			parsed, parseErr := kernel.UUIDFromString(*agentID)
			if parseErr != nil {
				return nil, parseErr
			}
			resp.DeliveryAgentID = &parsed
		}

		overdue = append(overdue, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
