package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAgentEarningsQueryHandler reads an agent's earnings ledger from the
// database. Only delivery agents carry a ledger; querying any other user
// surfaces an object-not-found error.
type GetAgentEarningsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentEarningsQueryHandler creates a handler for earnings queries.
// Requires a GORM database connection for query execution.
func NewGetAgentEarningsQueryHandler(db *gorm.DB) GetAgentEarningsQueryHandler {
	return GetAgentEarningsQueryHandler{db: db}
}

// Handle executes the earnings query.
// Returns errs.ErrObjectNotFound when no delivery agent has the queried ID.
func (h GetAgentEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentEarningsQuery,
) (GetAgentEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAgentEarningsQueryResponse{}, err
	}

	resp := GetAgentEarningsQueryResponse{AgentID: query.AgentID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			total_earnings,
			deliveries_completed
		FROM users
		WHERE id = ? AND role = ?
	`, query.AgentID().String(), kernel.RoleDeliveryAgent.String()).Row()

	err := row.Scan(&resp.TotalEarnings, &resp.DeliveriesCompleted)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAgentEarningsQueryResponse{}, errs.NewObjectNotFoundError("agentID", query.AgentID().String())
	}
	if err != nil {
		return GetAgentEarningsQueryResponse{}, err
	}

	return resp, nil
}
