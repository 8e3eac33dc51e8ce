package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetAgentEarningsQueryIsNotConstructed = errors.New(
	"GetAgentEarningsQuery must be created via NewGetAgentEarningsQuery constructor",
)

// GetAgentEarningsQuery retrieves a delivery agent's earnings ledger: the
// accumulated share of delivery fees and the number of completed deliveries.
//
// Example:
//
//	query, _ := NewGetAgentEarningsQuery(agentID)
//	handler := NewGetAgentEarningsQueryHandler(db)
//
//	earnings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get earnings: %w", err)
//	}
//	fmt.Printf("%d deliveries, %.2f earned\n", earnings.DeliveriesCompleted, earnings.TotalEarnings)
type GetAgentEarningsQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentEarningsQuery creates a query for agentID's earnings.
func NewGetAgentEarningsQuery(agentID kernel.UUID) (GetAgentEarningsQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentEarningsQuery{}, err
	}

	return GetAgentEarningsQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentEarningsQueryIsNotConstructed)
}

// AgentID returns the queried agent's identifier.
func (q GetAgentEarningsQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetAgentEarningsQueryResponse is an agent's earnings ledger snapshot.
type GetAgentEarningsQueryResponse struct {
	AgentID             kernel.UUID
	TotalEarnings       float64
	DeliveriesCompleted int
}
