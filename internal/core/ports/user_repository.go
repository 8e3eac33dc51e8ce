package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for marketplace actors,
// including the delivery-agent earnings ledger and the admin directory.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// AccrueEarnings credits the agent's share of deliveryFee to the agent's
	// running total and counts one completed delivery, as a single additive
	// update. A missing or non-agent user is skipped silently so payouts are
	// never blocked by historical or deleted actors.
	AccrueEarnings(ctx context.Context, agentID kernel.UUID, deliveryFee float64) error

	// GetAdminIDs lists the identifiers of all administrators,
	// used for issue-report fan-out.
	GetAdminIDs(ctx context.Context) ([]kernel.UUID, error)
}
