package userrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user to the database.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AccrueEarnings credits the agent's share of deliveryFee and counts one
// completed delivery as a single additive update. The role filter makes the
// write a no-op for missing or non-agent users: earnings accrual never blocks
// a delivery from completing.
func (r *GormUserRepository) AccrueEarnings(ctx context.Context, agentID kernel.UUID, deliveryFee float64) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidError("deliveryFee")
	}

	return r.db.WithContext(ctx).Exec(`
		UPDATE users
		SET total_earnings = total_earnings + ?,
		    deliveries_completed = deliveries_completed + 1
		WHERE id = ? AND role = ?
	`, deliveryFee*user.AgentEarningsShare, agentID.Bytes(), kernel.RoleDeliveryAgent.String()).Error
}

// GetAdminIDs lists the identifiers of all administrators.
func (r *GormUserRepository) GetAdminIDs(ctx context.Context) ([]kernel.UUID, error) {
	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Select("id").
		Find(&dtos, "role = ?", kernel.RoleAdmin.String()).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}
