package productrepo

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ReserveStock atomically decrements stock and increments the sales count by
// quantity. The guard conditions live in the WHERE clause, so two concurrent
// reservations can never drive stock negative: the database serializes the
// row updates and the losing statement affects zero rows.
//
// When no row is affected, the product is re-read to classify the failure as
// not-found, inactive, or insufficient stock.
func (r *GormProductRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE products
		SET stock = stock - ?, sales_count = sales_count + ?
		WHERE id = ? AND is_active AND stock >= ?
	`, quantity, quantity, id.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	aggregate, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if !aggregate.IsActive() {
		return fmt.Errorf("%w: %s", product.ErrProductInactive, aggregate.Name())
	}
	return fmt.Errorf("%w: %s has %d units, %d requested",
		product.ErrInsufficientStock, aggregate.Name(), aggregate.Stock(), quantity)
}

// RestoreStock reverses a reservation's counter movement. Restoration is
// lenient: a product that no longer exists is skipped, and the sales count is
// floored at zero.
func (r *GormProductRepository) RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return nil
	}

	return r.db.WithContext(ctx).Exec(`
		UPDATE products
		SET stock = stock + ?, sales_count = GREATEST(sales_count - ?, 0)
		WHERE id = ?
	`, quantity, quantity, id.Bytes()).Error
}
