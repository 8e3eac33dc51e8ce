// Package product provides the Product aggregate backing the inventory
// ledger. Stock and sales counters move in lockstep: order creation
// decrements stock and increments the sales count per line item, and
// cancellation reverses both.
package product

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrInsufficientStock is returned when a reservation asks for more units
	// than are in stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrProductInactive is returned when a reservation targets a product that
	// is not active in the catalog.
	ErrProductInactive = errors.New("product is not active")
)

// Product is the aggregate root for a catalog product's inventory state.
// The authoritative stock adjustment under concurrency is the persistence
// layer's conditional decrement; this aggregate carries the business rules
// (active flag, quantity bounds) and the in-memory counter bookkeeping.
type Product struct {
	id               kernel.UUID
	name             string
	sellerID         kernel.UUID
	price            float64
	stock            int
	salesCount       int
	minOrderQuantity int
	maxOrderQuantity int
	isActive         bool

	isConstructed bool
}

// NewProduct creates a new active Product with validated counters and bounds.
func NewProduct(
	id kernel.UUID, name string, sellerID kernel.UUID,
	price float64, stock, minOrderQuantity, maxOrderQuantity int,
) (*Product, error) {
	if err := errors.Join(
		id.Validate(),
		sellerID.Validate(),
	); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidError("price")
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	if minOrderQuantity < 1 || maxOrderQuantity < minOrderQuantity {
		return nil, errs.NewValueIsOutOfRangeError("minOrderQuantity", minOrderQuantity, 1, maxOrderQuantity)
	}

	return &Product{
		id:               id,
		name:             name,
		sellerID:         sellerID,
		price:            price,
		stock:            stock,
		minOrderQuantity: minOrderQuantity,
		maxOrderQuantity: maxOrderQuantity,
		isActive:         true,
		isConstructed:    true,
	}, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(
	id kernel.UUID, name string, sellerID kernel.UUID,
	price float64, stock, salesCount, minOrderQuantity, maxOrderQuantity int,
	isActive bool,
) (*Product, error) {
	p, err := NewProduct(id, name, sellerID, price, stock, minOrderQuantity, maxOrderQuantity)
	if err != nil {
		return nil, err
	}
	if salesCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("salesCount",
			fmt.Errorf("%d is negative", salesCount))
	}

	p.salesCount = salesCount
	p.isActive = isActive
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the catalog name.
func (p *Product) Name() string {
	return p.name
}

// SellerID returns the identifier of the seller offering the product.
func (p *Product) SellerID() kernel.UUID {
	return p.sellerID
}

// Price returns the current unit price.
func (p *Product) Price() float64 {
	return p.price
}

// Stock returns the number of units currently available.
func (p *Product) Stock() int {
	return p.stock
}

// SalesCount returns the number of units ever reserved through orders.
func (p *Product) SalesCount() int {
	return p.salesCount
}

// MinOrderQuantity returns the smallest quantity orderable at once.
func (p *Product) MinOrderQuantity() int {
	return p.minOrderQuantity
}

// MaxOrderQuantity returns the largest quantity orderable at once.
func (p *Product) MaxOrderQuantity() int {
	return p.maxOrderQuantity
}

// IsActive reports whether the product is purchasable.
func (p *Product) IsActive() bool {
	return p.isActive
}

// Deactivate removes the product from sale without deleting its counters.
func (p *Product) Deactivate() {
	p.isActive = false
}

// ValidateReservation checks the business rules for reserving quantity units:
// the product must be active, the quantity must respect the per-order bounds,
// and enough stock must be available.
//
// Returns ErrProductInactive, a quantity out-of-range error, or
// ErrInsufficientStock naming the product.
func (p *Product) ValidateReservation(quantity int) error {
	if !p.isActive {
		return fmt.Errorf("%w: %s", ErrProductInactive, p.name)
	}
	if quantity < p.minOrderQuantity || quantity > p.maxOrderQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, p.minOrderQuantity, p.maxOrderQuantity)
	}
	if p.stock < quantity {
		return fmt.Errorf("%w: %s has %d units, %d requested", ErrInsufficientStock, p.name, p.stock, quantity)
	}
	return nil
}

// Reserve applies a validated reservation to the in-memory counters:
// stock down, sales count up, together or not at all.
func (p *Product) Reserve(quantity int) error {
	if err := p.ValidateReservation(quantity); err != nil {
		return err
	}

	p.stock -= quantity
	p.salesCount += quantity
	return nil
}

// RestoreStock reverses a reservation's counter movement. Restoration is
// lenient by design and never fails on counter state; the sales count is
// floored at zero.
func (p *Product) RestoreStock(quantity int) {
	if quantity <= 0 {
		return
	}

	p.stock += quantity
	p.salesCount -= quantity
	if p.salesCount < 0 {
		p.salesCount = 0
	}
}
