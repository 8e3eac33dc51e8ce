package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product/quantity/price/seller tuple within an order.
// The unit price is a snapshot taken at order time: later catalog price
// changes do not affect already placed orders.
type LineItem struct {
	productID kernel.UUID
	sellerID  kernel.UUID
	quantity  int
	unitPrice float64

	isConstructed bool
}

// NewLineItem creates a validated line item.
// Quantity must be at least 1 and the unit price must not be negative.
func NewLineItem(productID, sellerID kernel.UUID, quantity int, unitPrice float64) (LineItem, error) {
	if err := errors.Join(
		productID.Validate(),
		sellerID.Validate(),
	); err != nil {
		return LineItem{}, err
	}

	if quantity < 1 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidError("unitPrice")
	}

	return LineItem{
		productID:     productID,
		sellerID:      sellerID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ProductID returns the ordered product's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// SellerID returns the identifier of the seller offering the product.
func (li LineItem) SellerID() kernel.UUID {
	return li.sellerID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the per-unit price snapshot taken at order time.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Total returns the line total (unit price times quantity).
func (li LineItem) Total() float64 {
	return li.unitPrice * float64(li.quantity)
}
