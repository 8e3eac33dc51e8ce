package product_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, stock, minQty, maxQty int) *product.Product {
	t.Helper()

	p, err := product.NewProduct(kernel.NewUUID(), "Harar coffee 1kg", kernel.NewUUID(), 150, stock, minQty, maxQty)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("should create active product", func(t *testing.T) {
		sellerID := kernel.NewUUID()

		p, err := product.NewProduct(kernel.NewUUID(), "Harar coffee 1kg", sellerID, 150, 10, 1, 5)
		require.NoError(t, err)

		assert.Equal(t, "Harar coffee 1kg", p.Name())
		assert.Equal(t, sellerID, p.SellerID())
		assert.InDelta(t, 150.0, p.Price(), 0.001)
		assert.Equal(t, 10, p.Stock())
		assert.Equal(t, 0, p.SalesCount())
		assert.True(t, p.IsActive())
		require.NoError(t, p.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", kernel.NewUUID(), 150, 10, 1, 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "coffee", kernel.NewUUID(), -1, 10, 1, 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "coffee", kernel.NewUUID(), 150, -1, 1, 5)
		require.Error(t, err)
	})

	t.Run("should reject inverted quantity bounds", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "coffee", kernel.NewUUID(), 150, 10, 5, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestProduct_ValidateReservation(t *testing.T) {
	t.Run("should accept quantity within bounds and stock", func(t *testing.T) {
		p := mustProduct(t, 10, 1, 5)
		require.NoError(t, p.ValidateReservation(3))
	})

	t.Run("should reject inactive products", func(t *testing.T) {
		p := mustProduct(t, 10, 1, 5)
		p.Deactivate()

		err := p.ValidateReservation(1)
		require.ErrorIs(t, err, product.ErrProductInactive)
	})

	t.Run("should enforce per-order bounds", func(t *testing.T) {
		p := mustProduct(t, 10, 2, 4)

		require.ErrorIs(t, p.ValidateReservation(1), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, p.ValidateReservation(5), errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject quantity above stock", func(t *testing.T) {
		p := mustProduct(t, 2, 1, 10)

		err := p.ValidateReservation(3)
		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "Harar coffee 1kg")
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("should move stock and sales count together", func(t *testing.T) {
		p := mustProduct(t, 10, 1, 5)

		require.NoError(t, p.Reserve(3))

		assert.Equal(t, 7, p.Stock())
		assert.Equal(t, 3, p.SalesCount())
	})

	t.Run("should leave counters untouched on failure", func(t *testing.T) {
		p := mustProduct(t, 2, 1, 10)

		require.Error(t, p.Reserve(5))

		assert.Equal(t, 2, p.Stock())
		assert.Equal(t, 0, p.SalesCount())
	})
}

func TestProduct_RestoreStock(t *testing.T) {
	t.Run("should reverse a reservation", func(t *testing.T) {
		p := mustProduct(t, 10, 1, 5)
		require.NoError(t, p.Reserve(3))

		p.RestoreStock(3)

		assert.Equal(t, 10, p.Stock())
		assert.Equal(t, 0, p.SalesCount())
	})

	t.Run("should floor the sales count at zero", func(t *testing.T) {
		p := mustProduct(t, 10, 1, 5)
		require.NoError(t, p.Reserve(2))

		p.RestoreStock(5)

		assert.Equal(t, 15, p.Stock())
		assert.Equal(t, 0, p.SalesCount())
	})

	t.Run("should ignore non-positive quantities", func(t *testing.T) {
		p := mustProduct(t, 10, 1, 5)

		p.RestoreStock(0)
		p.RestoreStock(-3)

		assert.Equal(t, 10, p.Stock())
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("should restore counters and active flag", func(t *testing.T) {
		p, err := product.RestoreProduct(kernel.NewUUID(), "coffee", kernel.NewUUID(), 150, 4, 6, 1, 5, false)
		require.NoError(t, err)

		assert.Equal(t, 4, p.Stock())
		assert.Equal(t, 6, p.SalesCount())
		assert.False(t, p.IsActive())
	})

	t.Run("should reject negative sales count", func(t *testing.T) {
		_, err := product.RestoreProduct(kernel.NewUUID(), "coffee", kernel.NewUUID(), 150, 4, -1, 1, 5, true)
		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	var p product.Product
	require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)

	var nilProduct *product.Product
	require.ErrorIs(t, nilProduct.Validate(), product.ErrProductIsNotConstructed)
}
