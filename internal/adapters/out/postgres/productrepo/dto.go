// Package productrepo provides data transfer objects and mapping functions
// for product inventory persistence. Its stock reservation is the system's
// concurrency-critical write: an atomic decrement-if-sufficient executed in
// the database, never a read-modify-write in application code.
package productrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
// Stock and sales count move in lockstep through reservations and
// restorations.
type ProductDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string
	SellerID         uuid.UUID `gorm:"type:uuid;index"`
	Price            float64
	Stock            int
	SalesCount       int
	MinOrderQuantity int
	MaxOrderQuantity int
	IsActive         bool
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		SellerID:         aggregate.SellerID().Bytes(),
		Price:            aggregate.Price(),
		Stock:            aggregate.Stock(),
		SalesCount:       aggregate.SalesCount(),
		MinOrderQuantity: aggregate.MinOrderQuantity(),
		MaxOrderQuantity: aggregate.MaxOrderQuantity(),
		IsActive:         aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, dto.Name, sellerID,
		dto.Price, dto.Stock, dto.SalesCount, dto.MinOrderQuantity, dto.MaxOrderQuantity,
		dto.IsActive,
	)
}
