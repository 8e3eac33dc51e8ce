// Package userrepo provides data transfer objects and mapping functions for
// user persistence, including the delivery-agent earnings ledger.
package userrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting marketplace actors.
// The earnings columns are only meaningful for delivery agents and stay zero
// for every other role.
type UserDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string
	Role                string `gorm:"index"`
	TotalEarnings       float64
	DeliveriesCompleted int
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:                  aggregate.ID().Bytes(),
		Name:                aggregate.Name(),
		Role:                aggregate.Role().String(),
		TotalEarnings:       aggregate.Earnings().Total(),
		DeliveriesCompleted: aggregate.Earnings().Deliveries(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := kernel.NewRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, role, dto.TotalEarnings, dto.DeliveriesCompleted)
}
