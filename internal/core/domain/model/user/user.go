// Package user provides the User aggregate covering every actor role in the
// marketplace: customers, sellers, delivery agents, and administrators.
// For delivery agents it also carries the earnings ledger.
package user

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrNotDeliveryAgent is returned when earnings are accrued against a user
	// that is not a delivery agent.
	ErrNotDeliveryAgent = errors.New("user is not a delivery agent")
)

// AgentEarningsShare is the fixed fraction of an order's delivery fee
// credited to the delivery agent on successful completion.
const AgentEarningsShare = 0.8

// Earnings is a delivery agent's running compensation: the accrued total and
// the number of completed deliveries. Both are monotonically non-decreasing.
type Earnings struct {
	total      float64
	deliveries int
}

// Total returns the accrued compensation.
func (e Earnings) Total() float64 {
	return e.total
}

// Deliveries returns the number of completed deliveries.
func (e Earnings) Deliveries() int {
	return e.deliveries
}

// User is the aggregate root for a marketplace actor.
type User struct {
	id       kernel.UUID
	name     string
	role     kernel.Role
	earnings Earnings

	isConstructed bool
}

// NewUser creates a new User with a validated identity and role.
func NewUser(id kernel.UUID, name string, role kernel.Role) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &User{
		id:            id,
		name:          name,
		role:          role,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(
	id kernel.UUID, name string, role kernel.Role,
	earningsTotal float64, deliveries int,
) (*User, error) {
	u, err := NewUser(id, name, role)
	if err != nil {
		return nil, err
	}
	if earningsTotal < 0 || deliveries < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("earnings",
			fmt.Errorf("total %v and deliveries %d must not be negative", earningsTotal, deliveries))
	}

	u.earnings = Earnings{total: earningsTotal, deliveries: deliveries}
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's actor role.
func (u *User) Role() kernel.Role {
	return u.role
}

// Earnings returns the delivery agent's running compensation.
// Zero-valued for non-agent roles.
func (u *User) Earnings() Earnings {
	return u.earnings
}

// AccrueDelivery credits the agent's share of deliveryFee to the earnings
// total and counts one completed delivery. Only delivery agents accrue.
func (u *User) AccrueDelivery(deliveryFee float64) error {
	if u.role != kernel.RoleDeliveryAgent {
		return ErrNotDeliveryAgent
	}
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidError("deliveryFee")
	}

	u.earnings.total += deliveryFee * AgentEarningsShare
	u.earnings.deliveries++
	return nil
}
