package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is a value object representing the role of an actor interacting with
// the order workflow. Authorization decisions in the application layer are
// made against the acting principal's role.
type Role string

// Actor roles.
const (
	RoleCustomer      Role = "customer"
	RoleSeller        Role = "seller"
	RoleDeliveryAgent Role = "delivery_agent"
	RoleAdmin         Role = "admin"
)

func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleCustomer:      {},
		RoleSeller:        {},
		RoleDeliveryAgent: {},
		RoleAdmin:         {},
	}
}

// NewRole creates a Role from its string representation.
// Returns an error if the value is not a known role.
func NewRole(s string) (Role, error) {
	if s == "" {
		return "", errs.NewValueIsRequiredError("role")
	}

	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}

	return role, nil
}

// Validate checks that the role belongs to the known set.
func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
