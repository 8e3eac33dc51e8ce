package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery destination of an order. The street is required,
// the city must belong to the serviced set, and the geographic coordinates
// are optional.
type Address struct {
	street    string
	city      kernel.City
	latitude  *float64
	longitude *float64

	isConstructed bool
}

// NewAddress creates a validated delivery address.
func NewAddress(street string, city kernel.City, latitude, longitude *float64) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if err := city.Validate(); err != nil {
		return Address{}, err
	}

	return Address{
		street:        street,
		city:          city,
		latitude:      latitude,
		longitude:     longitude,
		isConstructed: true,
	}, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the destination city.
func (a Address) City() kernel.City {
	return a.city
}

// Latitude returns the optional latitude, nil when not provided.
func (a Address) Latitude() *float64 {
	return a.latitude
}

// Longitude returns the optional longitude, nil when not provided.
func (a Address) Longitude() *float64 {
	return a.longitude
}
