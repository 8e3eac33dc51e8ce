package kernel

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"marketplace/internal/pkg/errs"
)

// ErrOrderNumberIsNotConstructed indicates that an OrderNumber was not created
// through GenerateOrderNumber or OrderNumberFromString.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via GenerateOrderNumber or OrderNumberFromString",
)

// orderNumberPattern matches the canonical order number format:
// the "EL" prefix, a 6-digit time component, and a 3-digit random component.
var orderNumberPattern = regexp.MustCompile(`^EL\d{9}$`)

// OrderNumber is a value object representing the human-readable identifier of
// an order. The format is EL<6-digit-time><3-digit-random>: the time component
// is derived from the creation timestamp and the random component makes
// collisions between orders placed in the same second unlikely. Uniqueness is
// ultimately guaranteed by the persistence layer's unique index.
//
// OrderNumber is immutable once assigned to an order.
type OrderNumber struct {
	value string
}

// GenerateOrderNumber creates a new OrderNumber from the current time and a
// random 0-999 component.
//
// Example:
//
//	number := kernel.GenerateOrderNumber()
//	fmt.Println(number.String()) // e.g. "EL482951307"
func GenerateOrderNumber() OrderNumber {
	return OrderNumber{
		value: fmt.Sprintf("EL%06d%03d", time.Now().Unix()%1_000_000, rand.Intn(1000)),
	}
}

// OrderNumberFromString reconstructs an OrderNumber from its string
// representation, typically when loading an order from persistence or parsing
// an external request. Returns an error if the string does not match the
// canonical format.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if s == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match EL<6-digit-time><3-digit-random>", s))
	}
	return OrderNumber{value: s}, nil
}

// String returns the order number's canonical string representation.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers for equality.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks that the OrderNumber was properly constructed.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
