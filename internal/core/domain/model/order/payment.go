package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod is how the customer settles the order.
type PaymentMethod string

// Supported payment methods. Settlement itself happens outside this system;
// cash on delivery is marked paid when the order is delivered.
const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentTelebirr       PaymentMethod = "telebirr"
)

// NewPaymentMethod creates a PaymentMethod from its string representation.
// An empty value defaults to cash on delivery.
func NewPaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentCashOnDelivery, nil
	}

	method := PaymentMethod(s)
	if err := method.Validate(); err != nil {
		return "", err
	}

	return method, nil
}

// Validate checks that the payment method is supported.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentCashOnDelivery, PaymentTelebirr:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a supported payment method", string(m)))
	}
}

// String returns the payment method name.
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus is the settlement state of the order.
type PaymentStatus string

// Payment statuses.
const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// String returns the payment status name.
func (s PaymentStatus) String() string {
	return string(s)
}
