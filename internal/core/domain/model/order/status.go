package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status change is not
// in the current status's allowed successor set.
var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	pending ──┬──> accepted ──> preparing ──> ready_for_pickup ──> dispatched ──> in_transit ──> delivered
//	          │        │             │
//	          │        └─────────────┴──> cancelled
//	          └──> rejected
//
// delivered, cancelled, and rejected are terminal: they have no outgoing
// transitions. The same table applies to every actor, administrators included.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after order creation, awaiting seller review.
	Pending

	// Accepted indicates the seller has accepted the order.
	Accepted

	// Rejected indicates the seller has declined the order. Terminal.
	Rejected

	// Preparing indicates the seller is preparing the order items.
	Preparing

	// ReadyForPickup indicates the order awaits a delivery agent.
	ReadyForPickup

	// Dispatched indicates a delivery agent has taken exclusive ownership.
	Dispatched

	// InTransit indicates the agent has picked up the order and is en route.
	InTransit

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before dispatch. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Accepted:       "accepted",
		Rejected:       "rejected",
		Preparing:      "preparing",
		ReadyForPickup: "ready_for_pickup",
		Dispatched:     "dispatched",
		InTransit:      "in_transit",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getStatusTransitions returns the allowed successor set per status.
// Terminal statuses map to an empty set.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Accepted, Rejected},
		Accepted:       {Preparing, Cancelled},
		Preparing:      {ReadyForPickup, Cancelled},
		ReadyForPickup: {Dispatched},
		Dispatched:     {InTransit},
		InTransit:      {Delivered},
		Delivered:      {},
		Rejected:       {},
		Cancelled:      {},
	}
}

// ParseStatus converts the snake_case string form into a Status.
// Returns an error for unknown values, including "unknown" itself.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// StatusFromAgentReport maps the delivery-agent-facing status vocabulary onto
// the internal state machine: "picked_up" becomes InTransit, "delivered"
// stays Delivered. Any other value is rejected.
func StatusFromAgentReport(s string) (Status, error) {
	switch s {
	case "picked_up":
		return InTransit, nil
	case "delivered":
		return Delivered, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid delivery status report", s))
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, as used in persistence
// and API responses. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	successors, ok := getStatusTransitions()[s]
	return ok && len(successors) == 0
}

// CanTransitionTo reports whether target is in the status's allowed successor set.
func (s Status) CanTransitionTo(target Status) bool {
	for _, successor := range getStatusTransitions()[s] {
		if successor == target {
			return true
		}
	}
	return false
}

// IsCancellable reports whether an order in this status may still be
// cancelled by its owner. Cancellation is only possible before the order
// reaches the pickup stage.
func (s Status) IsCancellable() bool {
	return s == Pending || s == Accepted || s == Preparing
}

// Next validates the transition to target and returns it.
//
// Returns:
//   - (target, nil) when target is in the allowed successor set
//   - (0, error) wrapping ErrInvalidStatusTransition otherwise
func (s Status) Next(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, target)
	}
	return target, nil
}
