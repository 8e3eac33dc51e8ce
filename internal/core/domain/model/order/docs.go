// Package order provides domain entities and business logic for marketplace
// order management. It implements the Order aggregate root with lifecycle
// management, state transitions, and the append-only tracking log.
//
// The package includes:
//   - Order: The aggregate root managing identity, line items, totals, the
//     delivery address, agent assignment, tracking history, and issues
//   - Status: A state machine that enforces valid order status transitions
//   - LineItem, Address, TrackingEvent, Issue: supporting value objects
//
// Key business rules:
//   - finalAmount always equals totalAmount + deliveryFee
//   - The order number is immutable once assigned
//   - The tracking log only grows; every status transition appends exactly one event
//   - A delivery agent is assigned at most once, only from ready_for_pickup
//   - delivered, cancelled, and rejected are terminal statuses
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
