package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNotCancellable is returned when cancellation is requested after the
	// order has moved past the preparing stage.
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")

	// ErrAgentAlreadyAssigned is returned when an agent tries to take an order
	// that already has a delivery agent.
	ErrAgentAlreadyAssigned = errors.New("order already has a delivery agent assigned")

	// ErrOrderNotReadyForPickup is returned when agent assignment is attempted
	// before the order reaches ready_for_pickup.
	ErrOrderNotReadyForPickup = errors.New("order is not ready for pickup")
)

// Standard delivery estimates applied at order creation.
const (
	standardDeliveryWindow = 48 * time.Hour
	urgentDeliveryWindow   = 24 * time.Hour
)

// Order is the aggregate root for a marketplace order. It owns the line
// items, the computed amounts, the delivery address, the agent assignment,
// and the append-only tracking log, and it enforces the status state machine.
//
// Order maintains these invariants:
//   - finalAmount == totalAmount + deliveryFee after every mutation
//   - the order number never changes once assigned
//   - the tracking log only grows; every status transition appends exactly one event
//   - the delivery agent is set at most once
//
// Orders are never hard-deleted; cancellation and rejection are terminal
// statuses, not removals.
type Order struct {
	id          kernel.UUID
	number      kernel.OrderNumber
	customerID  kernel.UUID
	items       []LineItem
	totalAmount float64
	deliveryFee float64
	finalAmount float64

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	address         Address
	deliveryAgentID *kernel.UUID

	estimatedDeliveryTime *time.Time
	actualDeliveryTime    *time.Time

	status   Status
	tracking []TrackingEvent
	issues   []Issue
	notes    map[kernel.Role]string

	cancellationReason string
	refundAmount       *float64
	proofOfDelivery    *string
	urgent             bool

	// version backs the persistence layer's optimistic concurrency guard.
	version int

	isConstructed bool
}

// NewOrder creates a new Order in pending status with a price snapshot taken
// from the supplied line items. The delivery fee is derived from the
// destination city, the final amount from total + fee, and the first tracking
// event is appended immediately.
func NewOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	customerID kernel.UUID,
	items []LineItem,
	address Address,
	paymentMethod PaymentMethod,
	urgent bool,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		customerID.Validate(),
		address.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	window := standardDeliveryWindow
	if urgent {
		window = urgentDeliveryWindow
	}
	estimated := time.Now().UTC().Add(window)

	o := &Order{
		id:                    id,
		number:                number,
		customerID:            customerID,
		items:                 items,
		paymentMethod:         paymentMethod,
		paymentStatus:         PaymentPending,
		address:               address,
		estimatedDeliveryTime: &estimated,
		status:                Pending,
		notes:                 make(map[kernel.Role]string),
		urgent:                urgent,
		isConstructed:         true,
	}
	o.recomputeAmounts()
	o.appendTracking(Pending, "Order pending", nil)

	return o, nil
}

// RestoreOrderParams carries the persisted state needed to reconstruct an
// Order aggregate. All fields map one-to-one onto the aggregate.
type RestoreOrderParams struct {
	ID                    kernel.UUID
	Number                kernel.OrderNumber
	CustomerID            kernel.UUID
	Items                 []LineItem
	PaymentMethod         PaymentMethod
	PaymentStatus         PaymentStatus
	Address               Address
	DeliveryAgentID       *kernel.UUID
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	Status                Status
	Tracking              []TrackingEvent
	Issues                []Issue
	Notes                 map[kernel.Role]string
	CancellationReason    string
	RefundAmount          *float64
	ProofOfDelivery       *string
	Urgent                bool
	Version               int
}

// RestoreOrder reconstructs an Order from persistence. Amounts are recomputed
// from the line items and city fee so the total invariant holds regardless of
// what was stored.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.Number.Validate(),
		p.CustomerID.Validate(),
		p.Address.Validate(),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(p.Items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range p.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if p.DeliveryAgentID != nil {
		if err := p.DeliveryAgentID.Validate(); err != nil {
			return nil, err
		}
	}
	if p.Version < 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	notes := p.Notes
	if notes == nil {
		notes = make(map[kernel.Role]string)
	}

	o := &Order{
		id:                    p.ID,
		number:                p.Number,
		customerID:            p.CustomerID,
		items:                 p.Items,
		paymentMethod:         p.PaymentMethod,
		paymentStatus:         p.PaymentStatus,
		address:               p.Address,
		deliveryAgentID:       p.DeliveryAgentID,
		estimatedDeliveryTime: p.EstimatedDeliveryTime,
		actualDeliveryTime:    p.ActualDeliveryTime,
		status:                p.Status,
		tracking:              p.Tracking,
		issues:                p.Issues,
		notes:                 notes,
		cancellationReason:    p.CancellationReason,
		refundAmount:          p.RefundAmount,
		proofOfDelivery:       p.ProofOfDelivery,
		urgent:                p.Urgent,
		version:               p.Version,
		isConstructed:         true,
	}
	o.recomputeAmounts()

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the ordered line items.
func (o *Order) Items() []LineItem {
	return o.items
}

// TotalAmount returns the sum of all line totals.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// DeliveryFee returns the city-tiered flat delivery fee.
func (o *Order) DeliveryFee() float64 {
	return o.deliveryFee
}

// FinalAmount returns totalAmount + deliveryFee.
func (o *Order) FinalAmount() float64 {
	return o.finalAmount
}

// PaymentMethod returns how the customer settles the order.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Address returns the delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// DeliveryAgent returns the assigned delivery agent's identifier,
// nil while unassigned.
func (o *Order) DeliveryAgent() *kernel.UUID {
	return o.deliveryAgentID
}

// EstimatedDeliveryTime returns the delivery estimate set at creation.
func (o *Order) EstimatedDeliveryTime() *time.Time {
	return o.estimatedDeliveryTime
}

// ActualDeliveryTime returns when the order was delivered, nil until then.
func (o *Order) ActualDeliveryTime() *time.Time {
	return o.actualDeliveryTime
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Tracking returns the append-only tracking log in insertion order.
func (o *Order) Tracking() []TrackingEvent {
	return o.tracking
}

// Issues returns the issues reported against the order.
func (o *Order) Issues() []Issue {
	return o.issues
}

// Notes returns a copy of the per-role notes.
func (o *Order) Notes() map[kernel.Role]string {
	notes := make(map[kernel.Role]string, len(o.notes))
	for role, note := range o.notes {
		notes[role] = note
	}
	return notes
}

// CancellationReason returns the reason recorded at cancellation,
// empty for non-cancelled orders.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// RefundAmount returns the refund owed to the customer, nil when none.
func (o *Order) RefundAmount() *float64 {
	return o.refundAmount
}

// ProofOfDelivery returns the signature artifact reference recorded at
// completion, nil when none was captured.
func (o *Order) ProofOfDelivery() *string {
	return o.proofOfDelivery
}

// Urgent reports whether the customer flagged the order as urgent.
func (o *Order) Urgent() bool {
	return o.urgent
}

// Version returns the persisted optimistic-concurrency version the aggregate
// was loaded with. New orders start at version 0.
func (o *Order) Version() int {
	return o.version
}

// IsOwnedBy reports whether customerID is the order's owning customer.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// IsAssignedTo reports whether agentID is the order's assigned delivery agent.
func (o *Order) IsAssignedTo(agentID kernel.UUID) bool {
	return o.deliveryAgentID != nil && o.deliveryAgentID.IsEqual(agentID)
}

// HasSeller reports whether sellerID sells at least one of the order's line items.
func (o *Order) HasSeller(sellerID kernel.UUID) bool {
	for _, item := range o.items {
		if item.SellerID().IsEqual(sellerID) {
			return true
		}
	}
	return false
}

// SellerIDs returns the distinct sellers across the order's line items.
func (o *Order) SellerIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(o.items))
	sellers := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		if _, ok := seen[item.SellerID()]; ok {
			continue
		}
		seen[item.SellerID()] = struct{}{}
		sellers = append(sellers, item.SellerID())
	}
	return sellers
}

// TransitionTo moves the order to target if the state machine allows it,
// appending exactly one tracking event. An empty message defaults to
// "Order <status>". The optional location is recorded on the tracking event.
//
// Transitioning to Delivered additionally stamps the actual delivery time and
// marks the order paid (cash-on-delivery settlement).
//
// Returns an error wrapping ErrInvalidStatusTransition when target is not in
// the current status's successor set; no tracking event is appended then.
func (o *Order) TransitionTo(target Status, message string, location *string) error {
	newStatus, err := o.status.Next(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if message == "" {
		message = "Order " + newStatus.String()
	}
	o.appendTracking(newStatus, message, location)

	if newStatus == Delivered {
		now := time.Now().UTC()
		o.actualDeliveryTime = &now
		o.paymentStatus = PaymentPaid
	}

	return nil
}

// Cancel cancels the order with the supplied reason. Cancellation is only
// possible while the order is pending, accepted, or preparing; afterwards it
// fails with ErrOrderNotCancellable. If the order was already paid, the final
// amount is recorded as the refund owed.
//
// Cancellation from pending bypasses the seller-driven successor table, so
// the status and tracking event are applied directly here.
func (o *Order) Cancel(reason string) error {
	if !o.status.IsCancellable() {
		return ErrOrderNotCancellable
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	if o.paymentStatus == PaymentPaid {
		refund := o.finalAmount
		o.refundAmount = &refund
	}

	o.cancellationReason = reason
	o.status = Cancelled
	o.appendTracking(Cancelled, "Order cancelled", nil)

	return nil
}

// AssignAgent grants agentID exclusive ownership of the delivery and moves
// the order to dispatched.
//
// Fails with ErrAgentAlreadyAssigned when an agent is already set and with
// ErrOrderNotReadyForPickup unless the order is ready_for_pickup. The
// persistence layer's version guard turns a lost assignment race into the
// same ErrAgentAlreadyAssigned outcome for the slower agent.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if o.deliveryAgentID != nil {
		return ErrAgentAlreadyAssigned
	}
	if o.status != ReadyForPickup {
		return ErrOrderNotReadyForPickup
	}

	o.deliveryAgentID = &agentID
	return o.TransitionTo(Dispatched, "", nil)
}

// ReportIssue appends a structured issue report to the order without touching
// its status, and returns the created issue.
func (o *Order) ReportIssue(issueType, description string, reportedBy kernel.UUID) (Issue, error) {
	issue, err := newIssue(issueType, description, reportedBy)
	if err != nil {
		return Issue{}, err
	}

	o.issues = append(o.issues, issue)
	return issue, nil
}

// SetNote records a free-form note for the given actor role, replacing any
// previous note from that role.
func (o *Order) SetNote(role kernel.Role, note string) error {
	if err := role.Validate(); err != nil {
		return err
	}

	o.notes[role] = note
	return nil
}

// RecordProofOfDelivery attaches a signature artifact reference captured at
// hand-over.
func (o *Order) RecordProofOfDelivery(ref string) {
	if ref == "" {
		return
	}
	o.proofOfDelivery = &ref
}

func (o *Order) appendTracking(status Status, message string, location *string) {
	o.tracking = append(o.tracking, newTrackingEvent(status, message, location))
}

// recomputeAmounts re-derives totalAmount, deliveryFee, and finalAmount from
// the line items and destination city.
func (o *Order) recomputeAmounts() {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}
	o.totalAmount = total
	o.deliveryFee = o.address.City().DeliveryFee()
	o.finalAmount = o.totalAmount + o.deliveryFee
}
