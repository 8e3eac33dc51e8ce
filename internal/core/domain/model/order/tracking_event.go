package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// TrackingEvent is an immutable, timestamped audit entry in the order's
// tracking log. Events are appended in insertion order and never reordered,
// truncated, or mutated; the log is the canonical audit trail of the order.
type TrackingEvent struct {
	id        kernel.UUID
	status    Status
	message   string
	timestamp time.Time
	location  *string
}

// newTrackingEvent creates a tracking event stamped with the current time.
// Only the Order aggregate appends events, so construction stays internal.
func newTrackingEvent(status Status, message string, location *string) TrackingEvent {
	return TrackingEvent{
		id:        kernel.NewUUID(),
		status:    status,
		message:   message,
		timestamp: time.Now().UTC(),
		location:  location,
	}
}

// RestoreTrackingEvent reconstructs a tracking event from persistence.
func RestoreTrackingEvent(
	id kernel.UUID, status Status, message string, timestamp time.Time, location *string,
) (TrackingEvent, error) {
	if err := id.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	if err := status.Validate(); err != nil {
		return TrackingEvent{}, err
	}

	return TrackingEvent{
		id:        id,
		status:    status,
		message:   message,
		timestamp: timestamp,
		location:  location,
	}, nil
}

// ID returns the event's unique identifier.
func (e TrackingEvent) ID() kernel.UUID {
	return e.id
}

// Status returns the order status the event records.
func (e TrackingEvent) Status() Status {
	return e.status
}

// Message returns the human-readable description of the event.
func (e TrackingEvent) Message() string {
	return e.message
}

// Timestamp returns when the event was recorded.
func (e TrackingEvent) Timestamp() time.Time {
	return e.timestamp
}

// Location returns the optional geographic note attached to the event,
// nil when none was reported.
func (e TrackingEvent) Location() *string {
	return e.location
}
