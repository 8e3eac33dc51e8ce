package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// Notification event types emitted by the workflow.
const (
	NotificationOrderCreated   = "order_created"
	NotificationOrderCancelled = "order_cancelled"
	NotificationStatusUpdated  = "order_status_updated"
	NotificationOrderDelivered = "order_delivered"
	NotificationIssueReported  = "issue_reported"
	NotificationOrderOverdue   = "order_overdue"
)

// Notification is the payload delivered to an interested party.
type Notification struct {
	Type    string
	Title   string
	Message string
}

// NotificationPublisher asynchronously informs a user about a workflow event.
// Delivery is fire-and-forget: implementations absorb and log failures, and
// callers never treat notification as part of the transaction.
type NotificationPublisher interface {
	Notify(ctx context.Context, recipientID kernel.UUID, notification Notification)
}
