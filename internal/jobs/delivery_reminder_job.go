package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DeliveryReminderJob watches for in-transit orders whose delivery estimate
// has passed and reminds the customer and the assigned agent. Runs every
// fifteen minutes.
type DeliveryReminderJob struct {
	uowFactory ports.UnitOfWorkFactory
	notifier   ports.NotificationPublisher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDeliveryReminderJob creates a new job for overdue delivery reminders.
func NewDeliveryReminderJob(
	uowFactory ports.UnitOfWorkFactory,
	notifier ports.NotificationPublisher,
	logger *slog.Logger,
) *DeliveryReminderJob {
	return &DeliveryReminderJob{
		uowFactory: uowFactory,
		notifier:   notifier,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "delivery_reminder_job"),
	}
}

// Start begins the reminder job on its fifteen-minute schedule.
func (j *DeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 */15 * * * *", func() {
		ctx := context.Background()
		if err := j.remind(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started (running every 15 minutes)")
	return nil
}

// Stop stops the reminder job.
func (j *DeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}

// remind loads the currently overdue deliveries and notifies the customer and
// the assigned agent of each. Reads run outside a transaction; overdue state
// is advisory and slightly stale data is acceptable.
func (j *DeliveryReminderJob) remind(ctx context.Context) error {
	uow := j.uowFactory.Create()

	overdue, err := uow.OrderRepository().GetOverdueInTransit(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	for _, aggregate := range overdue {
		notification := ports.Notification{
			Type:    ports.NotificationOrderOverdue,
			Title:   "Delivery running late",
			Message: fmt.Sprintf("Order %s has passed its estimated delivery time", aggregate.Number()),
		}

		j.notifier.Notify(ctx, aggregate.CustomerID(), notification)
		if agentID := aggregate.DeliveryAgent(); agentID != nil {
			j.notifier.Notify(ctx, *agentID, notification)
		}
	}

	if len(overdue) > 0 {
		j.logger.InfoContext(ctx, "Overdue delivery reminders sent", "count", len(overdue))
	}

	return nil
}
