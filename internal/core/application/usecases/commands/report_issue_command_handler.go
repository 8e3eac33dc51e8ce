package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// ReportIssueCommandHandler handles issue reports from order participants.
// Any participant of the order (the customer, the assigned agent, or a seller
// with items in it) may report; the issue is appended to the order without
// touching its status, and every administrator is notified after commit.
type ReportIssueCommandHandler struct {
	uowFactory OrderUserUoWFactory
	notifier   ports.NotificationPublisher
}

// NewReportIssueCommandHandler creates a handler for issue reporting operations.
func NewReportIssueCommandHandler(
	uowFactory OrderUserUoWFactory,
	notifier ports.NotificationPublisher,
) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the issue report.
// Returns ErrNotAuthorized when the reporter is not a participant of the order.
func (h ReportIssueCommandHandler) Handle(ctx context.Context, cmd ReportIssueCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !h.isParticipant(aggregate, cmd) {
		return ErrNotAuthorized
	}

	if _, err = aggregate.ReportIssue(cmd.IssueType(), cmd.Description(), cmd.ReporterID()); err != nil {
		return err
	}

	adminIDs, err := uow.UserRepository().GetAdminIDs(ctx)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, adminID := range adminIDs {
		h.notifier.Notify(ctx, adminID, ports.Notification{
			Type:    ports.NotificationIssueReported,
			Title:   "Issue reported",
			Message: fmt.Sprintf("Order %s: %s", aggregate.Number(), cmd.IssueType()),
		})
	}

	return nil
}

func (h ReportIssueCommandHandler) isParticipant(aggregate *order.Order, cmd ReportIssueCommand) bool {
	return aggregate.IsOwnedBy(cmd.ReporterID()) ||
		aggregate.IsAssignedTo(cmd.ReporterID()) ||
		aggregate.HasSeller(cmd.ReporterID())
}
