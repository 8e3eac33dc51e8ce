package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrReportIssueCommandIsNotConstructed indicates improper command construction.
var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewReportIssueCommand constructor",
)

// ReportIssueCommand represents a participant's structured complaint about an
// order: a short issue type and a free-form description.
type ReportIssueCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	reporterID  kernel.UUID
	issueType   string
	description string

	guard guard.ConstructorGuard
}

// NewReportIssueCommand creates a command recording an issue against orderID.
// Both the issue type and the description are required.
func NewReportIssueCommand(
	orderID, reporterID kernel.UUID,
	issueType, description string,
) (ReportIssueCommand, error) {
	cmd := ReportIssueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReporterID(reporterID),
		cmd.setIssue(issueType, description),
	); err != nil {
		return ReportIssueCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the issue concerns.
func (c ReportIssueCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReporterID returns the reporting participant's identifier.
func (c ReportIssueCommand) ReporterID() kernel.UUID {
	return c.reporterID
}

// IssueType returns the short classification of the issue.
func (c ReportIssueCommand) IssueType() string {
	return c.issueType
}

// Description returns the free-form description of the issue.
func (c ReportIssueCommand) Description() string {
	return c.description
}

func (c *ReportIssueCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReportIssueCommand) setReporterID(reporterID kernel.UUID) error {
	if err := reporterID.Validate(); err != nil {
		return err
	}

	c.reporterID = reporterID
	return nil
}

func (c *ReportIssueCommand) setIssue(issueType, description string) error {
	if issueType == "" {
		return errs.NewValueIsRequiredError("issueType")
	}
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.issueType = issueType
	c.description = description
	return nil
}
