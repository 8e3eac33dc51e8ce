package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Issue is a structured problem report attached to an order. Reporting an
// issue never alters the order's status; issues are resolved out of band and
// flipped to closed by administrators.
type Issue struct {
	id          kernel.UUID
	issueType   string
	description string
	reportedBy  kernel.UUID
	reportedAt  time.Time
	open        bool
}

// newIssue creates an open issue stamped with the current time.
func newIssue(issueType, description string, reportedBy kernel.UUID) (Issue, error) {
	if issueType == "" {
		return Issue{}, errs.NewValueIsRequiredError("issueType")
	}
	if description == "" {
		return Issue{}, errs.NewValueIsRequiredError("description")
	}
	if err := reportedBy.Validate(); err != nil {
		return Issue{}, err
	}

	return Issue{
		id:          kernel.NewUUID(),
		issueType:   issueType,
		description: description,
		reportedBy:  reportedBy,
		reportedAt:  time.Now().UTC(),
		open:        true,
	}, nil
}

// RestoreIssue reconstructs an issue from persistence.
func RestoreIssue(
	id kernel.UUID, issueType, description string, reportedBy kernel.UUID,
	reportedAt time.Time, open bool,
) (Issue, error) {
	if err := id.Validate(); err != nil {
		return Issue{}, err
	}
	if err := reportedBy.Validate(); err != nil {
		return Issue{}, err
	}

	return Issue{
		id:          id,
		issueType:   issueType,
		description: description,
		reportedBy:  reportedBy,
		reportedAt:  reportedAt,
		open:        open,
	}, nil
}

// ID returns the issue's unique identifier.
func (i Issue) ID() kernel.UUID {
	return i.id
}

// Type returns the issue category supplied by the reporter.
func (i Issue) Type() string {
	return i.issueType
}

// Description returns the reporter's free-form description.
func (i Issue) Description() string {
	return i.description
}

// ReportedBy returns the identifier of the reporting actor.
func (i Issue) ReportedBy() kernel.UUID {
	return i.reportedBy
}

// ReportedAt returns when the issue was reported.
func (i Issue) ReportedAt() time.Time {
	return i.reportedAt
}

// Open reports whether the issue is still unresolved.
func (i Issue) Open() bool {
	return i.open
}
