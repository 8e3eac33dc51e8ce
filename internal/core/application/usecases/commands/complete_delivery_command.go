package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrCompleteDeliveryCommandIsNotConstructed indicates improper command construction.
var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents an agent's final hand-over report,
// optionally carrying a note and a proof-of-delivery reference.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	agentID         kernel.UUID
	note            string
	proofOfDelivery string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command completing the delivery of
// orderID by agentID. Note and proofOfDelivery may be empty.
func NewCompleteDeliveryCommand(
	orderID, agentID kernel.UUID,
	note, proofOfDelivery string,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		note:            note,
		proofOfDelivery: proofOfDelivery,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgentID(agentID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the completing agent's identifier.
func (c CompleteDeliveryCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Note returns the agent's optional hand-over note.
func (c CompleteDeliveryCommand) Note() string {
	return c.note
}

// ProofOfDelivery returns the optional signature artifact reference.
func (c CompleteDeliveryCommand) ProofOfDelivery() string {
	return c.proofOfDelivery
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteDeliveryCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
