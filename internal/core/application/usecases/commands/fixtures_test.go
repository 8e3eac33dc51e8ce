package commands_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// newPendingOrder builds a freshly placed single-item order for handler tests.
func newPendingOrder(t *testing.T, customerID, sellerID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), sellerID, 2, 150)
	require.NoError(t, err)

	address, err := order.NewAddress("12 Feres Megala", kernel.CityHarar, nil, nil)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.GenerateOrderNumber(), customerID,
		[]order.LineItem{item}, address, order.PaymentCashOnDelivery, false,
	)
	require.NoError(t, err)

	return aggregate
}

// advanceTo walks the order through the given statuses in sequence.
func advanceTo(t *testing.T, aggregate *order.Order, statuses ...order.Status) {
	t.Helper()

	for _, status := range statuses {
		require.NoError(t, aggregate.TransitionTo(status, "", nil))
	}
}

// newReadyOrder builds an order waiting for a delivery agent.
func newReadyOrder(t *testing.T, customerID, sellerID kernel.UUID) *order.Order {
	t.Helper()

	aggregate := newPendingOrder(t, customerID, sellerID)
	advanceTo(t, aggregate, order.Accepted, order.Preparing, order.ReadyForPickup)
	return aggregate
}

// newInTransitOrder builds an order owned by agentID and on its way.
func newInTransitOrder(t *testing.T, customerID, sellerID, agentID kernel.UUID) *order.Order {
	t.Helper()

	aggregate := newReadyOrder(t, customerID, sellerID)
	require.NoError(t, aggregate.AssignAgent(agentID))
	advanceTo(t, aggregate, order.InTransit)
	return aggregate
}
