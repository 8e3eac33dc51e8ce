package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []commands.CreateOrderItem {
	return []commands.CreateOrderItem{
		{ProductID: kernel.NewUUID(), Quantity: 2},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	items := validItems()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, items,
		"12 Feres Megala", kernel.CityHarar, nil, nil,
		order.PaymentCashOnDelivery, true,
	)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, items, cmd.Items())
	assert.Equal(t, "12 Feres Megala", cmd.Street())
	assert.Equal(t, kernel.CityHarar, cmd.City())
	assert.True(t, cmd.Urgent())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		"12 Feres Megala", kernel.CityHarar, nil, nil,
		order.PaymentCashOnDelivery, false,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoItems)
}

func TestNewCreateOrderCommand_ZeroQuantity(t *testing.T) {
	items := []commands.CreateOrderItem{{ProductID: kernel.NewUUID(), Quantity: 0}}
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), items,
		"12 Feres Megala", kernel.CityHarar, nil, nil,
		order.PaymentCashOnDelivery, false,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCreateOrderCommand_DuplicateProduct(t *testing.T) {
	productID := kernel.NewUUID()
	items := []commands.CreateOrderItem{
		{ProductID: productID, Quantity: 2},
		{ProductID: kernel.NewUUID(), Quantity: 1},
		{ProductID: productID, Quantity: 3},
	}

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), items,
		"12 Feres Megala", kernel.CityHarar, nil, nil,
		order.PaymentCashOnDelivery, false,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_EmptyStreet(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), validItems(),
		"", kernel.CityHarar, nil, nil,
		order.PaymentCashOnDelivery, false,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_UnknownCity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), validItems(),
		"12 Feres Megala", kernel.City("Gondar"), nil, nil,
		order.PaymentCashOnDelivery, false,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.UUID{}, validItems(),
		"12 Feres Megala", kernel.CityHarar, nil, nil,
		order.PaymentCashOnDelivery, false,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
