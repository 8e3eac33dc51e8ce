package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Accepted))
		assert.Equal(t, 3, int(order.Rejected))
		assert.Equal(t, 4, int(order.Preparing))
		assert.Equal(t, 5, int(order.ReadyForPickup))
		assert.Equal(t, 6, int(order.Dispatched))
		assert.Equal(t, 7, int(order.InTransit))
		assert.Equal(t, 8, int(order.Delivered))
		assert.Equal(t, 9, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Accepted,
			order.Rejected,
			order.Preparing,
			order.ReadyForPickup,
			order.Dispatched,
			order.InTransit,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(10), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				require.Error(t, status.Validate())
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return snake_case names", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "ready_for_pickup", order.ReadyForPickup.String())
		assert.Equal(t, "in_transit", order.InTransit.String())
		assert.Equal(t, "cancelled", order.Cancelled.String())
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every status name", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":          order.Pending,
			"accepted":         order.Accepted,
			"rejected":         order.Rejected,
			"preparing":        order.Preparing,
			"ready_for_pickup": order.ReadyForPickup,
			"dispatched":       order.Dispatched,
			"in_transit":       order.InTransit,
			"delivered":        order.Delivered,
			"cancelled":        order.Cancelled,
		}

		for name, expected := range cases {
			parsed, err := order.ParseStatus(name)
			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"unknown", "shipped", "", "PENDING"} {
			_, err := order.ParseStatus(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatusFromAgentReport(t *testing.T) {
	t.Run("picked_up maps to in_transit", func(t *testing.T) {
		status, err := order.StatusFromAgentReport("picked_up")
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, status)
	})

	t.Run("delivered maps to delivered", func(t *testing.T) {
		status, err := order.StatusFromAgentReport("delivered")
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, status)
	})

	t.Run("should reject internal status names", func(t *testing.T) {
		for _, report := range []string{"in_transit", "dispatched", "cancelled", ""} {
			_, err := order.StatusFromAgentReport(report)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should allow the fulfillment path", func(t *testing.T) {
		assert.True(t, order.Pending.CanTransitionTo(order.Accepted))
		assert.True(t, order.Pending.CanTransitionTo(order.Rejected))
		assert.True(t, order.Accepted.CanTransitionTo(order.Preparing))
		assert.True(t, order.Accepted.CanTransitionTo(order.Cancelled))
		assert.True(t, order.Preparing.CanTransitionTo(order.ReadyForPickup))
		assert.True(t, order.Preparing.CanTransitionTo(order.Cancelled))
		assert.True(t, order.ReadyForPickup.CanTransitionTo(order.Dispatched))
		assert.True(t, order.Dispatched.CanTransitionTo(order.InTransit))
		assert.True(t, order.InTransit.CanTransitionTo(order.Delivered))
	})

	t.Run("should forbid skipping stages", func(t *testing.T) {
		assert.False(t, order.Pending.CanTransitionTo(order.Preparing))
		assert.False(t, order.Pending.CanTransitionTo(order.Cancelled))
		assert.False(t, order.Accepted.CanTransitionTo(order.ReadyForPickup))
		assert.False(t, order.ReadyForPickup.CanTransitionTo(order.Cancelled))
		assert.False(t, order.Dispatched.CanTransitionTo(order.Delivered))
	})

	t.Run("terminal statuses have no successors", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Rejected, order.Cancelled} {
			for target := order.Pending; target <= order.Cancelled; target++ {
				assert.False(t, terminal.CanTransitionTo(target),
					"%s should not transition to %s", terminal, target)
			}
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Rejected.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())
}

func TestStatus_IsCancellable(t *testing.T) {
	assert.True(t, order.Pending.IsCancellable())
	assert.True(t, order.Accepted.IsCancellable())
	assert.True(t, order.Preparing.IsCancellable())

	assert.False(t, order.ReadyForPickup.IsCancellable())
	assert.False(t, order.Dispatched.IsCancellable())
	assert.False(t, order.InTransit.IsCancellable())
	assert.False(t, order.Delivered.IsCancellable())
	assert.False(t, order.Cancelled.IsCancellable())
}

func TestStatus_Next(t *testing.T) {
	t.Run("should return the target for allowed transitions", func(t *testing.T) {
		next, err := order.Pending.Next(order.Accepted)
		require.NoError(t, err)
		assert.Equal(t, order.Accepted, next)
	})

	t.Run("should reject forbidden transitions", func(t *testing.T) {
		_, err := order.Pending.Next(order.Delivered)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("should reject invalid targets", func(t *testing.T) {
		_, err := order.Pending.Next(order.Unknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
