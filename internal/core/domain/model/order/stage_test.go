package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStages(t *testing.T) {
	stages := order.Stages()

	require.Len(t, stages, order.StageCount)

	expected := []struct {
		status order.Status
		role   order.Role
		label  string
	}{
		{order.Created, order.RoleUnknown, "Created"},
		{order.Picked, order.Picker, "Picked"},
		{order.TransitToSZ, order.Forwarder, "In Transit"},
		{order.CustomsCleared, order.Shipper, "Customs Cleared"},
		{order.POD, order.Courier, "Delivered"},
	}

	for i, e := range expected {
		assert.Equal(t, e.status, stages[i].Status)
		assert.Equal(t, i, stages[i].Index)
		assert.Equal(t, e.role, stages[i].RequiredRole)
		assert.Equal(t, e.label, stages[i].Label)
	}
}

func TestStageIndex(t *testing.T) {
	t.Run("zero-based positions", func(t *testing.T) {
		idx, ok := order.StageIndex(order.Created)
		require.True(t, ok)
		assert.Equal(t, 0, idx)

		idx, ok = order.StageIndex(order.POD)
		require.True(t, ok)
		assert.Equal(t, 4, idx)
	})

	t.Run("not found for invalid status", func(t *testing.T) {
		_, ok := order.StageIndex(order.Unknown)
		assert.False(t, ok)

		_, ok = order.StageIndex(order.Status(99))
		assert.False(t, ok)
	})
}

func TestRoleFor(t *testing.T) {
	t.Run("each advancing stage has exactly one role", func(t *testing.T) {
		cases := map[order.Status]order.Role{
			order.Picked:         order.Picker,
			order.TransitToSZ:    order.Forwarder,
			order.CustomsCleared: order.Shipper,
			order.POD:            order.Courier,
		}

		for status, expected := range cases {
			role, ok := order.RoleFor(status)
			require.True(t, ok, status.String())
			assert.Equal(t, expected, role)
		}
	})

	t.Run("created is entered at creation, not by a role", func(t *testing.T) {
		_, ok := order.RoleFor(order.Created)
		assert.False(t, ok)
	})

	t.Run("not found for invalid status", func(t *testing.T) {
		_, ok := order.RoleFor(order.Unknown)
		assert.False(t, ok)
	})
}

func TestNextStatus(t *testing.T) {
	t.Run("advances one stage at a time", func(t *testing.T) {
		cases := map[order.Status]order.Status{
			order.Created:        order.Picked,
			order.Picked:         order.TransitToSZ,
			order.TransitToSZ:    order.CustomsCleared,
			order.CustomsCleared: order.POD,
		}

		for current, expected := range cases {
			next, ok := order.NextStatus(current)
			require.True(t, ok, current.String())
			assert.Equal(t, expected, next)
		}
	})

	t.Run("POD is terminal", func(t *testing.T) {
		_, ok := order.NextStatus(order.POD)
		assert.False(t, ok)
	})

	t.Run("no next for invalid status", func(t *testing.T) {
		_, ok := order.NextStatus(order.Unknown)
		assert.False(t, ok)
	})
}

func TestTargetStatusFor(t *testing.T) {
	cases := map[order.Role]order.Status{
		order.Picker:    order.Picked,
		order.Forwarder: order.TransitToSZ,
		order.Shipper:   order.CustomsCleared,
		order.Courier:   order.POD,
	}

	for role, expected := range cases {
		target, ok := order.TargetStatusFor(role)
		require.True(t, ok, role.String())
		assert.Equal(t, expected, target)
	}

	t.Run("receiver advances no stage", func(t *testing.T) {
		_, ok := order.TargetStatusFor(order.Receiver)
		assert.False(t, ok)
	})
}

func TestActionableStatusFor(t *testing.T) {
	cases := map[order.Role]order.Status{
		order.Picker:    order.Created,
		order.Forwarder: order.Picked,
		order.Shipper:   order.TransitToSZ,
		order.Courier:   order.CustomsCleared,
	}

	for role, expected := range cases {
		actionable, ok := order.ActionableStatusFor(role)
		require.True(t, ok, role.String())
		assert.Equal(t, expected, actionable)
	}

	t.Run("receiver has no queue", func(t *testing.T) {
		_, ok := order.ActionableStatusFor(order.Receiver)
		assert.False(t, ok)
	})
}

func TestStageLabel(t *testing.T) {
	assert.Equal(t, "In Transit", order.StageLabel(order.TransitToSZ))
	assert.Equal(t, "", order.StageLabel(order.Unknown))
}
