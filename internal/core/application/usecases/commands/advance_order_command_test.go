package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderCommand_ValidInput(t *testing.T) {
	id, err := kernel.OrderIDFromInt64(42)
	require.NoError(t, err)

	cmd, err := commands.NewAdvanceOrderCommand(id, order.Picker, order.Picked)
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, order.Picker, cmd.Actor())
	assert.Equal(t, order.Picked, cmd.Target())
}

func TestNewAdvanceOrderCommand_UnassignedOrderID(t *testing.T) {
	var id kernel.OrderID

	_, err := commands.NewAdvanceOrderCommand(id, order.Picker, order.Picked)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAdvanceOrderCommand_InvalidActor(t *testing.T) {
	id, err := kernel.OrderIDFromInt64(42)
	require.NoError(t, err)

	_, err = commands.NewAdvanceOrderCommand(id, order.RoleUnknown, order.Picked)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAdvanceOrderCommand_TargetCheckedAtHandling(t *testing.T) {
	id, err := kernel.OrderIDFromInt64(42)
	require.NoError(t, err)

	// The target is carried as-is; the aggregate rejects it after the order
	// has been loaded, so missing orders take precedence over bad targets.
	cmd, err := commands.NewAdvanceOrderCommand(id, order.Picker, order.Status(99))
	require.NoError(t, err)
	assert.Equal(t, order.Status(99), cmd.Target())
}

func TestAdvanceOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AdvanceOrderCommand{}

	require.Error(t, cmd.Validate())
}
