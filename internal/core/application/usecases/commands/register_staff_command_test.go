package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterStaffCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRegisterStaffCommand("Alex Tan", "alex@warehouse.sg", order.Picker, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Alex Tan", cmd.Name())
	assert.Equal(t, "alex@warehouse.sg", cmd.Email())
	assert.Equal(t, order.Picker, cmd.Role())
	assert.Equal(t, "s3cret", cmd.Password())
}

func TestNewRegisterStaffCommand_MissingFields(t *testing.T) {
	cases := []struct {
		name      string
		staffName string
		email     string
		password  string
		role      order.Role
	}{
		{"missing name", "", "alex@warehouse.sg", "s3cret", order.Picker},
		{"missing email", "Alex Tan", "", "s3cret", order.Picker},
		{"missing password", "Alex Tan", "alex@warehouse.sg", "", order.Picker},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewRegisterStaffCommand(tc.staffName, tc.email, tc.role, tc.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestNewRegisterStaffCommand_InvalidRole(t *testing.T) {
	_, err := commands.NewRegisterStaffCommand("Alex Tan", "alex@warehouse.sg", order.RoleUnknown, "s3cret")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
