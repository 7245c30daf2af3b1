package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActionableOrdersQuery(t *testing.T) {
	query, err := queries.NewGetActionableOrdersQuery(order.Forwarder)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.Forwarder, query.Role())
}

func TestNewGetActionableOrdersQuery_InvalidRole(t *testing.T) {
	_, err := queries.NewGetActionableOrdersQuery(order.RoleUnknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetActionableOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetActionableOrdersQuery{}

	require.Error(t, query.Validate())
}
