package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery(t *testing.T) {
	query := queries.NewGetOrdersQuery()

	require.NoError(t, query.Validate())
	_, ok := query.Status()
	assert.False(t, ok)
}

func TestNewGetOrdersQueryWithStatus(t *testing.T) {
	query, err := queries.NewGetOrdersQueryWithStatus(order.Picked)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	status, ok := query.Status()
	assert.True(t, ok)
	assert.Equal(t, order.Picked, status)
}

func TestNewGetOrdersQueryWithStatus_Invalid(t *testing.T) {
	_, err := queries.NewGetOrdersQueryWithStatus(order.Unknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrdersQuery{}

	require.Error(t, query.Validate())
}
