package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthenticateStaffQuery(t *testing.T) {
	query, err := queries.NewAuthenticateStaffQuery("alex@warehouse.sg", "s3cret")

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "alex@warehouse.sg", query.Email())
	assert.Equal(t, "s3cret", query.Password())
}

func TestNewAuthenticateStaffQuery_MissingFields(t *testing.T) {
	_, err := queries.NewAuthenticateStaffQuery("", "s3cret")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewAuthenticateStaffQuery("alex@warehouse.sg", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAuthenticateStaffQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.AuthenticateStaffQuery{}

	require.Error(t, query.Validate())
}
