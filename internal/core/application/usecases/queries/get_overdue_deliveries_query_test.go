package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetOverdueDeliveriesQuery(t *testing.T) {
	query := queries.NewGetOverdueDeliveriesQuery()
	require.NoError(t, query.Validate())
}

func TestGetOverdueDeliveriesQuery_NotConstructed(t *testing.T) {
	var query queries.GetOverdueDeliveriesQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOverdueDeliveriesQueryIsNotConstructed)
}
