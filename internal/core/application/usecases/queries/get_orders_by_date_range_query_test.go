package queries_test

import (
	"testing"
	"time"

	"fluxi/internal/core/application/usecases/queries"
	"fluxi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByDateRangeQuery_Valid(t *testing.T) {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	query, err := queries.NewGetOrdersByDateRangeQuery(from, to)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, from, query.From())
	assert.Equal(t, to, query.To())
}

func TestNewGetOrdersByDateRangeQuery_EmptyWindow_IsAllowed(t *testing.T) {
	at := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetOrdersByDateRangeQuery(at, at)

	require.NoError(t, err)
}

func TestNewGetOrdersByDateRangeQuery_ZeroBounds_ReturnError(t *testing.T) {
	at := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetOrdersByDateRangeQuery(time.Time{}, at)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetOrdersByDateRangeQuery(at, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetOrdersByDateRangeQuery_EndBeforeStart_ReturnsError(t *testing.T) {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetOrdersByDateRangeQuery(from, from.Add(-time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrdersByDateRangeQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByDateRangeQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByDateRangeQueryIsNotConstructed)
}
