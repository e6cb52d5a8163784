package queries

import (
	"errors"
	"time"

	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var ErrGetOrdersByDateRangeQueryIsNotConstructed = errors.New(
	"GetOrdersByDateRangeQuery must be created via NewGetOrdersByDateRangeQuery constructor",
)

// GetOrdersByDateRangeQuery retrieves orders created inside a half-open
// interval [from, to). Used for day and week views.
type GetOrdersByDateRangeQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersByDateRangeQuery creates a query for a creation date window.
// The window end must not precede its start.
func NewGetOrdersByDateRangeQuery(from, to time.Time) (GetOrdersByDateRangeQuery, error) {
	if from.IsZero() {
		return GetOrdersByDateRangeQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetOrdersByDateRangeQuery{}, errs.NewValueIsRequiredError("to")
	}
	if to.Before(from) {
		return GetOrdersByDateRangeQuery{}, errs.NewValueIsInvalidError("to")
	}

	return GetOrdersByDateRangeQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByDateRangeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByDateRangeQueryIsNotConstructed)
}

// From returns the inclusive window start.
func (q GetOrdersByDateRangeQuery) From() time.Time {
	return q.from
}

// To returns the exclusive window end.
func (q GetOrdersByDateRangeQuery) To() time.Time {
	return q.to
}
