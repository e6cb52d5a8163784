package queries

import (
	"errors"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/core/domain/model/order"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var ErrGetOrdersByCourierQueryIsNotConstructed = errors.New(
	"GetOrdersByCourierQuery must be created via NewGetOrdersByCourierQuery constructor",
)

// GetOrdersByCourierQuery retrieves the orders attached to one courier,
// optionally narrowed to a single status.
type GetOrdersByCourierQuery struct {
	courierID kernel.UUID
	status    *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByCourierQuery creates a query for a courier's orders. Pass a
// nil status to include every status.
func NewGetOrdersByCourierQuery(courierID kernel.UUID, status *order.Status) (GetOrdersByCourierQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetOrdersByCourierQuery{}, errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersByCourierQuery{}, err
		}
	}

	return GetOrdersByCourierQuery{
		courierID: courierID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCourierQueryIsNotConstructed)
}

// CourierID returns the courier whose orders are requested.
func (q GetOrdersByCourierQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Status returns the status filter, or nil for all statuses.
func (q GetOrdersByCourierQuery) Status() *order.Status {
	return q.status
}
