package services

import (
	"errors"
	"time"

	"fluxi/internal/core/domain/model/courier"
	"fluxi/internal/core/domain/model/order"
)

// ErrNoCourierAvailable is returned when no courier can be offered the order.
// This occurs when either no couriers are provided or none of the provided
// couriers is on shift, funded, and free of a prior commitment.
var ErrNoCourierAvailable = errors.New("no courier available")

// OrderDispatcher is a domain service responsible for finding a courier for a
// pending order and executing the assignment on both aggregates.
//
// Business rules:
//   - Only offerable couriers are considered: on shift, funded, not retired,
//     and not already committed to another order.
//   - Among equally eligible couriers, the one with the lowest identifier
//     wins. Ranking by anything else (distance, load) is out of scope; the
//     deterministic tie break makes dispatch reproducible and testable.
//   - The courier is committed and the order assigned in one call; the caller
//     persists both in the same transaction.
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch selects a courier for the order and performs the assignment.
// It returns ErrNoCourierAvailable when no courier in the slice can take
// the order.
func (o OrderDispatcher) Dispatch(ord *order.Order, couriers []*courier.Courier, now time.Time) (*courier.Courier, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	// Check the transition before committing a courier, so a rejected order
	// never leaves a courier claimed.
	if _, err := ord.Status().Assign(); err != nil {
		return nil, err
	}

	selected, err := o.SelectCourier(couriers)
	if err != nil {
		return nil, err
	}

	if err = selected.Commit(now); err != nil {
		return nil, err
	}

	if err = ord.Assign(selected.ID(), now); err != nil {
		return nil, err
	}

	return selected, nil
}

// SelectCourier returns the offerable courier with the lowest identifier
// without touching either aggregate. Callers that need to claim the courier
// in storage before mutating state use this directly; Dispatch wraps it.
func (o OrderDispatcher) SelectCourier(couriers []*courier.Courier) (*courier.Courier, error) {
	var selected *courier.Courier

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.CanBeOffered() {
			continue
		}

		if selected == nil || c.ID().Less(selected.ID()) {
			selected = c
		}
	}

	if selected == nil {
		return nil, ErrNoCourierAvailable
	}

	return selected, nil
}
