package order

import (
	"fmt"

	"fluxi/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct dispatch workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> InTransit ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal: no edge leaves them, and every
// attempt fails with an InvalidTransitionError naming both states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a courier.
	Pending

	// Assigned indicates the order has been matched with a courier who has
	// not started the trip yet. Reassignment is allowed in this status.
	Assigned

	// InTransit indicates the courier has started the delivery trip.
	InTransit

	// Delivered indicates the order reached the client. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled by staff or the client.
	// Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a persisted status representation.
// Returns an error for anything that is not a valid status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Assigned, InTransit, Delivered, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "in_transit", ...).
// It implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the order still occupies the dispatch pipeline,
// i.e. the status is Pending, Assigned, or InTransit.
func (s Status) IsActive() bool {
	return s == Pending || s == Assigned || s == InTransit
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned (initial assignment)
//
// Reassignment of an already Assigned order goes through Reassign, which is
// a distinct operation with its own rules.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Assigned.String())
	}
	return Assigned, nil
}

// Reassign keeps or moves the status to Assigned for a courier swap.
//
// Valid transitions:
//   - Pending -> Assigned
//   - Assigned -> Assigned (swap to a different courier)
func (s Status) Reassign() (Status, error) {
	if s != Pending && s != Assigned {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Assigned.String())
	}
	return Assigned, nil
}

// Start transitions the status to InTransit.
//
// Valid transitions:
//   - Assigned -> InTransit (courier starts the trip)
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewInvalidTransitionError(s.String(), InTransit.String())
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered (courier confirms delivery)
//
// Delivered is terminal; calling Deliver on an already Delivered order fails
// like any other illegal edge, which keeps the operation safely idempotent
// from the caller's point of view.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Assigned -> Cancelled
//   - InTransit -> Cancelled (rare, admin action)
func (s Status) Cancel() (Status, error) {
	if !s.IsActive() {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Rules:
//   - Pending orders must not have a courier attached
//   - Assigned and InTransit orders must have a courier attached
//   - Terminal orders may keep their final courier reference for the record
func (s Status) ValidateCanHaveCourier(hasCourier bool) error {
	if hasCourier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order cannot have a courier attached", s))
	}

	if !hasCourier && (s == Assigned || s == InTransit) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order must have a courier attached", s))
	}

	return nil
}
