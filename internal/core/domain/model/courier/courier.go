package courier

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var (
	// ErrCourierIsNotConstructed is returned when a Courier was not created
	// through its constructor.
	ErrCourierIsNotConstructed = fmt.Errorf("courier must be created via NewCourier or RestoreCourier")

	// ErrCourierAlreadyCommitted is returned when a courier is committed to
	// an assignment while already holding one.
	ErrCourierAlreadyCommitted = errors.New("courier is already committed to an order")

	// ErrCourierNotCommitted is returned when releasing a courier that holds
	// no commitment.
	ErrCourierNotCommitted = errors.New("courier is not committed to any order")

	// ErrCourierRetired is returned when an operation requires a non-retired
	// courier.
	ErrCourierRetired = errors.New("courier is retired")
)

// Location is a courier's last reported position together with when it was
// reported and whether the courier is still sharing it.
type Location struct {
	Point      kernel.GeoPoint
	ReportedAt time.Time
	Sharing    bool
}

// Courier is the aggregate root for a delivery courier.
//
// The committed flag is the aggregate's claim marker: it is raised the moment
// the courier is offered an assignment and lowered when the delivery ends or
// the courier is reassigned away. Availability is never stored on the
// aggregate; callers derive it with Compute.
type Courier struct {
	baseAggregate guard.ConstructorGuard

	id            kernel.UUID
	name          string
	phone         kernel.Phone
	startingFloat kernel.Money
	activeToday   bool
	retired       bool
	committed     bool
	location      *Location
	createdAt     time.Time
	updatedAt     time.Time
}

// NewCourier creates a courier. New couriers start off shift, unretired, and
// uncommitted; the starting float may be zero (the courier is simply not
// offerable until it is funded).
func NewCourier(id kernel.UUID, name string, phone kernel.Phone, startingFloat kernel.Money, now time.Time) (Courier, error) {
	courier := Courier{
		baseAggregate: guard.NewConstructorGuard(),
		createdAt:     now,
		updatedAt:     now,
	}

	err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setPhone(phone),
		courier.setStartingFloat(startingFloat),
	)
	if err != nil {
		return Courier{}, err
	}

	return courier, nil
}

// RestoreCourierParams carries every persisted field of a courier.
type RestoreCourierParams struct {
	ID            kernel.UUID
	Name          string
	Phone         kernel.Phone
	StartingFloat kernel.Money
	ActiveToday   bool
	Retired       bool
	Committed     bool
	Location      *Location
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RestoreCourier rebuilds a courier from storage.
func RestoreCourier(params RestoreCourierParams) (Courier, error) {
	courier, err := NewCourier(params.ID, params.Name, params.Phone, params.StartingFloat, params.CreatedAt)
	if err != nil {
		return Courier{}, err
	}

	courier.activeToday = params.ActiveToday
	courier.retired = params.Retired
	courier.committed = params.Committed
	courier.location = params.Location
	courier.updatedAt = params.UpdatedAt

	return courier, nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("phone", err)
	}
	c.phone = phone
	return nil
}

func (c *Courier) setStartingFloat(startingFloat kernel.Money) error {
	if err := startingFloat.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("startingFloat", err)
	}
	c.startingFloat = startingFloat
	return nil
}

// ID returns the courier's identifier.
func (c *Courier) ID() kernel.UUID { return c.id }

// Name returns the courier's display name.
func (c *Courier) Name() string { return c.name }

// Phone returns the courier's phone number.
func (c *Courier) Phone() kernel.Phone { return c.phone }

// StartingFloat returns the cash float the courier starts the day with.
func (c *Courier) StartingFloat() kernel.Money { return c.startingFloat }

// IsActiveToday reports whether the courier is on shift.
func (c *Courier) IsActiveToday() bool { return c.activeToday }

// IsRetired reports whether the courier has been retired.
func (c *Courier) IsRetired() bool { return c.retired }

// IsCommitted reports whether the courier currently holds an assignment
// commitment.
func (c *Courier) IsCommitted() bool { return c.committed }

// IsFunded reports whether the courier has a positive starting float.
func (c *Courier) IsFunded() bool { return c.startingFloat.IsPositive() }

// Location returns the courier's last reported location, or nil when the
// courier never reported one or stopped sharing.
func (c *Courier) Location() *Location { return c.location }

// CreatedAt returns when the courier was registered.
func (c *Courier) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the courier last changed.
func (c *Courier) UpdatedAt() time.Time { return c.updatedAt }

// CanBeOffered reports whether the courier may be offered a new assignment:
// on shift, funded, not retired, and not already committed.
func (c *Courier) CanBeOffered() bool {
	return !c.retired && c.activeToday && c.IsFunded() && !c.committed
}

// Availability derives the courier's display state. Whether the courier has
// an in-transit order is not known to the aggregate, so the caller supplies
// it.
func (c *Courier) Availability(hasInTransitOrder bool) Availability {
	return Compute(c.retired, c.activeToday, c.IsFunded(), hasInTransitOrder)
}

// Commit marks the courier as holding an assignment. It fails if the courier
// cannot be offered work or already holds one.
func (c *Courier) Commit(now time.Time) error {
	if c.retired {
		return ErrCourierRetired
	}
	if c.committed {
		return ErrCourierAlreadyCommitted
	}
	c.committed = true
	c.touch(now)
	return nil
}

// Release lowers the commitment after a delivery ends or the order moves to
// another courier.
func (c *Courier) Release(now time.Time) error {
	if !c.committed {
		return ErrCourierNotCommitted
	}
	c.committed = false
	c.touch(now)
	return nil
}

// StartShift marks the courier as on shift for the day.
func (c *Courier) StartShift(now time.Time) error {
	if c.retired {
		return ErrCourierRetired
	}
	c.activeToday = true
	c.touch(now)
	return nil
}

// EndShift marks the courier as off shift.
func (c *Courier) EndShift(now time.Time) {
	c.activeToday = false
	c.touch(now)
}

// Retire removes the courier from the operation. A retired courier keeps its
// record but never appears available.
func (c *Courier) Retire(now time.Time) {
	c.retired = true
	c.activeToday = false
	c.touch(now)
}

// Reinstate brings a retired courier back. The courier returns off shift.
func (c *Courier) Reinstate(now time.Time) {
	c.retired = false
	c.touch(now)
}

// SetStartingFloat updates the courier's cash float for the day.
func (c *Courier) SetStartingFloat(startingFloat kernel.Money, now time.Time) error {
	if err := c.setStartingFloat(startingFloat); err != nil {
		return err
	}
	c.touch(now)
	return nil
}

// ReportLocation records the courier's position and marks it as shared.
func (c *Courier) ReportLocation(point kernel.GeoPoint, now time.Time) error {
	if err := point.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location", err)
	}
	c.location = &Location{Point: point, ReportedAt: now, Sharing: true}
	c.touch(now)
	return nil
}

// StopSharingLocation keeps the last reported point for the record but marks
// it as no longer shared.
func (c *Courier) StopSharingLocation(now time.Time) {
	if c.location == nil {
		return
	}
	c.location.Sharing = false
	c.touch(now)
}

func (c *Courier) touch(now time.Time) {
	c.updatedAt = now
}

// Validate returns an error if the courier was not built through its
// constructor.
func (c *Courier) Validate() error {
	return c.baseAggregate.Validate(ErrCourierIsNotConstructed)
}
