package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// ExternalRef identifies an order record in an external source system, for
// example the call-center platform the import workflow pulls from. The pair
// (source, id) is unique: duplicate suppression runs on this reference
// instead of pattern-matching free-text notes.
type ExternalRef struct {
	source string
	id     int64
}

// NewExternalRef creates a validated external source reference.
func NewExternalRef(source string, id int64) (ExternalRef, error) {
	if strings.TrimSpace(source) == "" {
		return ExternalRef{}, errs.NewValueIsRequiredError("externalSource")
	}
	if id <= 0 {
		return ExternalRef{}, errs.NewValueIsInvalidErrorWithCause("externalSourceID",
			fmt.Errorf("%d is not a positive id", id))
	}
	return ExternalRef{source: source, id: id}, nil
}

// Source returns the name of the external source system.
func (r ExternalRef) Source() string { return r.source }

// ID returns the record id issued by the external source system.
func (r ExternalRef) ID() int64 { return r.id }

// Order represents a delivery order. It is the aggregate root that manages
// the order lifecycle from creation through assignment to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid Colombian client phone
//   - Client name and delivery address are required
//   - Value and delivery fee are non-negative
//   - A terminal number may only be present with the card_terminal payment method
//   - Pending orders hold no courier; assigned and in-transit orders hold one;
//     terminal orders keep their final courier reference for the record
//   - Status transitions follow the state machine defined on Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id             kernel.UUID
	clientName     string
	clientPhone    kernel.Phone
	address        string
	neighborhood   string
	value          kernel.Money
	deliveryFee    kernel.Money
	payment        PaymentMethod
	terminalNumber string
	voucher        VoucherStatus
	notes          string
	externalRef    *ExternalRef

	// courierID is the assigned courier's ID (nil while pending)
	courierID *kernel.UUID
	status    Status

	createdAt   time.Time
	updatedAt   time.Time
	startedAt   *time.Time
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrderParams carries the client-provided attributes of a new order.
// Identity, status, and timestamps are supplied separately by NewOrder.
type NewOrderParams struct {
	ClientName     string
	ClientPhone    kernel.Phone
	Address        string
	Neighborhood   string
	Value          kernel.Money
	DeliveryFee    kernel.Money
	Payment        PaymentMethod
	TerminalNumber string
	Notes          string
	ExternalRef    *ExternalRef
}

// NewOrder creates a new Order with validation. This is the only way to
// create a fresh order; it always starts Pending with no courier attached
// and a pending voucher.
//
// Returns a validation error naming the offending field if any parameter
// violates the order invariants. Multiple violations are joined.
func NewOrder(id kernel.UUID, params NewOrderParams, now time.Time) (*Order, error) {
	o := &Order{
		status:    Pending,
		voucher:   VoucherPending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(params.ClientName),
		o.setClientPhone(params.ClientPhone),
		o.setAddress(params.Address),
		o.setAmounts(params.Value, params.DeliveryFee),
		o.setPayment(params.Payment, params.TerminalNumber),
	); err != nil {
		return nil, err
	}

	o.neighborhood = strings.TrimSpace(params.Neighborhood)
	o.notes = strings.TrimSpace(params.Notes)
	o.externalRef = params.ExternalRef

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	NewOrderParams

	Status      Status
	Voucher     VoucherStatus
	CourierID   *kernel.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	StartedAt   *time.Time
	DeliveredAt *time.Time
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts any valid status and courier combination, so a
// restored order behaves identically to one that went through the domain
// operations. The status/courier consistency invariant is still enforced.
func RestoreOrder(id kernel.UUID, params RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(id, params.NewOrderParams, params.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		params.Status.Validate(),
		params.Voucher.Validate(),
		params.Status.ValidateCanHaveCourier(params.CourierID != nil),
	); err != nil {
		return nil, err
	}

	if params.CourierID != nil {
		if err = params.CourierID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = params.Status
	o.voucher = params.Voucher
	o.courierID = params.CourierID
	o.updatedAt = params.UpdatedAt
	o.startedAt = params.StartedAt
	o.deliveredAt = params.DeliveredAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// ClientName returns the name of the client the order is delivered to.
func (o *Order) ClientName() string { return o.clientName }

// ClientPhone returns the client's normalized phone number.
func (o *Order) ClientPhone() kernel.Phone { return o.clientPhone }

// Address returns the delivery address.
func (o *Order) Address() string { return o.address }

// Neighborhood returns the optional delivery neighborhood.
func (o *Order) Neighborhood() string { return o.neighborhood }

// Value returns the order value excluding the delivery fee.
func (o *Order) Value() kernel.Money { return o.value }

// DeliveryFee returns the delivery fee charged on top of the value.
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }

// Payment returns the payment method.
func (o *Order) Payment() PaymentMethod { return o.payment }

// TerminalNumber returns the card terminal number.
// Empty unless the payment method is card_terminal.
func (o *Order) TerminalNumber() string { return o.terminalNumber }

// Voucher returns the voucher verification status.
func (o *Order) Voucher() VoucherStatus { return o.voucher }

// Notes returns the free-text notes.
func (o *Order) Notes() string { return o.notes }

// ExternalRef returns the external source reference, nil for orders created
// by staff directly.
func (o *Order) ExternalRef() *ExternalRef { return o.externalRef }

// Courier returns the assigned courier's ID, nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID { return o.courierID }

// Status returns the current status of the order.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// StartedAt returns the moment the courier started the trip, nil before.
func (o *Order) StartedAt() *time.Time { return o.startedAt }

// DeliveredAt returns the delivery confirmation moment, nil before.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// Assign attaches a courier to a pending order and moves it to Assigned.
//
// Fails with an InvalidTransitionError when the order is not Pending; the
// engine keeps a courier from being attached twice by claiming the courier
// before this call.
func (o *Order) Assign(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.touch(now)
	return nil
}

// Reassign swaps the attached courier while the order is Pending or
// Assigned, ending in Assigned. Returns the previously attached courier ID
// (nil when the order was still pending) so the caller can release it.
func (o *Order) Reassign(newCourierID kernel.UUID, now time.Time) (*kernel.UUID, error) {
	if err := newCourierID.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := o.status.Reassign()
	if err != nil {
		return nil, err
	}

	previous := o.courierID
	o.status = newStatus
	o.courierID = &newCourierID
	o.touch(now)
	return previous, nil
}

// StartTransit marks the courier as having left with the order.
// Requires Assigned; stamps the trip start time.
func (o *Order) StartTransit(now time.Time) error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.startedAt = &now
	o.touch(now)
	return nil
}

// Deliver marks the order as delivered to the client.
// Requires InTransit; stamps the completion time. Delivered is terminal.
func (o *Order) Deliver(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	o.touch(now)
	return nil
}

// Cancel moves the order to Cancelled from any non-terminal status.
// The courier reference is kept for the record; freeing the courier is the
// engine's responsibility.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	return nil
}

// SetVoucher updates the voucher verification status.
func (o *Order) SetVoucher(voucher VoucherStatus, now time.Time) error {
	if err := voucher.Validate(); err != nil {
		return err
	}
	o.voucher = voucher
	o.touch(now)
	return nil
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	o.clientName = name
	return nil
}

func (o *Order) setClientPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	o.clientPhone = phone
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setAmounts(value, deliveryFee kernel.Money) error {
	if err := value.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("value", err)
	}
	if err := deliveryFee.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryFee", err)
	}
	o.value = value
	o.deliveryFee = deliveryFee
	return nil
}

func (o *Order) setPayment(payment PaymentMethod, terminalNumber string) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	terminalNumber = strings.TrimSpace(terminalNumber)
	if terminalNumber != "" && payment != PaymentCardTerminal {
		return errs.NewValueIsInvalidErrorWithCause("terminalNumber",
			fmt.Errorf("terminal number only applies to %s payments", PaymentCardTerminal))
	}

	o.payment = payment
	o.terminalNumber = terminalNumber
	return nil
}
