package commands

import (
	"errors"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var ErrReportCourierLocationCommandIsNotConstructed = errors.New(
	"ReportCourierLocationCommand must be created via NewReportCourierLocationCommand constructor",
)

// ReportCourierLocationCommand represents a position update from a courier's
// device. Sharing false means the courier turned location sharing off and
// the last point should stop being displayed.
type ReportCourierLocationCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	point     kernel.GeoPoint
	sharing   bool

	guard guard.ConstructorGuard
}

// NewReportCourierLocationCommand creates a command carrying a location
// update. When sharing is false the point is ignored and may be zero.
func NewReportCourierLocationCommand(courierID kernel.UUID, point kernel.GeoPoint, sharing bool) (ReportCourierLocationCommand, error) {
	if err := courierID.Validate(); err != nil {
		return ReportCourierLocationCommand{}, errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	if sharing {
		if err := point.Validate(); err != nil {
			return ReportCourierLocationCommand{}, errs.NewValueIsRequiredErrorWithCause("location", err)
		}
	}

	return ReportCourierLocationCommand{
		courierID: courierID,
		point:     point,
		sharing:   sharing,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportCourierLocationCommandIsNotConstructed)
}

// CourierID returns the reporting courier.
func (c ReportCourierLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Point returns the reported position.
func (c ReportCourierLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// Sharing reports whether the courier keeps sharing their location.
func (c ReportCourierLocationCommand) Sharing() bool {
	return c.sharing
}
