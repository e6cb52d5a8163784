package queries

import (
	"errors"
	"time"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/guard"
)

var ErrGetAllCouriersQueryIsNotConstructed = errors.New(
	"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
)

// GetAllCouriersQuery retrieves every courier together with their derived
// availability. The availability is computed per row from the stored flags
// and an existence check for in-transit work, never read from a column.
type GetAllCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCouriersQuery creates a query to retrieve all couriers.
func NewGetAllCouriersQuery() GetAllCouriersQuery {
	return GetAllCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

// CourierResponse represents one courier row in the read model.
type CourierResponse struct {
	ID            kernel.UUID
	Name          string
	Phone         string
	StartingFloat int64
	Availability  string
	Latitude      *float64
	Longitude     *float64
	ReportedAt    *time.Time
}
