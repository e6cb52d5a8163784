// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and bypass the
// aggregates entirely.
package queries

import (
	"errors"
	"time"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order that still needs work: pending,
// assigned, or in transit. This is the dispatcher's main board view.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active order board.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// OrderResponse represents one order row in the read model.
type OrderResponse struct {
	ID           kernel.UUID
	ClientName   string
	ClientPhone  string
	Address      string
	Neighborhood string
	Value        int64
	DeliveryFee  int64
	Payment      string
	Status       string
	CourierID    *kernel.UUID
	CreatedAt    time.Time
}
