// Package ports defines repository interfaces for the delivery domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fluxi/internal/core/domain/model/courier"
	"fluxi/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every courier, retired ones included, ordered by
	// identifier.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllOfferable retrieves couriers eligible for a new assignment:
	// on shift, funded, not retired, and not committed to another order.
	// Ordered by identifier so selection is deterministic.
	GetAllOfferable(ctx context.Context) ([]*courier.Courier, error)

	// Claim raises the courier's commitment flag with a conditional write:
	// the update only lands if the flag is still down in storage. When
	// another transaction claimed the courier first, Claim returns a
	// conflict error and the caller may pick a different courier.
	Claim(ctx context.Context, id kernel.UUID) error

	// Release lowers the courier's commitment flag in storage.
	Release(ctx context.Context, id kernel.UUID) error

	// Remove deletes the courier record. Callers must check for in-transit
	// work before removal.
	Remove(ctx context.Context, id kernel.UUID) error
}
