package ports

import (
	"context"
	"time"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status, assignment, and age.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByExternalRef retrieves the order carrying the given external
	// reference, or a not-found error when no order carries it. Used for
	// deduplicating orders imported from outside systems.
	GetByExternalRef(ctx context.Context, ref order.ExternalRef) (*order.Order, error)

	// GetFirstPending retrieves the oldest order still in Pending status.
	// Used by the assignment workflows to find work.
	GetFirstPending(ctx context.Context) (*order.Order, error)

	// GetAllActive retrieves every order in a non-terminal status.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllByStatus retrieves every order in the given status.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetByCourier retrieves every order attached to the given courier,
	// newest first.
	GetByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// GetActiveByCourier retrieves the courier's orders still in a
	// non-terminal status.
	GetActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// DeleteTerminalOlderThan removes up to limit delivered or cancelled
	// orders last updated before the cutoff and reports how many rows went.
	// Active orders are never touched regardless of age.
	DeleteTerminalOlderThan(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}
