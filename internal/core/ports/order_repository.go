package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by status,
// plus a compare-and-swap status update for concurrent transitions.
type OrderRepository interface {
	// Add persists a new order aggregate and returns the aggregate restored
	// with its store-assigned identifier.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves every stored order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByStatus retrieves all orders currently at the given status.
	// Used by role dashboards to list actionable orders.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// UpdateStatus moves an order from expected to next only if its stored
	// status still equals expected. Returns errs.ObjectNotFoundError when the
	// order does not exist and errs.ConcurrentUpdateError when it exists but
	// was moved by a competing transition.
	UpdateStatus(ctx context.Context, id kernel.OrderID, expected, next order.Status) error

	// RemoveAll deletes every order and its items. Items go first so the
	// foreign key constraint holds throughout.
	RemoveAll(ctx context.Context) error
}
