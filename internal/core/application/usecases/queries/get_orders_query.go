// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders for the admin dashboard, optionally
// filtered to a single lifecycle stage.
//
// Example:
//
//	query := NewGetOrdersQuery()                             // every order
//	query, _ := NewGetOrdersQueryWithStatus(order.Picked)    // one stage only
//
//	handler := NewGetOrdersQueryHandler(db, aggregator)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
type GetOrdersQuery struct {
	status    order.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query that retrieves every stored order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersQueryWithStatus creates a query filtered to one lifecycle stage.
// Returns an error when the status is not a known stage.
func NewGetOrdersQueryWithStatus(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status:    status,
		hasStatus: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the stage filter and whether one was set.
func (q GetOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasStatus
}

// ItemResponse represents one purchased line of an order.
type ItemResponse struct {
	ProductName string
	Quantity    int
	Price       float64
	LineTotal   float64
}

// OrderResponse represents a fully aggregated order view. Progress and
// financial figures are recomputed from items and status on every read.
type OrderResponse struct {
	ID              int64
	BuyerName       string
	BuyerEmail      string
	DeliveryAddress string
	Status          string
	StatusLabel     string
	ProgressIndex   int
	StageCount      int
	Items           []ItemResponse
	Subtotal        float64
	Tax             float64
	Total           float64
}
