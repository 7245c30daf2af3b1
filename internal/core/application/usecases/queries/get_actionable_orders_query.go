package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetActionableOrdersQueryIsNotConstructed = errors.New(
		"GetActionableOrdersQuery must be created via NewGetActionableOrdersQuery constructor",
	)
)

// GetActionableOrdersQuery retrieves the work queue of one actor role: the
// orders currently sitting at the stage that role moves forward.
//
// Example:
//
//	query, _ := NewGetActionableOrdersQuery(order.Forwarder)
//	handler := NewGetActionableOrdersQueryHandler(db, aggregator)
//
//	orders, err := handler.Handle(ctx, query)
//	// orders now holds everything at the Picked stage
type GetActionableOrdersQuery struct {
	role order.Role

	guard guard.ConstructorGuard
}

// NewGetActionableOrdersQuery creates a query for a role's work queue.
// Returns an error when the role is unknown.
func NewGetActionableOrdersQuery(role order.Role) (GetActionableOrdersQuery, error) {
	if err := role.Validate(); err != nil {
		return GetActionableOrdersQuery{}, err
	}

	return GetActionableOrdersQuery{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActionableOrdersQueryIsNotConstructed if validation fails.
func (q GetActionableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActionableOrdersQueryIsNotConstructed)
}

// Role returns the role whose queue is requested.
func (q GetActionableOrdersQuery) Role() order.Role {
	return q.role
}
