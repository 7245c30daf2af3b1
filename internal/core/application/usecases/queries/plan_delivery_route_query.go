package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrPlanDeliveryRouteQueryIsNotConstructed = errors.New(
		"PlanDeliveryRouteQuery must be created via NewPlanDeliveryRouteQuery constructor",
	)
)

// PlanDeliveryRouteQuery asks for a suggested delivery route over every order
// currently waiting for a courier. The depot is fixed by configuration; the
// stops are the delivery addresses of orders at the customs-cleared stage.
//
// Example:
//
//	query := NewPlanDeliveryRouteQuery()
//	handler := NewPlanDeliveryRouteQueryHandler(db, planner, depot)
//
//	plan, err := handler.Handle(ctx, query)
//	fmt.Println(plan.Route)
type PlanDeliveryRouteQuery struct {
	guard guard.ConstructorGuard
}

// NewPlanDeliveryRouteQuery creates a route planning query.
// This is a parameterless query.
func NewPlanDeliveryRouteQuery() PlanDeliveryRouteQuery {
	return PlanDeliveryRouteQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrPlanDeliveryRouteQueryIsNotConstructed if validation fails.
func (q PlanDeliveryRouteQuery) Validate() error {
	return q.guard.Validate(ErrPlanDeliveryRouteQueryIsNotConstructed)
}

// RoutePlanResponse represents a suggested delivery run.
// Route is advisory text produced by the planner; Stops lists the addresses
// the plan covers, in storage order.
type RoutePlanResponse struct {
	Depot string
	Stops []string
	Route string
}
