package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// PlanDeliveryRouteQueryHandler collects the addresses waiting on a courier
// and asks the configured planner for a suggested run. When nothing is
// waiting, the planner is not called at all.
type PlanDeliveryRouteQueryHandler struct {
	db      *gorm.DB
	planner ports.RoutePlanner
	depot   string
}

// NewPlanDeliveryRouteQueryHandler creates a handler for route planning queries.
// Requires a GORM database connection and a route planner implementation.
func NewPlanDeliveryRouteQueryHandler(
	db *gorm.DB,
	planner ports.RoutePlanner,
	depot string,
) PlanDeliveryRouteQueryHandler {
	return PlanDeliveryRouteQueryHandler{db: db, planner: planner, depot: depot}
}

// Handle executes the query over every order at the customs-cleared stage.
func (h PlanDeliveryRouteQueryHandler) Handle(
	ctx context.Context,
	query PlanDeliveryRouteQuery,
) (RoutePlanResponse, error) {
	if err := query.Validate(); err != nil {
		return RoutePlanResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT delivery_address
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, order.CustomsCleared.String()).Rows()
	if err != nil {
		return RoutePlanResponse{}, err
	}
	defer rows.Close()

	stops := make([]string, 0)
	for rows.Next() {
		var address string
		if err = rows.Scan(&address); err != nil {
			return RoutePlanResponse{}, err
		}
		stops = append(stops, address)
	}
	if err = rows.Err(); err != nil {
		return RoutePlanResponse{}, err
	}

	response := RoutePlanResponse{
		Depot: h.depot,
		Stops: stops,
	}

	if len(stops) == 0 {
		return response, nil
	}

	route, err := h.planner.PlanRoute(ctx, h.depot, stops)
	if err != nil {
		return RoutePlanResponse{}, err
	}
	response.Route = route

	return response, nil
}
