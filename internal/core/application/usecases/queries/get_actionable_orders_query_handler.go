package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetActionableOrdersQueryHandler retrieves a role's work queue from the
// database. A role that moves no stage (Receiver) always gets an empty queue.
type GetActionableOrdersQueryHandler struct {
	db         *gorm.DB
	aggregator services.OrderAggregator
}

// NewGetActionableOrdersQueryHandler creates a handler for work queue queries.
// Requires a GORM database connection for query execution.
func NewGetActionableOrdersQueryHandler(
	db *gorm.DB,
	aggregator services.OrderAggregator,
) GetActionableOrdersQueryHandler {
	return GetActionableOrdersQueryHandler{db: db, aggregator: aggregator}
}

// Handle executes the query: every order sitting at the stage the role acts on.
func (h GetActionableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActionableOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status, ok := order.ActionableStatusFor(query.Role())
	if !ok {
		return []OrderResponse{}, nil
	}

	return loadOrders(ctx, h.db, h.aggregator, "WHERE status = ?", status.String())
}
