package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler retrieves a single aggregated order view.
type TrackOrderQueryHandler struct {
	db         *gorm.DB
	aggregator services.OrderAggregator
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB, aggregator services.OrderAggregator) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db, aggregator: aggregator}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	responses, err := loadOrders(ctx, h.db, h.aggregator, "WHERE id = ?", query.OrderID().Int64())
	if err != nil {
		return OrderResponse{}, err
	}

	if len(responses) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return responses[0], nil
}
