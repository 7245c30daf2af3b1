package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery retrieves the aggregated view of a single order: its items,
// derived financial figures, and progress through the lifecycle.
//
// Example:
//
//	id, _ := kernel.OrderIDFromString(c.Param("id"))
//	query, _ := NewTrackOrderQuery(id)
//	handler := NewTrackOrderQueryHandler(db, aggregator)
//
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type TrackOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track one order.
// Returns an error when the order ID is not assigned.
func NewTrackOrderQuery(orderID kernel.OrderID) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (q TrackOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}
