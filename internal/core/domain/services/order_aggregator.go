package services

import (
	"fulfillment/internal/core/domain/model/order"
)

// DefaultTaxRate is the flat tax rate applied to an order's subtotal.
const DefaultTaxRate = 0.09

// OrderSummary carries the derived financial and progress figures for a
// single order. All figures are recomputed from the order's items and status
// on every read; nothing here is stored.
type OrderSummary struct {
	ProgressIndex int
	StageCount    int
	Subtotal      float64
	Tax           float64
	Total         float64
}

// OrderAggregator is a domain service that derives financial totals and
// lifecycle progress from an order.
//
// Key responsibilities:
//   - Computing the item subtotal (sum of quantity x unit price)
//   - Applying the flat tax rate to the subtotal
//   - Mapping the order's status onto its zero-based stage index
//
// Business rules:
//   - Figures are derived on demand and never persisted
//   - Tax applies to the subtotal, not per line
//   - An empty item list yields zero for every financial figure
//
// Example usage:
//
//	aggregator := services.NewOrderAggregator()
//	summary, err := aggregator.Aggregate(o)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("stage %d of %d, total %.2f", summary.ProgressIndex, summary.StageCount, summary.Total)
type OrderAggregator struct {
	taxRate float64
}

// NewOrderAggregator creates an OrderAggregator using DefaultTaxRate.
func NewOrderAggregator() OrderAggregator {
	return OrderAggregator{taxRate: DefaultTaxRate}
}

// NewOrderAggregatorWithTaxRate creates an OrderAggregator with a custom tax
// rate. Used by tests and deployments with a different tax regime.
func NewOrderAggregatorWithTaxRate(taxRate float64) OrderAggregator {
	return OrderAggregator{taxRate: taxRate}
}

// Aggregate derives the complete summary for an order.
//
// Parameters:
//   - o: The order to summarize (must be valid)
//
// Returns:
//   - OrderSummary: Derived progress and financial figures
//   - error: Validation error if the order was not properly constructed
func (a OrderAggregator) Aggregate(o *order.Order) (OrderSummary, error) {
	if err := o.Validate(); err != nil {
		return OrderSummary{}, err
	}

	subtotal := a.Subtotal(o.Items())
	tax := a.Tax(subtotal)

	index, _ := order.StageIndex(o.Status())

	return OrderSummary{
		ProgressIndex: index,
		StageCount:    order.StageCount,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
	}, nil
}

// Subtotal sums the line totals of the given items.
func (a OrderAggregator) Subtotal(items []order.Item) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

// Tax applies the aggregator's tax rate to a subtotal.
func (a OrderAggregator) Tax(subtotal float64) float64 {
	return subtotal * a.taxRate
}
