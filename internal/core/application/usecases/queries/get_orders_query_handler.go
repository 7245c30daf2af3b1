package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves aggregated order views from the database.
// Every response row carries figures derived on the fly by the aggregator;
// nothing financial is read from storage.
type GetOrdersQueryHandler struct {
	db         *gorm.DB
	aggregator services.OrderAggregator
}

// NewGetOrdersQueryHandler creates a handler for dashboard order queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB, aggregator services.OrderAggregator) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db, aggregator: aggregator}
}

// Handle executes the query, newest orders first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if status, ok := query.Status(); ok {
		return loadOrders(ctx, h.db, h.aggregator, "WHERE status = ?", status.String())
	}

	return loadOrders(ctx, h.db, h.aggregator, "")
}

type orderRow struct {
	id              int64
	buyerName       string
	buyerEmail      string
	deliveryAddress string
	status          string
}

// loadOrders fetches order rows matching the optional WHERE clause, attaches
// their items, and aggregates each row into a response.
func loadOrders(
	ctx context.Context,
	db *gorm.DB,
	aggregator services.OrderAggregator,
	where string,
	args ...any,
) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_name,
			buyer_email,
			delivery_address,
			status
		FROM orders
		`+where+`
		ORDER BY id DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderRows := make([]orderRow, 0)
	for rows.Next() {
		var row orderRow
		if err = rows.Scan(
			&row.id,
			&row.buyerName,
			&row.buyerEmail,
			&row.deliveryAddress,
			&row.status,
		); err != nil {
			return nil, err
		}
		orderRows = append(orderRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orderRows) == 0 {
		return []OrderResponse{}, nil
	}

	ids := make([]int64, 0, len(orderRows))
	for _, row := range orderRows {
		ids = append(ids, row.id)
	}

	itemsByOrder, err := loadItems(ctx, db, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orderRows))
	for _, row := range orderRows {
		resp, aggErr := aggregateRow(aggregator, row, itemsByOrder[row.id])
		if aggErr != nil {
			return nil, aggErr
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// loadItems fetches the items of the given orders, grouped by order ID.
func loadItems(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]ItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_name,
			quantity,
			price
		FROM items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := make(map[int64][]ItemResponse)
	for rows.Next() {
		var orderID int64
		var item ItemResponse
		if err = rows.Scan(
			&orderID,
			&item.ProductName,
			&item.Quantity,
			&item.Price,
		); err != nil {
			return nil, err
		}
		item.LineTotal = float64(item.Quantity) * item.Price
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}

// aggregateRow rebuilds the domain aggregate from a row so the figures come
// from the same code path the rest of the system uses.
func aggregateRow(
	aggregator services.OrderAggregator,
	row orderRow,
	itemRows []ItemResponse,
) (OrderResponse, error) {
	status, err := order.StatusFromString(row.status)
	if err != nil {
		return OrderResponse{}, err
	}

	items := make([]order.Item, 0, len(itemRows))
	for _, itemRow := range itemRows {
		item, itemErr := order.NewItem(itemRow.ProductName, itemRow.Quantity, itemRow.Price)
		if itemErr != nil {
			return OrderResponse{}, itemErr
		}
		items = append(items, item)
	}

	subtotal := aggregator.Subtotal(items)
	tax := aggregator.Tax(subtotal)
	index, _ := order.StageIndex(status)

	return OrderResponse{
		ID:              row.id,
		BuyerName:       row.buyerName,
		BuyerEmail:      row.buyerEmail,
		DeliveryAddress: row.deliveryAddress,
		Status:          status.String(),
		StatusLabel:     order.StageLabel(status),
		ProgressIndex:   index,
		StageCount:      order.StageCount,
		Items:           itemRows,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           subtotal + tax,
	}, nil
}
