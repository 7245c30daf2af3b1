// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is assigned by the database on insert; the status is stored
// as its wire string and indexed for the per-stage dashboard queries.
type OrderDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	BuyerName       string
	BuyerEmail      string
	DeliveryAddress string
	Status          string    `gorm:"index"`
	Items           []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one purchased line of an order.
type ItemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index"`
	ProductName string
	Quantity    int
	Price       float64
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an order domain aggregate to its database representation.
// An unpersisted aggregate maps to a zero ID so the database assigns one.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Int64(),
		BuyerName:       aggregate.BuyerName(),
		BuyerEmail:      aggregate.BuyerEmail(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Status:          aggregate.Status().String(),
		Items:           itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromInt64(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductName, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.BuyerName, dto.BuyerEmail, dto.DeliveryAddress, items, status)
}
