package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object describing one line of an order. Items belong to
// exactly one order, have no independent lifecycle, and are immutable after
// the order is created: no line is added, removed, or re-priced later.
//
// Invariants:
//   - product name is non-empty
//   - quantity is a positive integer
//   - unit price is non-negative
type Item struct {
	productName string
	quantity    int
	price       float64

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
//
// Example:
//
//	item, err := order.NewItem("Wireless Mouse", 2, 25.99)
//	if err != nil {
//	    return fmt.Errorf("invalid item: %w", err)
//	}
//	fmt.Println(item.LineTotal()) // 51.98
func NewItem(productName string, quantity int, price float64) (Item, error) {
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%v is negative", price),
		)
	}

	return Item{
		productName: productName,
		quantity:    quantity,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductName returns the product name of the line.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// LineTotal returns quantity multiplied by unit price.
func (i Item) LineTotal() float64 {
	return float64(i.quantity) * i.price
}
