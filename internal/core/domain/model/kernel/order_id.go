package kernel

import (
	"strconv"

	"fulfillment/internal/pkg/errs"
)

// ErrOrderIDIsNotAssigned indicates an OrderID that was never assigned by the
// order store. The zero value of OrderID is deliberately invalid.
var ErrOrderIDIsNotAssigned = errs.NewValueIsRequiredError(
	"OrderID must be assigned by the store or created via OrderIDFromInt64",
)

// OrderID is a value object wrapping the integer key the order store assigns
// when an order is created. The identifier is stable for the life of the
// order and is the handle every transition and tracking request uses.
//
// The zero value is invalid: an order that has not been persisted yet has no
// identifier. Construct instances with OrderIDFromInt64 when reconstructing
// orders from persistence or parsing identifiers from external input.
//
// Example:
//
//	id, err := kernel.OrderIDFromInt64(42)
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
//	fmt.Println(id.String()) // "42"
type OrderID struct {
	id int64
}

// OrderIDFromInt64 creates an OrderID from a raw integer key.
// Returns an error if the value is not positive.
func OrderIDFromInt64(raw int64) (OrderID, error) {
	newID := OrderID{id: raw}
	if err := newID.Validate(); err != nil {
		return OrderID{}, err
	}
	return newID, nil
}

// OrderIDFromString parses an OrderID from its decimal string form.
// Used when identifiers arrive via URL path or query parameters.
func OrderIDFromString(s string) (OrderID, error) {
	raw, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return OrderIDFromInt64(raw)
}

// Int64 returns the underlying integer key.
func (o OrderID) Int64() int64 {
	return o.id
}

// String returns the decimal representation of the identifier.
func (o OrderID) String() string {
	return strconv.FormatInt(o.id, 10)
}

// IsEqual compares two order identifiers by value.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.id == other.id
}

// Validate checks that the identifier has been assigned.
// Returns ErrOrderIDIsNotAssigned for the zero value and any non-positive key.
func (o OrderID) Validate() error {
	if o.id <= 0 {
		return ErrOrderIDIsNotAssigned
	}
	return nil
}
