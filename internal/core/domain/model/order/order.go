package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a shipment order in the system. It is the aggregate root
// that carries the buyer details, the immutable item list, and the lifecycle
// status.
//
// Order follows these invariants:
//   - buyer name, buyer email, and delivery address are non-empty
//   - status is always one of the five defined stages
//   - status never regresses; it advances exactly one stage at a time
//   - the item set is immutable after creation
//   - can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the store-assigned identifier; zero until the order is persisted
	id kernel.OrderID

	// buyerName, buyerEmail, deliveryAddress are opaque strings at this layer
	buyerName       string
	buyerEmail      string
	deliveryAddress string

	// status represents the current stage in the order lifecycle
	status Status

	// items is the ordered, immutable line list
	items []Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts at
// the given initial status; callers without an explicit status pass Created.
//
// Items may be empty (no minimum-item rule exists) but must not be nil: a
// creation request without an item list is malformed.
//
// Example:
//
//	item, _ := order.NewItem("Wireless Mouse", 2, 25.99)
//	o, err := order.NewOrder("Jane Doe", "jane@example.com", "123 Orchard Road", []order.Item{item}, order.Created)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	buyerName, buyerEmail, deliveryAddress string,
	items []Item,
	initial Status,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setBuyerName(buyerName),
		o.setBuyerEmail(buyerEmail),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setStatus(initial),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// requires the store-assigned identifier; all other invariants are validated
// identically.
func RestoreOrder(
	id kernel.OrderID,
	buyerName, buyerEmail, deliveryAddress string,
	items []Item,
	status Status,
) (*Order, error) {
	o, err := NewOrder(buyerName, buyerEmail, deliveryAddress, items, status)
	if err != nil {
		return nil, err
	}

	if err = id.Validate(); err != nil {
		return nil, err
	}
	o.id = id

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call when reconstructing orders from persistence to ensure
// data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their store-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the store-assigned identifier. The zero OrderID means the
// order has not been persisted yet.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// BuyerName returns the buyer's name.
func (o *Order) BuyerName() string {
	return o.buyerName
}

// BuyerEmail returns the buyer's email address.
func (o *Order) BuyerEmail() string {
	return o.buyerEmail
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current lifecycle stage of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order lines. The slice is a copy; the item set of a
// constructed order cannot be mutated.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Advance moves the order to the requested target status on behalf of the
// acting role. Preconditions are checked in order, each a distinct failure:
//
//  1. target must be a member of the status enum
//  2. target must be exactly the next stage after the current status;
//     jumps, regressions, and moves out of the terminal stage are rejected
//     with IllegalTransitionError
//  3. actor must be the role bound to the target stage; otherwise
//     RoleNotAuthorizedError, even when the target is the correct next stage
//
// On success the in-memory status advances. Persisting the change (and
// resolving concurrent attempts) is the repository's concern.
func (o *Order) Advance(actor Role, target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	next, ok := NextStatus(o.status)
	if !ok || target != next {
		return NewIllegalTransitionError(o.status, target)
	}

	required, ok := RoleFor(target)
	if !ok || actor != required {
		return NewRoleNotAuthorizedError(actor, required, target)
	}

	o.status = target
	return nil
}

// setBuyerName validates and sets the buyer name.
// This is a private method used only during construction.
func (o *Order) setBuyerName(buyerName string) error {
	if buyerName == "" {
		return errs.NewValueIsRequiredError("buyerName")
	}
	o.buyerName = buyerName
	return nil
}

// setBuyerEmail validates and sets the buyer email.
// This is a private method used only during construction.
func (o *Order) setBuyerEmail(buyerEmail string) error {
	if buyerEmail == "" {
		return errs.NewValueIsRequiredError("buyerEmail")
	}
	o.buyerEmail = buyerEmail
	return nil
}

// setDeliveryAddress validates and sets the delivery address.
// This is a private method used only during construction.
func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

// setItems validates and sets the item list. A nil list is rejected; an
// empty list is accepted. The list is copied so later mutation of the
// caller's slice cannot reach the aggregate.
func (o *Order) setItems(items []Item) error {
	if items == nil {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setStatus validates and sets the initial status.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
