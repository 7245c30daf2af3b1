package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new fulfillment order.
// Encapsulates buyer details, the purchased items, and the status the order
// should start at. Creation requests may name any valid status; no role check
// happens at creation time.
//
// Example:
//
//	items := []order.Item{mouse, cable}
//	cmd, err := NewCreateOrderCommand("Jane Doe", "jane@example.com", "123 Orchard Road", items, order.Created)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	buyerName       string
	buyerEmail      string
	deliveryAddress string
	items           []order.Item
	initialStatus   order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the buyer fields are present, the item list is non-nil
// (empty is allowed), every item was properly constructed, and the initial
// status is a known lifecycle stage.
func NewCreateOrderCommand(
	buyerName, buyerEmail, deliveryAddress string,
	items []order.Item,
	initialStatus order.Status,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setBuyerName(buyerName),
		orderCommand.setBuyerEmail(buyerEmail),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setItems(items),
		orderCommand.setInitialStatus(initialStatus),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// BuyerName returns the buyer's display name.
func (c CreateOrderCommand) BuyerName() string {
	return c.buyerName
}

// BuyerEmail returns the buyer's email address.
func (c CreateOrderCommand) BuyerEmail() string {
	return c.buyerEmail
}

// DeliveryAddress returns the drop-off address for the order.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Items returns the purchased items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// InitialStatus returns the lifecycle stage the order starts at.
func (c CreateOrderCommand) InitialStatus() order.Status {
	return c.initialStatus
}

func (c *CreateOrderCommand) setBuyerName(buyerName string) error {
	if buyerName == "" {
		return errs.NewValueIsRequiredError("buyerName")
	}

	c.buyerName = buyerName
	return nil
}

func (c *CreateOrderCommand) setBuyerEmail(buyerEmail string) error {
	if buyerEmail == "" {
		return errs.NewValueIsRequiredError("buyerEmail")
	}

	c.buyerEmail = buyerEmail
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if items == nil {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setInitialStatus(initialStatus order.Status) error {
	if err := initialStatus.Validate(); err != nil {
		return err
	}

	c.initialStatus = initialStatus
	return nil
}
