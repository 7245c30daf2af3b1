package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand represents a request to move an order one stage forward
// in its lifecycle on behalf of an acting role.
//
// Example:
//
//	id, _ := kernel.OrderIDFromInt64(42)
//	cmd, err := NewAdvanceOrderCommand(id, order.Picker, order.Picked)
//	if err != nil {
//	    return fmt.Errorf("invalid advance request: %w", err)
//	}
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("advance failed: %w", err)
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	actor   order.Role
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
// Validates that the order ID is assigned and the acting role is known. The
// target status is deliberately carried unchecked: the aggregate verifies it
// against the lifecycle only after the order has been loaded, so a request
// naming a missing order reports the missing order, not the bad target.
func NewAdvanceOrderCommand(orderID kernel.OrderID, actor order.Role, target order.Status) (AdvanceOrderCommand, error) {
	command := AdvanceOrderCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Actor returns the role causing the transition.
func (c AdvanceOrderCommand) Actor() order.Role {
	return c.actor
}

// Target returns the stage the order should move into.
func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setActor(actor order.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
