package commands

import (
	"context"
)

// AdvanceOrderCommandHandler handles the business logic for order transitions.
// Loads the order, lets the aggregate decide whether the transition is legal
// and authorized, then persists the new status with a compare-and-swap guard
// so that concurrent transitions of the same order cannot both succeed.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for order transition operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order transition command.
//
// Failure modes surface in a fixed sequence: a missing order before a
// malformed target status, a malformed target before an invalid transition,
// an invalid transition before a role mismatch, and a concurrent update only
// when everything else held but the stored status moved between the read and
// the write.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expected := aggregate.Status()
	if err = aggregate.Advance(cmd.Actor(), cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, cmd.OrderID(), expected, aggregate.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
