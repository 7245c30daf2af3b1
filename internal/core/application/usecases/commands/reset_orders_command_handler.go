package commands

import (
	"context"
)

// ResetOrdersCommandHandler handles the order store wipe.
// Items are removed before orders so the foreign key constraint holds for
// the whole transaction.
type ResetOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResetOrdersCommandHandler creates a handler for the reset operation.
// Requires an OrderUoWFactory for transactional persistence.
func NewResetOrdersCommandHandler(uowFactory OrderUoWFactory) ResetOrdersCommandHandler {
	return ResetOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset command. Deletes all orders and items atomically.
func (h *ResetOrdersCommandHandler) Handle(ctx context.Context, cmd ResetOrdersCommand) error {
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

	if err := uow.OrderRepository().RemoveAll(ctx); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
