package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrResetOrdersCommandIsNotConstructed = errors.New(
		"ResetOrdersCommand must be created via NewResetOrdersCommand constructor",
	)
)

// ResetOrdersCommand wipes every stored order and its items. Intended for
// demo environments and test fixtures; there is no undo.
//
// Example:
//
//	cmd := NewResetOrdersCommand()
//	handler := NewResetOrdersCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Reset failed: %v", err)
//	}
type ResetOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewResetOrdersCommand creates a command to wipe the order store.
// This is a parameterless command.
func NewResetOrdersCommand() ResetOrdersCommand {
	command := ResetOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrResetOrdersCommandIsNotConstructed if validation fails.
func (c *ResetOrdersCommand) Validate() error {
	return c.guard.Validate(ErrResetOrdersCommandIsNotConstructed)
}
