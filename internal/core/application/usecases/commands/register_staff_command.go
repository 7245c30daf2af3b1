package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRegisterStaffCommandIsNotConstructed = errors.New(
		"RegisterStaffCommand must be created via NewRegisterStaffCommand constructor",
	)
)

// RegisterStaffCommand represents a request to create a staff account bound
// to a single actor role. The plaintext password travels only inside the
// command; it is hashed before anything is persisted.
//
// Example:
//
//	cmd, err := NewRegisterStaffCommand("Alex Tan", "alex@warehouse.sg", order.Picker, "s3cret")
//	if err != nil {
//	    return fmt.Errorf("invalid signup data: %w", err)
//	}
//
//	handler := NewRegisterStaffCommandHandler(uowFactory)
//	account, err := handler.Handle(ctx, cmd)
type RegisterStaffCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	role     order.Role
	password string

	guard guard.ConstructorGuard
}

// NewRegisterStaffCommand creates a command to register a staff account.
// Validates that name, email, and password are present and the role is known.
func NewRegisterStaffCommand(name, email string, role order.Role, password string) (RegisterStaffCommand, error) {
	command := RegisterStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setEmail(email),
		command.setRole(role),
		command.setPassword(password),
	); err != nil {
		return RegisterStaffCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterStaffCommandIsNotConstructed if validation fails.
func (c RegisterStaffCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStaffCommandIsNotConstructed)
}

// Name returns the staff member's display name.
func (c RegisterStaffCommand) Name() string {
	return c.name
}

// Email returns the account email address.
func (c RegisterStaffCommand) Email() string {
	return c.email
}

// Role returns the actor role the account is bound to.
func (c RegisterStaffCommand) Role() order.Role {
	return c.role
}

// Password returns the plaintext password to hash.
func (c RegisterStaffCommand) Password() string {
	return c.password
}

func (c *RegisterStaffCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterStaffCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterStaffCommand) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RegisterStaffCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
