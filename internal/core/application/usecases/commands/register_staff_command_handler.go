package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when a signup names an email that
// another staff account already carries.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterStaffCommandHandler handles staff account creation.
// Rejects duplicate emails and stores only the bcrypt hash of the password.
type RegisterStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewRegisterStaffCommandHandler creates a handler for staff registration.
// Requires a StaffUoWFactory for transactional persistence.
func NewRegisterStaffCommandHandler(uowFactory StaffUoWFactory) RegisterStaffCommandHandler {
	return RegisterStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the created account.
// Returns ErrEmailAlreadyRegistered when the email is taken.
func (h *RegisterStaffCommandHandler) Handle(ctx context.Context, cmd RegisterStaffCommand) (*staff.Staff, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()

	_, err := staffRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	account, err := staff.NewStaff(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Role(), cmd.Password())
	if err != nil {
		return nil, err
	}

	if err = staffRepo.Add(ctx, account); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return account, nil
}
