package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff accounts.
type StaffRepository interface {
	// Add persists a new staff account. Emails are unique; adding a second
	// account with an existing email fails.
	Add(ctx context.Context, aggregate *staff.Staff) error

	// GetByEmail retrieves a staff account by its email address.
	// Returns errs.ObjectNotFoundError when no account carries the email.
	GetByEmail(ctx context.Context, email string) (*staff.Staff, error)
}
