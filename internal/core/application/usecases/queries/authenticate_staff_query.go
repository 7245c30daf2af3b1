package queries

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAuthenticateStaffQueryIsNotConstructed = errors.New(
		"AuthenticateStaffQuery must be created via NewAuthenticateStaffQuery constructor",
	)

	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthenticateStaffQuery checks a staff member's credentials and, on success,
// returns the account's identity and bound role.
//
// Example:
//
//	query, _ := NewAuthenticateStaffQuery("alex@warehouse.sg", "s3cret")
//	handler := NewAuthenticateStaffQueryHandler(db)
//
//	account, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrInvalidCredentials) {
//	    // reject the login
//	}
type AuthenticateStaffQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateStaffQuery creates a credential check query.
// Validates that both email and password are present.
func NewAuthenticateStaffQuery(email, password string) (AuthenticateStaffQuery, error) {
	if email == "" {
		return AuthenticateStaffQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return AuthenticateStaffQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateStaffQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateStaffQueryIsNotConstructed if validation fails.
func (q AuthenticateStaffQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateStaffQueryIsNotConstructed)
}

// Email returns the email being authenticated.
func (q AuthenticateStaffQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify.
func (q AuthenticateStaffQuery) Password() string {
	return q.password
}

// StaffResponse represents an authenticated staff identity.
// The password hash never leaves the handler.
type StaffResponse struct {
	ID    string
	Name  string
	Email string
	Role  string
}
