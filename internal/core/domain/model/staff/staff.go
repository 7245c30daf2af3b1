package staff

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrStaffIsNotConstructed is returned when a Staff instance was not created
	// through the NewStaff or RestoreStaff factory methods.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff or RestoreStaff constructor")
)

// Staff represents a warehouse or logistics operator account. Each account
// is bound to exactly one actor role; the dashboards a staff member sees and
// the transitions they may cause follow from that role.
//
// Passwords are stored only as bcrypt hashes; the plaintext never leaves the
// constructor.
type Staff struct {
	id           kernel.UUID
	name         string
	email        string
	role         order.Role
	passwordHash []byte

	isConstructed bool
}

// NewStaff creates a staff account, hashing the supplied plaintext password
// with bcrypt at the default cost.
//
// Example:
//
//	id := kernel.NewUUID()
//	member, err := staff.NewStaff(id, "Alex Tan", "alex@warehouse.sg", order.Picker, "s3cret")
//	if err != nil {
//	    return fmt.Errorf("invalid staff data: %w", err)
//	}
func NewStaff(id kernel.UUID, name, email string, role order.Role, password string) (*Staff, error) {
	s := &Staff{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setEmail(email),
		s.setRole(role),
	); err != nil {
		return nil, err
	}

	if password == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	s.passwordHash = hash

	return s, nil
}

// RestoreStaff reconstructs a staff account from persistence. The password
// hash is taken as stored; no hashing happens here.
func RestoreStaff(id kernel.UUID, name, email string, role order.Role, passwordHash []byte) (*Staff, error) {
	s := &Staff{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setEmail(email),
		s.setRole(role),
	); err != nil {
		return nil, err
	}

	if len(passwordHash) == 0 {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	s.passwordHash = passwordHash

	return s, nil
}

// Validate ensures the Staff instance was properly constructed through a
// factory method.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}

	return nil
}

// ID returns the account's unique identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the staff member's display name.
func (s *Staff) Name() string {
	return s.name
}

// Email returns the account's email address. Emails are unique per account.
func (s *Staff) Email() string {
	return s.email
}

// Role returns the actor role bound to the account.
func (s *Staff) Role() order.Role {
	return s.role
}

// PasswordHash returns the stored bcrypt hash.
func (s *Staff) PasswordHash() []byte {
	hash := make([]byte, len(s.passwordHash))
	copy(hash, s.passwordHash)
	return hash
}

// VerifyPassword reports whether the supplied plaintext matches the stored
// hash.
func (s *Staff) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
}

// setID validates and sets the account identifier.
// This is a private method used only during construction.
func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setName validates and sets the display name.
// This is a private method used only during construction.
func (s *Staff) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

// setEmail validates and sets the email address.
// This is a private method used only during construction.
func (s *Staff) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	s.email = email
	return nil
}

// setRole validates and sets the bound role.
// This is a private method used only during construction.
func (s *Staff) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}
