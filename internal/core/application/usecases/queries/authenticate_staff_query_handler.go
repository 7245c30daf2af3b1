package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthenticateStaffQueryHandler verifies staff credentials against stored
// bcrypt hashes.
type AuthenticateStaffQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateStaffQueryHandler creates a handler for login queries.
// Requires a GORM database connection for query execution.
func NewAuthenticateStaffQueryHandler(db *gorm.DB) AuthenticateStaffQueryHandler {
	return AuthenticateStaffQueryHandler{db: db}
}

// Handle executes the credential check.
// Returns ErrInvalidCredentials when the email is unknown or the password
// does not match the stored hash.
func (h AuthenticateStaffQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateStaffQuery,
) (StaffResponse, error) {
	if err := query.Validate(); err != nil {
		return StaffResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			password_hash
		FROM staff
		WHERE email = ?
	`, query.Email()).Row()

	var id uuid.UUID
	var name, email, role string
	var passwordHash []byte

	err := row.Scan(&id, &name, &email, &role, &passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return StaffResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return StaffResponse{}, err
	}

	if bcrypt.CompareHashAndPassword(passwordHash, []byte(query.Password())) != nil {
		return StaffResponse{}, ErrInvalidCredentials
	}

	return StaffResponse{
		ID:    id.String(),
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}
