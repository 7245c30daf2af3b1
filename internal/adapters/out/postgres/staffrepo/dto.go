// Package staffrepo provides data transfer objects and mapping functions for
// staff account persistence.
package staffrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO represents the database structure for persisting staff accounts.
// Emails carry a unique index; the password is stored only as a bcrypt hash.
type StaffDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Role         string
	PasswordHash []byte
}

// TableName specifies the database table name for staff entities.
func (StaffDTO) TableName() string {
	return "staff"
}

// fromDomain converts a staff domain aggregate to its database representation.
func fromDomain(aggregate *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Role:         aggregate.Role().String(),
		PasswordHash: aggregate.PasswordHash(),
	}
}

// toDomain converts a database DTO to a staff domain aggregate.
func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := order.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(id, dto.Name, dto.Email, role, dto.PasswordHash)
}
