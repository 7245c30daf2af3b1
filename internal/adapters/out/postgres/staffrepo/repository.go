package staffrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB, tracker aggregateTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new staff account to the database.
// The unique index on email rejects duplicate registrations at the store level.
func (r *GormStaffRepository) Add(ctx context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// GetByEmail retrieves a staff account by its email address.
func (r *GormStaffRepository) GetByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
