package staffRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

// ErrNotFound is returned when no staff member matches the given id.
var ErrNotFound = errors.New("staff member not found")

// StaffRepository defines data access for staff members and their weekly
// working hours.
type StaffRepository interface {
	Create(ctx context.Context, staff *models.StaffMember) error
	GetByID(ctx context.Context, id string) (*models.StaffMember, error)
	GetAll(ctx context.Context) ([]models.StaffMember, error)
	UpdateWorkingHours(ctx context.Context, staffID string, entries []models.WorkingHoursEntry) error
	Delete(ctx context.Context, id string) error
}
