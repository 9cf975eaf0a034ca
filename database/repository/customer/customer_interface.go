package customerRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

// ErrNotFound is returned when no customer matches the given id.
var ErrNotFound = errors.New("customer not found")

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
}
