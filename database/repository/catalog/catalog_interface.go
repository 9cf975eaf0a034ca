package catalogRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

// ErrNotFound is returned when no service matches the given id.
var ErrNotFound = errors.New("service not found")

// CatalogRepository defines data access for the service catalogue. The
// booking engine only ever reads duration and price from it.
type CatalogRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
	Delete(ctx context.Context, id string) error
}
