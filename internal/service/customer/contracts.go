package customer

import (
	"context"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
)

// customerRepository defines storage operations required by the business layer.
type customerRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
}
