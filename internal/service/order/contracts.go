package order

import (
	"context"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
)

type orderRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, openOnly bool) ([]domain.Order, error)
	Create(ctx context.Context, o *domain.Order) error
	Update(ctx context.Context, o *domain.Order) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// priceCatalog resolves the service an order is priced by.
type priceCatalog interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.LaundryService, error)
}
