package catalog

import (
	"context"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
)

type serviceRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.LaundryService, error)
	List(ctx context.Context) ([]domain.LaundryService, error)
	Create(ctx context.Context, s *domain.LaundryService) error
	Update(ctx context.Context, s *domain.LaundryService) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
