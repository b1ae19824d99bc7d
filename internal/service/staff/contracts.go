package staff

import (
	"context"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
)

type staffRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
	List(ctx context.Context, role *domain.StaffRole) ([]domain.Staff, error)
	Create(ctx context.Context, s *domain.Staff) error
	Update(ctx context.Context, s *domain.Staff) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
