//go:generate mockgen -source=contracts.go -destination=pickup_mocks_test.go -package=pickup

package pickup

import (
	"context"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
)

type pickupRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.PickupDelivery, error)
	Latest(ctx context.Context) (*domain.PickupDelivery, error)
	List(ctx context.Context, kind *domain.PickupKind) ([]domain.PickupDelivery, error)
	Create(ctx context.Context, p *domain.PickupDelivery) error
	Update(ctx context.Context, p *domain.PickupDelivery) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// staffDirectory resolves couriers for assignment.
type staffDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
}

// TransitionRecorder counts status transitions.
type TransitionRecorder interface {
	Observe(kind, to string)
}
