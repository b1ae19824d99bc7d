package memory

import (
	"context"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
	"laundry-service/internal/store"
)

// PickupRepo is a store-backed pickup/delivery repository.
type PickupRepo struct{ st *store.Store }

// NewPickupRepo creates a new PickupRepo.
func NewPickupRepo(st *store.Store) *PickupRepo { return &PickupRepo{st: st} }

// Get returns pickup/delivery by its ID, or nil when it does not exist.
func (r *PickupRepo) Get(ctx context.Context, id uuid.UUID) (*domain.PickupDelivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := r.st.Snapshot().FindPickup(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Latest returns the most recently created pickup/delivery, or nil when there is none.
func (r *PickupRepo) Latest(ctx context.Context) (*domain.PickupDelivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := r.st.Snapshot().LatestPickup()
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// List returns pickups/deliveries newest first, optionally filtered by kind.
func (r *PickupRepo) List(ctx context.Context, kind *domain.PickupKind) ([]domain.PickupDelivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := r.st.Snapshot().PickupsNewestFirst()
	if kind == nil {
		return all, nil
	}
	out := make([]domain.PickupDelivery, 0, len(all))
	for _, p := range all {
		if p.Type == *kind {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create adds a pickup/delivery.
func (r *PickupRepo) Create(ctx context.Context, p *domain.PickupDelivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.st.Update(func(st store.State) (store.State, error) {
		return st.AddPickup(*p), nil
	})
}

// Update replaces a pickup/delivery and returns true if it existed.
func (r *PickupRepo) Update(ctx context.Context, p *domain.PickupDelivery) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var found bool
	err := r.st.Update(func(st store.State) (store.State, error) {
		if _, found = st.FindPickup(p.ID); !found {
			return st, nil
		}
		return st.UpdatePickup(*p), nil
	})
	return found, err
}

// Delete removes a pickup/delivery and returns true if it existed.
func (r *PickupRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var found bool
	err := r.st.Update(func(st store.State) (store.State, error) {
		if _, found = st.FindPickup(id); !found {
			return st, nil
		}
		return st.DeletePickup(id), nil
	})
	return found, err
}
