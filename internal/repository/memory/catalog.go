package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
	"laundry-service/internal/store"
)

// ServiceRepo is a store-backed laundry service catalog.
type ServiceRepo struct{ st *store.Store }

// NewServiceRepo creates a new ServiceRepo.
func NewServiceRepo(st *store.Store) *ServiceRepo { return &ServiceRepo{st: st} }

// Get returns laundry service by its ID, or nil when it does not exist.
func (r *ServiceRepo) Get(ctx context.Context, id uuid.UUID) (*domain.LaundryService, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, ok := r.st.Snapshot().FindService(id)
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// List returns every laundry service, defaults first, then by name.
func (r *ServiceRepo) List(ctx context.Context) ([]domain.LaundryService, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src := r.st.Snapshot().Services
	out := make([]domain.LaundryService, len(src))
	copy(out, src)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Create adds a laundry service.
func (r *ServiceRepo) Create(ctx context.Context, s *domain.LaundryService) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.st.Update(func(st store.State) (store.State, error) {
		return st.AddService(*s), nil
	})
}

// Update replaces a laundry service and returns true if it existed.
func (r *ServiceRepo) Update(ctx context.Context, s *domain.LaundryService) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var found bool
	err := r.st.Update(func(st store.State) (store.State, error) {
		if _, found = st.FindService(s.ID); !found {
			return st, nil
		}
		return st.UpdateService(*s), nil
	})
	return found, err
}

// Delete removes a non-default laundry service and returns true if one was removed.
func (r *ServiceRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var removed bool
	err := r.st.Update(func(st store.State) (store.State, error) {
		svc, ok := st.FindService(id)
		removed = ok && !svc.IsDefault
		return st.DeleteService(id), nil
	})
	return removed, err
}
