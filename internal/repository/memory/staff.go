package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
	"laundry-service/internal/store"
)

// StaffRepo is a store-backed staff repository.
type StaffRepo struct{ st *store.Store }

// NewStaffRepo creates a new StaffRepo.
func NewStaffRepo(st *store.Store) *StaffRepo { return &StaffRepo{st: st} }

// Get returns staff member by its ID, or nil when it does not exist.
func (r *StaffRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, ok := r.st.Snapshot().FindStaff(id)
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// List returns staff ordered by name, optionally filtered by role.
func (r *StaffRepo) List(ctx context.Context, role *domain.StaffRole) ([]domain.Staff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st := r.st.Snapshot()
	var out []domain.Staff
	switch {
	case role == nil:
		out = append(out, st.Staff...)
	case *role == domain.RoleCourier:
		out = st.Couriers()
	default:
		for _, m := range st.Staff {
			if m.Role == *role {
				out = append(out, m)
			}
		}
	}
	if out == nil {
		out = make([]domain.Staff, 0)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Create adds a staff member.
func (r *StaffRepo) Create(ctx context.Context, s *domain.Staff) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.st.Update(func(st store.State) (store.State, error) {
		return st.AddStaff(*s), nil
	})
}

// Update replaces a staff member and returns true if it existed.
func (r *StaffRepo) Update(ctx context.Context, s *domain.Staff) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var found bool
	err := r.st.Update(func(st store.State) (store.State, error) {
		if _, found = st.FindStaff(s.ID); !found {
			return st, nil
		}
		return st.UpdateStaff(*s), nil
	})
	return found, err
}

// Delete removes a staff member and returns true if it existed.
func (r *StaffRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var found bool
	err := r.st.Update(func(st store.State) (store.State, error) {
		if _, found = st.FindStaff(id); !found {
			return st, nil
		}
		return st.DeleteStaff(id), nil
	})
	return found, err
}
