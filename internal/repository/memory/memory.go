// Package memory serves the repository contracts from an in-process store.
// It backs the service when no hosted database is configured.
package memory

import (
	"context"

	"github.com/google/uuid"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
	"laundry-service/internal/store"
)

// CustomerRepo is a store-backed customer repository.
type CustomerRepo struct{ st *store.Store }

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(st *store.Store) *CustomerRepo { return &CustomerRepo{st: st} }

// Get returns customer by its ID, or nil when it does not exist.
func (r *CustomerRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, ok := r.st.Snapshot().FindCustomer(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List returns customers newest first with optional pagination.
func (r *CustomerRepo) List(ctx context.Context, limit, offset *int) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := r.st.Snapshot().Customers
	out := make([]domain.Customer, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
	}
	return paginate(out, limit, offset), nil
}

// Create adds a customer. A duplicate email yields apperr.ErrConflict.
func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.st.Update(func(s store.State) (store.State, error) {
		if s.EmailTaken(c.Email) {
			return s, apperr.ErrConflict
		}
		return s.AddCustomer(*c), nil
	})
}

func paginate[T any](xs []T, limit, offset *int) []T {
	if offset != nil {
		if *offset >= len(xs) {
			return xs[:0]
		}
		xs = xs[*offset:]
	}
	if limit != nil && *limit < len(xs) {
		xs = xs[:*limit]
	}
	return xs
}

// OrderRepo is a store-backed order repository.
type OrderRepo struct{ st *store.Store }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(st *store.Store) *OrderRepo { return &OrderRepo{st: st} }

// Get returns order by its ID, or nil when it does not exist.
func (r *OrderRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o, ok := r.st.Snapshot().FindOrder(id)
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// List returns orders newest first; openOnly drops completed and cancelled ones.
func (r *OrderRepo) List(ctx context.Context, openOnly bool) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st := r.st.Snapshot()
	src := st.Orders
	if openOnly {
		src = st.OpenOrders()
	}
	out := make([]domain.Order, 0, len(src))
	for i := len(src) - 1; i >= 0; i-- {
		out = append(out, src[i])
	}
	return out, nil
}

// Create adds an order.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.st.Update(func(s store.State) (store.State, error) {
		return s.AddOrder(*o), nil
	})
}

// Update replaces an order and returns true if it existed.
func (r *OrderRepo) Update(ctx context.Context, o *domain.Order) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var found bool
	err := r.st.Update(func(s store.State) (store.State, error) {
		if _, found = s.FindOrder(o.ID); !found {
			return s, nil
		}
		return s.UpdateOrder(*o), nil
	})
	return found, err
}

// Delete removes an order and returns true if it existed.
func (r *OrderRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var found bool
	err := r.st.Update(func(s store.State) (store.State, error) {
		if _, found = s.FindOrder(id); !found {
			return s, nil
		}
		return s.DeleteOrder(id), nil
	})
	return found, err
}
