// Package store keeps the dashboard's session state as an explicit value.
//
// State is never mutated in place: every reducer returns a new State that
// shares untouched slices with its input. Store serializes access to the
// current State for concurrent callers.
package store

import (
	"sort"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
)

// State is the full set of entities the dashboard works with.
type State struct {
	Customers []domain.Customer
	Orders    []domain.Order
	Services  []domain.LaundryService
	Staff     []domain.Staff
	Pickups   []domain.PickupDelivery
}

func appended[T any](xs []T, x T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

func replaced[T any](xs []T, match func(T) bool, fn func(T) T) []T {
	for i, x := range xs {
		if !match(x) {
			continue
		}
		out := make([]T, len(xs))
		copy(out, xs)
		out[i] = fn(x)
		return out
	}
	return xs
}

func removed[T any](xs []T, match func(T) bool) []T {
	for i, x := range xs {
		if !match(x) {
			continue
		}
		out := make([]T, 0, len(xs)-1)
		out = append(out, xs[:i]...)
		return append(out, xs[i+1:]...)
	}
	return xs
}

func find[T any](xs []T, match func(T) bool) (T, bool) {
	for _, x := range xs {
		if match(x) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

func filtered[T any](xs []T, keep func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

func customerID(id uuid.UUID) func(domain.Customer) bool {
	return func(c domain.Customer) bool { return c.ID == id }
}

func orderID(id uuid.UUID) func(domain.Order) bool {
	return func(o domain.Order) bool { return o.ID == id }
}

func serviceID(id uuid.UUID) func(domain.LaundryService) bool {
	return func(s domain.LaundryService) bool { return s.ID == id }
}

func staffID(id uuid.UUID) func(domain.Staff) bool {
	return func(s domain.Staff) bool { return s.ID == id }
}

func pickupID(id uuid.UUID) func(domain.PickupDelivery) bool {
	return func(p domain.PickupDelivery) bool { return p.ID == id }
}

// FindCustomer returns the customer with the given id.
func (s State) FindCustomer(id uuid.UUID) (domain.Customer, bool) {
	return find(s.Customers, customerID(id))
}

// FindOrder returns the order with the given id.
func (s State) FindOrder(id uuid.UUID) (domain.Order, bool) {
	return find(s.Orders, orderID(id))
}

// FindService returns the laundry service with the given id.
func (s State) FindService(id uuid.UUID) (domain.LaundryService, bool) {
	return find(s.Services, serviceID(id))
}

// FindStaff returns the staff member with the given id.
func (s State) FindStaff(id uuid.UUID) (domain.Staff, bool) {
	return find(s.Staff, staffID(id))
}

// FindPickup returns the pickup/delivery with the given id.
func (s State) FindPickup(id uuid.UUID) (domain.PickupDelivery, bool) {
	return find(s.Pickups, pickupID(id))
}

// OpenOrders lists orders that are neither completed nor cancelled.
func (s State) OpenOrders() []domain.Order {
	return filtered(s.Orders, domain.Order.Open)
}

// Couriers lists staff members with the courier role.
func (s State) Couriers() []domain.Staff {
	return filtered(s.Staff, domain.Staff.IsCourier)
}

// LatestPickup returns the most recently created pickup/delivery.
func (s State) LatestPickup() (domain.PickupDelivery, bool) {
	var (
		latest domain.PickupDelivery
		ok     bool
	)
	for _, p := range s.Pickups {
		if !ok || p.CreatedAt.After(latest.CreatedAt) {
			latest, ok = p, true
		}
	}
	return latest, ok
}

// PickupsNewestFirst returns pickups ordered by creation time, newest first.
func (s State) PickupsNewestFirst() []domain.PickupDelivery {
	out := make([]domain.PickupDelivery, len(s.Pickups))
	copy(out, s.Pickups)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
