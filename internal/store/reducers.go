package store

import (
	"strings"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
)

// AddCustomer appends a customer.
func (s State) AddCustomer(c domain.Customer) State {
	s.Customers = appended(s.Customers, c)
	return s
}

// EmailTaken reports whether a customer already uses email (case-insensitive).
func (s State) EmailTaken(email string) bool {
	_, ok := find(s.Customers, func(c domain.Customer) bool {
		return strings.EqualFold(c.Email, email)
	})
	return ok
}

// AddOrder appends an order.
func (s State) AddOrder(o domain.Order) State {
	s.Orders = appended(s.Orders, o)
	return s
}

// UpdateOrder replaces the order with the same id. Unknown ids are a no-op.
func (s State) UpdateOrder(o domain.Order) State {
	s.Orders = replaced(s.Orders, orderID(o.ID), func(domain.Order) domain.Order { return o })
	return s
}

// DeleteOrder removes the order with the given id.
func (s State) DeleteOrder(id uuid.UUID) State {
	s.Orders = removed(s.Orders, orderID(id))
	return s
}

// AddService appends a laundry service.
func (s State) AddService(svc domain.LaundryService) State {
	s.Services = appended(s.Services, svc)
	return s
}

// UpdateService replaces the laundry service with the same id. The default flag
// of an existing service is kept.
func (s State) UpdateService(svc domain.LaundryService) State {
	s.Services = replaced(s.Services, serviceID(svc.ID), func(old domain.LaundryService) domain.LaundryService {
		svc.IsDefault = old.IsDefault
		return svc
	})
	return s
}

// DeleteService removes a non-default laundry service. Default services stay.
func (s State) DeleteService(id uuid.UUID) State {
	s.Services = removed(s.Services, func(svc domain.LaundryService) bool {
		return svc.ID == id && !svc.IsDefault
	})
	return s
}

// AddStaff appends a staff member.
func (s State) AddStaff(m domain.Staff) State {
	s.Staff = appended(s.Staff, m)
	return s
}

// UpdateStaff replaces the staff member with the same id. Courier names already
// copied onto pickups are not touched.
func (s State) UpdateStaff(m domain.Staff) State {
	s.Staff = replaced(s.Staff, staffID(m.ID), func(domain.Staff) domain.Staff { return m })
	return s
}

// DeleteStaff removes the staff member with the given id.
func (s State) DeleteStaff(id uuid.UUID) State {
	s.Staff = removed(s.Staff, staffID(id))
	return s
}

// AddPickup appends a pickup/delivery.
func (s State) AddPickup(p domain.PickupDelivery) State {
	s.Pickups = appended(s.Pickups, p)
	return s
}

// UpdatePickup replaces the pickup/delivery with the same id. Type and
// creation time of the stored record are kept.
func (s State) UpdatePickup(p domain.PickupDelivery) State {
	s.Pickups = replaced(s.Pickups, pickupID(p.ID), func(old domain.PickupDelivery) domain.PickupDelivery {
		p.Type = old.Type
		p.CreatedAt = old.CreatedAt
		return p
	})
	return s
}

// DeletePickup removes the pickup/delivery with the given id.
func (s State) DeletePickup(id uuid.UUID) State {
	s.Pickups = removed(s.Pickups, pickupID(id))
	return s
}

// AdvancePickup moves the pickup/delivery one step along its workflow.
func (s State) AdvancePickup(id uuid.UUID) State {
	s.Pickups = replaced(s.Pickups, pickupID(id), func(p domain.PickupDelivery) domain.PickupDelivery {
		p.Status = domain.NextStatus(p.Status, p.Type)
		return p
	})
	return s
}

// AssignCourier snapshots a courier onto a pickup/delivery and moves a pending
// record to assigned. Non-couriers and unknown ids leave the state unchanged.
func (s State) AssignCourier(pickup, courier uuid.UUID) State {
	m, ok := s.FindStaff(courier)
	if !ok || !m.IsCourier() {
		return s
	}
	s.Pickups = replaced(s.Pickups, pickupID(pickup), func(p domain.PickupDelivery) domain.PickupDelivery {
		id := m.ID
		p.CourierID = &id
		p.CourierName = m.Name
		if p.Status == domain.PickupPending {
			p.Status = domain.NextStatus(p.Status, p.Type)
		}
		return p
	})
	return s
}
