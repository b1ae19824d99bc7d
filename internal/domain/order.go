package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the status of a laundry order.
type OrderStatus string

// List of possible order statuses
const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderReady      OrderStatus = "ready"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

var allowedOrderStatuses = [...]OrderStatus{
	OrderPending, OrderProcessing, OrderReady, OrderCompleted, OrderCancelled,
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order is a unit of laundry work for a customer.
type Order struct {
	ID           uuid.UUID
	CustomerID   *uuid.UUID
	CustomerName string
	ServiceID    *uuid.UUID
	Quantity     float64
	Total        float64
	Status       OrderStatus
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Open reports whether the order can still be linked to a pickup or delivery.
func (o Order) Open() bool {
	return o.Status != OrderCompleted && o.Status != OrderCancelled
}

// PartialOrderUpdate carries optional fields to update an order.
type PartialOrderUpdate struct {
	ID           uuid.UUID
	CustomerName *string
	ServiceID    *uuid.UUID
	Quantity     *float64
	Total        *float64
	Status       *OrderStatus
	Notes        *string
}

// Empty reports whether the update changes nothing.
func (u PartialOrderUpdate) Empty() bool {
	return u.CustomerName == nil && u.ServiceID == nil && u.Quantity == nil &&
		u.Total == nil && u.Status == nil && u.Notes == nil
}

// Apply returns a copy of o with the non-nil fields of u applied.
func (o Order) Apply(u PartialOrderUpdate) Order {
	if u.CustomerName != nil {
		o.CustomerName = *u.CustomerName
	}
	if u.ServiceID != nil {
		id := *u.ServiceID
		o.ServiceID = &id
	}
	if u.Quantity != nil {
		o.Quantity = *u.Quantity
	}
	if u.Total != nil {
		o.Total = *u.Total
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.Notes != nil {
		o.Notes = *u.Notes
	}
	return o
}
