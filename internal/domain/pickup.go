package domain

import (
	"time"

	"github.com/google/uuid"
)

type (
	// PickupKind tells a collection from a customer apart from a drop-off.
	PickupKind string
	// PickupStatus is a step of the pickup/delivery workflow.
	PickupStatus string
)

// List of pickup kinds
const (
	KindPickup   PickupKind = "pickup"
	KindDelivery PickupKind = "delivery"
)

// List of possible pickup/delivery statuses
const (
	PickupPending   PickupStatus = "pending"
	PickupAssigned  PickupStatus = "assigned"
	PickupEnroute   PickupStatus = "enroute"
	PickupArrived   PickupStatus = "arrived"
	PickupPicked    PickupStatus = "picked"
	PickupTransit   PickupStatus = "transit"
	PickupCompleted PickupStatus = "completed"
)

// PickupDelivery is a scheduled collection or drop-off of laundry.
// CourierName is a snapshot taken at assignment time.
type PickupDelivery struct {
	ID            uuid.UUID
	Type          PickupKind
	Status        PickupStatus
	CustomerName  string
	CustomerPhone string
	Address       string
	Notes         string
	CourierID     *uuid.UUID
	CourierName   string
	OrderID       *uuid.UUID
	ScheduledDate *time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
}

// PartialPickupUpdate carries optional fields to update a pickup/delivery.
// A nil field means "do not change" that attribute.
type PartialPickupUpdate struct {
	ID            uuid.UUID
	Status        *PickupStatus
	CustomerName  *string
	CustomerPhone *string
	Address       *string
	Notes         *string
	OrderID       *uuid.UUID
	ScheduledDate *time.Time
}

// Empty reports whether the update changes nothing.
func (u PartialPickupUpdate) Empty() bool {
	return u.Status == nil && u.CustomerName == nil && u.CustomerPhone == nil &&
		u.Address == nil && u.Notes == nil && u.OrderID == nil && u.ScheduledDate == nil
}

// Apply returns a copy of p with the non-nil fields of u applied.
func (p PickupDelivery) Apply(u PartialPickupUpdate) PickupDelivery {
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.CustomerName != nil {
		p.CustomerName = *u.CustomerName
	}
	if u.CustomerPhone != nil {
		p.CustomerPhone = *u.CustomerPhone
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.Notes != nil {
		p.Notes = *u.Notes
	}
	if u.OrderID != nil {
		id := *u.OrderID
		p.OrderID = &id
	}
	if u.ScheduledDate != nil {
		d := *u.ScheduledDate
		p.ScheduledDate = &d
	}
	return p
}

// PickupStatusReport is what the dashboard polls to show the current pickup state.
// Status is a PickupStatus value or "not_found".
type PickupStatusReport struct {
	PickupID    *uuid.UUID
	Type        PickupKind
	Status      string
	CourierName string
	Message     string
	CreatedAt   *time.Time
}

// StatusNotFound is reported for an unknown pickup id.
const StatusNotFound = "not_found"
