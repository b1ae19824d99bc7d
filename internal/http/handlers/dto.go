package handlers

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
)

// dateTime accepts RFC 3339 timestamps as well as plain dates from date pickers.
type dateTime struct{ time.Time }

func (d *dateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *dateTime) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

type customerDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type createCustomerRequest struct {
	Name    string `json:"name" validate:"notblank,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=50"`
	Address string `json:"address" validate:"max=500"`
}

type orderDTO struct {
	ID           uuid.UUID          `json:"id"`
	CustomerID   *uuid.UUID         `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	ServiceID    *uuid.UUID         `json:"service_id"`
	Quantity     float64            `json:"quantity"`
	Total        float64            `json:"total"`
	Status       domain.OrderStatus `json:"status"`
	Notes        string             `json:"notes"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type createOrderRequest struct {
	CustomerID   *uuid.UUID         `json:"customer_id"`
	CustomerName string             `json:"customer_name" validate:"notblank,max=200"`
	ServiceID    *uuid.UUID         `json:"service_id"`
	Quantity     float64            `json:"quantity" validate:"gt=0"`
	Total        *float64           `json:"total" validate:"omitempty,gte=0"`
	Status       domain.OrderStatus `json:"status" validate:"omitempty,oneof=pending processing ready completed cancelled"`
	Notes        string             `json:"notes" validate:"max=1000"`
}

type editOrderRequest struct {
	ID           uuid.UUID           `json:"id"`
	CustomerName *string             `json:"customer_name,omitempty" validate:"omitempty,notblank,max=200"`
	ServiceID    *uuid.UUID          `json:"service_id,omitempty"`
	Quantity     *float64            `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Total        *float64            `json:"total,omitempty" validate:"omitempty,gte=0"`
	Status       *domain.OrderStatus `json:"status,omitempty" validate:"omitempty,oneof=pending processing ready completed cancelled"`
	Notes        *string             `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type serviceDTO struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Price     float64            `json:"price"`
	Unit      domain.ServiceUnit `json:"unit"`
	Active    bool               `json:"active"`
	IsDefault bool               `json:"is_default"`
	CreatedAt time.Time          `json:"created_at"`
}

type createServiceRequest struct {
	Name   string             `json:"name" validate:"notblank,max=120"`
	Price  *float64           `json:"price" validate:"required,gte=0"`
	Unit   domain.ServiceUnit `json:"unit" validate:"omitempty,oneof=kg piece item"`
	Active *bool              `json:"active"`
}

type updateServiceRequest struct {
	ID     uuid.UUID           `json:"id"`
	Name   *string             `json:"name,omitempty" validate:"omitempty,notblank,max=120"`
	Price  *float64            `json:"price,omitempty" validate:"omitempty,gte=0"`
	Unit   *domain.ServiceUnit `json:"unit,omitempty" validate:"omitempty,oneof=kg piece item"`
	Active *bool               `json:"active,omitempty"`
}

type staffDTO struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Phone     string           `json:"phone"`
	Role      domain.StaffRole `json:"role"`
	Active    bool             `json:"active"`
	CreatedAt time.Time        `json:"created_at"`
}

type createStaffRequest struct {
	Name   string           `json:"name" validate:"notblank,max=200"`
	Phone  string           `json:"phone" validate:"max=50"`
	Role   domain.StaffRole `json:"role" validate:"omitempty,oneof=admin staff courier"`
	Active *bool            `json:"active"`
}

type updateStaffRequest struct {
	Name   *string           `json:"name,omitempty" validate:"omitempty,notblank,max=200"`
	Phone  *string           `json:"phone,omitempty" validate:"omitempty,max=50"`
	Role   *domain.StaffRole `json:"role,omitempty" validate:"omitempty,oneof=admin staff courier"`
	Active *bool             `json:"active,omitempty"`
}

type pickupDTO struct {
	ID            uuid.UUID           `json:"id"`
	Type          domain.PickupKind   `json:"type"`
	Status        domain.PickupStatus `json:"status"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	Address       string              `json:"address"`
	Notes         string              `json:"notes"`
	CourierID     *uuid.UUID          `json:"courier_id"`
	CourierName   string              `json:"courier_name"`
	OrderID       *uuid.UUID          `json:"order_id"`
	ScheduledDate *time.Time          `json:"scheduled_date"`
	CompletedAt   *time.Time          `json:"completed_at"`
	CreatedAt     time.Time           `json:"created_at"`
}

type createPickupRequest struct {
	Type          domain.PickupKind   `json:"type" validate:"required,oneof=pickup delivery"`
	Status        domain.PickupStatus `json:"status" validate:"omitempty,oneof=pending assigned enroute arrived picked transit completed"`
	CustomerName  string              `json:"customer_name" validate:"notblank,max=200"`
	CustomerPhone string              `json:"customer_phone" validate:"notblank,max=50"`
	Address       string              `json:"address" validate:"notblank,max=500"`
	Notes         string              `json:"notes" validate:"max=1000"`
	CourierID     *uuid.UUID          `json:"courier_id"`
	OrderID       *uuid.UUID          `json:"order_id"`
	ScheduledDate *dateTime           `json:"scheduled_date"`
}

type updatePickupRequest struct {
	Status        *domain.PickupStatus `json:"status,omitempty" validate:"omitempty,oneof=pending assigned enroute arrived picked transit completed"`
	CustomerName  *string              `json:"customer_name,omitempty" validate:"omitempty,notblank,max=200"`
	CustomerPhone *string              `json:"customer_phone,omitempty" validate:"omitempty,notblank,max=50"`
	Address       *string              `json:"address,omitempty" validate:"omitempty,notblank,max=500"`
	Notes         *string              `json:"notes,omitempty" validate:"omitempty,max=1000"`
	OrderID       *uuid.UUID           `json:"order_id,omitempty"`
	ScheduledDate *dateTime            `json:"scheduled_date,omitempty"`
}

type assignCourierRequest struct {
	CourierID uuid.UUID `json:"courier_id"`
}

type pickupStatusResponse struct {
	Success     bool       `json:"success"`
	Status      string     `json:"status"`
	PickupID    *uuid.UUID `json:"pickup_id,omitempty"`
	Type        string     `json:"type,omitempty"`
	CourierName string     `json:"courier_name,omitempty"`
	Message     string     `json:"message,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
