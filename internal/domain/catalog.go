package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceUnit is the unit a laundry service is priced by.
type ServiceUnit string

// List of service units
const (
	UnitKg    ServiceUnit = "kg"
	UnitPiece ServiceUnit = "piece"
	UnitItem  ServiceUnit = "item"
)

var allowedUnits = [...]ServiceUnit{UnitKg, UnitPiece, UnitItem}

// Valid checks if the ServiceUnit is valid
func (u ServiceUnit) Valid() bool {
	for _, v := range allowedUnits {
		if u == v {
			return true
		}
	}
	return false
}

// LaundryService is a priced offering such as wash or iron.
// Default services ship with the shop and cannot be deleted.
type LaundryService struct {
	ID        uuid.UUID
	Name      string
	Price     float64
	Unit      ServiceUnit
	Active    bool
	IsDefault bool
	CreatedAt time.Time
}

// PartialServiceUpdate carries optional fields to update a laundry service.
type PartialServiceUpdate struct {
	ID     uuid.UUID
	Name   *string
	Price  *float64
	Unit   *ServiceUnit
	Active *bool
}

// Empty reports whether the update changes nothing.
func (u PartialServiceUpdate) Empty() bool {
	return u.Name == nil && u.Price == nil && u.Unit == nil && u.Active == nil
}

// Apply returns a copy of s with the non-nil fields of u applied.
func (s LaundryService) Apply(u PartialServiceUpdate) LaundryService {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
	if u.Unit != nil {
		s.Unit = *u.Unit
	}
	if u.Active != nil {
		s.Active = *u.Active
	}
	return s
}
