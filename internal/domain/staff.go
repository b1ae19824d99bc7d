package domain

import (
	"time"

	"github.com/google/uuid"
)

// StaffRole represents what a staff member does in the shop.
type StaffRole string

// List of staff roles
const (
	RoleAdmin   StaffRole = "admin"
	RoleStaff   StaffRole = "staff"
	RoleCourier StaffRole = "courier"
)

var allowedRoles = [...]StaffRole{RoleAdmin, RoleStaff, RoleCourier}

// Valid checks if the StaffRole is valid
func (r StaffRole) Valid() bool {
	for _, v := range allowedRoles {
		if r == v {
			return true
		}
	}
	return false
}

// Staff is a shop employee. Couriers execute pickups and deliveries.
type Staff struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Role      StaffRole
	Active    bool
	CreatedAt time.Time
}

// IsCourier reports whether the member can be assigned to pickups.
func (s Staff) IsCourier() bool { return s.Role == RoleCourier }

// PartialStaffUpdate carries optional fields to update a staff member.
type PartialStaffUpdate struct {
	ID     uuid.UUID
	Name   *string
	Phone  *string
	Role   *StaffRole
	Active *bool
}

// Empty reports whether the update changes nothing.
func (u PartialStaffUpdate) Empty() bool {
	return u.Name == nil && u.Phone == nil && u.Role == nil && u.Active == nil
}

// Apply returns a copy of s with the non-nil fields of u applied.
func (s Staff) Apply(u PartialStaffUpdate) Staff {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.Role != nil {
		s.Role = *u.Role
	}
	if u.Active != nil {
		s.Active = *u.Active
	}
	return s
}
