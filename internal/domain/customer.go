package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a laundry-shop customer. Email is unique.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
