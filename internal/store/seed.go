package store

import (
	"time"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
)

// Seed returns a State with the shop's default services.
func Seed(now time.Time) State {
	defaults := []struct {
		name  string
		price float64
		unit  domain.ServiceUnit
	}{
		{"Wash & Fold", 7.5, domain.UnitKg},
		{"Ironing", 2, domain.UnitPiece},
		{"Dry Cleaning", 12, domain.UnitItem},
	}

	var st State
	for _, d := range defaults {
		st = st.AddService(domain.LaundryService{
			ID:        uuid.New(),
			Name:      d.name,
			Price:     d.price,
			Unit:      d.unit,
			Active:    true,
			IsDefault: true,
			CreatedAt: now,
		})
	}
	return st
}
