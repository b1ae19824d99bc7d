package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"laundry-service/internal/domain"
)

const serviceColumns = `id, name, price, unit, active, is_default, created_at`

// ServiceRepo represents the laundry service catalog repository.
type ServiceRepo struct{ db *pgxpool.Pool }

// NewServiceRepo creates a new ServiceRepo.
func NewServiceRepo(db *pgxpool.Pool) *ServiceRepo { return &ServiceRepo{db: db} }

func scanService(row rowScanner) (domain.LaundryService, error) {
	var s domain.LaundryService
	err := row.Scan(&s.ID, &s.Name, &s.Price, &s.Unit, &s.Active, &s.IsDefault, &s.CreatedAt)
	return s, err
}

// Get - returns laundry service by its ID, or nil when it does not exist.
func (r *ServiceRepo) Get(ctx context.Context, id uuid.UUID) (*domain.LaundryService, error) {
	s, err := scanService(r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service %s: %w", id, err)
	}
	return &s, nil
}

// List returns every laundry service, defaults first.
func (r *ServiceRepo) List(ctx context.Context) ([]domain.LaundryService, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY is_default DESC, name, id`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	out := make([]domain.LaundryService, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create - inserts a new laundry service.
func (r *ServiceRepo) Create(ctx context.Context, s *domain.LaundryService) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO services(id, name, price, unit, active, is_default, created_at)
        VALUES($1,$2,$3,$4,$5,$6,$7)
    `, s.ID, s.Name, s.Price, string(s.Unit), s.Active, s.IsDefault, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

// Update - overwrites name, price, unit and active flag; returns true if a row was affected.
func (r *ServiceRepo) Update(ctx context.Context, s *domain.LaundryService) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE services
        SET name = $2, price = $3, unit = $4, active = $5
        WHERE id = $1
    `, s.ID, s.Name, s.Price, string(s.Unit), s.Active)
	if err != nil {
		return false, fmt.Errorf("update service %s: %w", s.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete - removes a non-default laundry service and returns true if a row was affected.
func (r *ServiceRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1 AND NOT is_default`, id)
	if err != nil {
		return false, fmt.Errorf("delete service %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
