package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"laundry-service/internal/domain"
)

const staffColumns = `id, name, phone, role, active, created_at`

// StaffRepo represents staff repository.
type StaffRepo struct{ db *pgxpool.Pool }

// NewStaffRepo creates a new StaffRepo.
func NewStaffRepo(db *pgxpool.Pool) *StaffRepo { return &StaffRepo{db: db} }

func scanStaff(row rowScanner) (domain.Staff, error) {
	var s domain.Staff
	err := row.Scan(&s.ID, &s.Name, &s.Phone, &s.Role, &s.Active, &s.CreatedAt)
	return s, err
}

// Get - returns staff member by its ID, or nil when it does not exist.
func (r *StaffRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	s, err := scanStaff(r.db.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff %s: %w", id, err)
	}
	return &s, nil
}

// List returns staff ordered by name, optionally filtered by role.
func (r *StaffRepo) List(ctx context.Context, role *domain.StaffRole) ([]domain.Staff, error) {
	q := `SELECT ` + staffColumns + ` FROM staff`
	args := make([]any, 0, 1)
	if role != nil {
		q += ` WHERE role = $1`
		args = append(args, string(*role))
	}
	q += ` ORDER BY name, id`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Staff, 0)
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create - inserts a new staff member.
func (r *StaffRepo) Create(ctx context.Context, s *domain.Staff) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO staff(id, name, phone, role, active, created_at) VALUES($1,$2,$3,$4,$5,$6)`,
		s.ID, s.Name, s.Phone, string(s.Role), s.Active, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("create staff: %w", err)
	}
	return nil
}

// Update - overwrites the mutable fields of a staff member; returns true if a row was affected.
func (r *StaffRepo) Update(ctx context.Context, s *domain.Staff) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE staff
        SET name = $2, phone = $3, role = $4, active = $5
        WHERE id = $1
    `, s.ID, s.Name, s.Phone, string(s.Role), s.Active)
	if err != nil {
		return false, fmt.Errorf("update staff %s: %w", s.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete - removes a staff member and returns true if a row was affected.
func (r *StaffRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete staff %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
