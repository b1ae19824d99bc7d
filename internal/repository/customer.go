package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
)

const customerColumns = `id, name, email, phone, address, created_at`

// CustomerRepo represents customer repository.
type CustomerRepo struct{ db *pgxpool.Pool }

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(db *pgxpool.Pool) *CustomerRepo { return &CustomerRepo{db: db} }

func scanCustomer(row rowScanner) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)
	return c, err
}

// Get - returns customer by its ID, or nil when it does not exist.
func (r *CustomerRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer %s: %w", id, err)
	}
	return &c, nil
}

// List returns customers newest first. If limit/offset are nil, returns the full list.
func (r *CustomerRepo) List(ctx context.Context, limit, offset *int) ([]domain.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC, id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create - inserts a new customer. A duplicate email yields apperr.ErrConflict.
func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers(id, name, email, phone, address, created_at) VALUES($1,$2,$3,$4,$5,$6)`,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}
