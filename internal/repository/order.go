package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
)

const orderColumns = `id, customer_id, customer_name, service_id, quantity, total, status, notes, created_at, updated_at`

// OrderRepo represents order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.ServiceID, &o.Quantity,
		&o.Total, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

// Get - returns order by its ID, or nil when it does not exist.
func (r *OrderRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return &o, nil
}

// List returns orders newest first; openOnly drops completed and cancelled ones.
func (r *OrderRepo) List(ctx context.Context, openOnly bool) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders`
	args := make([]any, 0, 2)
	if openOnly {
		q += ` WHERE status NOT IN ($1, $2)`
		args = append(args, string(domain.OrderCompleted), string(domain.OrderCancelled))
	}
	q += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Create - inserts a new order.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO orders(id, customer_id, customer_name, service_id, quantity, total, status, notes, created_at, updated_at)
        VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `, o.ID, o.CustomerID, o.CustomerName, o.ServiceID, o.Quantity, o.Total, string(o.Status), o.Notes, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		if IsForeignKey(err) {
			return apperr.Invalid("referenced customer or service does not exist")
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// Update - overwrites the mutable fields of an order and returns true if a row was affected.
func (r *OrderRepo) Update(ctx context.Context, o *domain.Order) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET
            customer_name = $2,
            service_id    = $3,
            quantity      = $4,
            total         = $5,
            status        = $6,
            notes         = $7,
            updated_at    = $8
        WHERE id = $1
    `, o.ID, o.CustomerName, o.ServiceID, o.Quantity, o.Total, string(o.Status), o.Notes, o.UpdatedAt)
	if err != nil {
		if IsForeignKey(err) {
			return false, apperr.Invalid("referenced service does not exist")
		}
		return false, fmt.Errorf("update order %s: %w", o.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete - removes an order and returns true if a row was affected.
func (r *OrderRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
