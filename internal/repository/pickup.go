package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
)

const pickupColumns = `id, type, status, customer_name, customer_phone, address, notes,
    courier_id, courier_name, order_id, scheduled_date, completed_at, created_at`

// PickupRepo represents pickup/delivery repository.
type PickupRepo struct{ db *pgxpool.Pool }

// NewPickupRepo creates a new PickupRepo.
func NewPickupRepo(db *pgxpool.Pool) *PickupRepo { return &PickupRepo{db: db} }

func scanPickup(row rowScanner) (domain.PickupDelivery, error) {
	var p domain.PickupDelivery
	err := row.Scan(&p.ID, &p.Type, &p.Status, &p.CustomerName, &p.CustomerPhone, &p.Address, &p.Notes,
		&p.CourierID, &p.CourierName, &p.OrderID, &p.ScheduledDate, &p.CompletedAt, &p.CreatedAt)
	return p, err
}

// Get - returns pickup/delivery by its ID, or nil when it does not exist.
func (r *PickupRepo) Get(ctx context.Context, id uuid.UUID) (*domain.PickupDelivery, error) {
	p, err := scanPickup(r.db.QueryRow(ctx, `SELECT `+pickupColumns+` FROM pickups WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pickup %s: %w", id, err)
	}
	return &p, nil
}

// Latest - returns the most recently created pickup/delivery, or nil when there is none.
func (r *PickupRepo) Latest(ctx context.Context) (*domain.PickupDelivery, error) {
	p, err := scanPickup(r.db.QueryRow(ctx,
		`SELECT `+pickupColumns+` FROM pickups ORDER BY created_at DESC, id LIMIT 1`))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest pickup: %w", err)
	}
	return &p, nil
}

// List returns pickups/deliveries newest first, optionally filtered by kind.
func (r *PickupRepo) List(ctx context.Context, kind *domain.PickupKind) ([]domain.PickupDelivery, error) {
	q := `SELECT ` + pickupColumns + ` FROM pickups`
	args := make([]any, 0, 1)
	if kind != nil {
		q += ` WHERE type = $1`
		args = append(args, string(*kind))
	}
	q += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list pickups: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PickupDelivery, 0)
	for rows.Next() {
		p, err := scanPickup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pickup: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create - inserts a new pickup/delivery.
func (r *PickupRepo) Create(ctx context.Context, p *domain.PickupDelivery) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO pickups(id, type, status, customer_name, customer_phone, address, notes,
            courier_id, courier_name, order_id, scheduled_date, completed_at, created_at)
        VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    `, p.ID, string(p.Type), string(p.Status), p.CustomerName, p.CustomerPhone, p.Address, p.Notes,
		p.CourierID, p.CourierName, p.OrderID, p.ScheduledDate, p.CompletedAt, p.CreatedAt)
	if err != nil {
		if IsForeignKey(err) {
			return apperr.Invalid("referenced order or courier does not exist")
		}
		return fmt.Errorf("create pickup: %w", err)
	}
	return nil
}

// Update - overwrites everything but type and created_at; returns true if a row was affected.
func (r *PickupRepo) Update(ctx context.Context, p *domain.PickupDelivery) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE pickups
        SET
            status         = $2,
            customer_name  = $3,
            customer_phone = $4,
            address        = $5,
            notes          = $6,
            courier_id     = $7,
            courier_name   = $8,
            order_id       = $9,
            scheduled_date = $10,
            completed_at   = $11
        WHERE id = $1
    `, p.ID, string(p.Status), p.CustomerName, p.CustomerPhone, p.Address, p.Notes,
		p.CourierID, p.CourierName, p.OrderID, p.ScheduledDate, p.CompletedAt)
	if err != nil {
		if IsForeignKey(err) {
			return false, apperr.Invalid("referenced order or courier does not exist")
		}
		return false, fmt.Errorf("update pickup %s: %w", p.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete - removes a pickup/delivery and returns true if a row was affected.
func (r *PickupRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM pickups WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete pickup %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
