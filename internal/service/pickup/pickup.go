// Package pickup runs the pickup/delivery workflow: scheduling, courier
// assignment, status advancement and the status report polled by the dashboard.
package pickup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
	"laundry-service/internal/logx"
)

// Service - pickup/delivery workflow service.
type Service struct {
	repo             pickupRepository
	staff            staffDirectory
	transitions      TransitionRecorder
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, string) {}

// NewService - creates a new pickup Service. A nil recorder disables transition metrics.
func NewService(r pickupRepository, staff staffDirectory, rec TransitionRecorder, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		staff:            staff,
		transitions:      rec,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func requiredText(field string, v *string, msgs []string) []string {
	if v == nil {
		return msgs
	}
	*v = strings.TrimSpace(*v)
	if *v == "" {
		return append(msgs, field+" is required")
	}
	return msgs
}

func statusNotAllowed(kind domain.PickupKind, st domain.PickupStatus) string {
	return fmt.Sprintf("status %q is not valid for a %s", st, kind)
}

// courier returns the staff member with the given id if it is a courier.
func (s *Service) courier(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	m, err := s.staff.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.Invalid("courier_id does not reference a staff member")
	}
	if !m.IsCourier() {
		return nil, apperr.Invalid("staff member is not a courier")
	}
	return m, nil
}

// stamp keeps CompletedAt in line with the status.
func (s *Service) stamp(p *domain.PickupDelivery) {
	switch {
	case p.Status == domain.PickupCompleted && p.CompletedAt == nil:
		now := s.now()
		p.CompletedAt = &now
	case p.Status != domain.PickupCompleted:
		p.CompletedAt = nil
	}
}

// Create schedules a pickup or delivery. Status defaults to pending.
func (s *Service) Create(ctx context.Context, p *domain.PickupDelivery) (*domain.PickupDelivery, error) {
	if p == nil {
		return nil, apperr.Invalid("pickup is required")
	}
	var msgs []string
	if !p.Type.Valid() {
		msgs = append(msgs, "type must be one of pickup, delivery")
	}
	msgs = requiredText("customer_name", &p.CustomerName, msgs)
	msgs = requiredText("customer_phone", &p.CustomerPhone, msgs)
	msgs = requiredText("address", &p.Address, msgs)
	if p.Status == "" {
		p.Status = domain.PickupPending
	}
	if p.Type.Valid() && !p.Type.Allows(p.Status) {
		msgs = append(msgs, statusNotAllowed(p.Type, p.Status))
	}
	if len(msgs) > 0 {
		return nil, apperr.Invalid(msgs...)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p.CourierName = ""
	if p.CourierID != nil {
		m, err := s.courier(ctx, *p.CourierID)
		if err != nil {
			return nil, err
		}
		p.CourierName = m.Name
	}

	p.ID = uuid.New()
	p.CreatedAt = s.now()
	p.CompletedAt = nil
	s.stamp(p)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("pickup scheduled",
		logx.String("event", "pickup_created"),
		logx.String("pickup_id", p.ID.String()),
		logx.String("type", string(p.Type)),
	)
	return p, nil
}

// Get retrieves a pickup/delivery by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.PickupDelivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

// List returns pickups/deliveries newest first, optionally of one kind.
func (s *Service) List(ctx context.Context, kind *domain.PickupKind) ([]domain.PickupDelivery, error) {
	if kind != nil && !kind.Valid() {
		return nil, apperr.Invalid("type must be one of pickup, delivery")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, kind)
}

// Update applies a direct edit. A new status must be allowed for the record's type.
func (s *Service) Update(ctx context.Context, u domain.PartialPickupUpdate) (*domain.PickupDelivery, error) {
	if u.ID == uuid.Nil {
		return nil, apperr.Invalid("id is required")
	}
	if u.Empty() {
		return nil, apperr.Invalid("at least one field must be provided")
	}
	var msgs []string
	msgs = requiredText("customer_name", u.CustomerName, msgs)
	msgs = requiredText("customer_phone", u.CustomerPhone, msgs)
	msgs = requiredText("address", u.Address, msgs)
	if len(msgs) > 0 {
		return nil, apperr.Invalid(msgs...)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cur, err := s.repo.Get(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, apperr.ErrNotFound
	}
	if u.Status != nil && !cur.Type.Allows(*u.Status) {
		return nil, apperr.Invalid(statusNotAllowed(cur.Type, *u.Status))
	}

	next := cur.Apply(u)
	s.stamp(&next)
	if err := s.save(ctx, &next); err != nil {
		return nil, err
	}
	s.transitioned(cur.Status, &next)
	return &next, nil
}

// Delete removes a pickup/delivery.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// Advance moves a record one step along its workflow. A completed record is
// returned unchanged and nothing is written.
func (s *Service) Advance(ctx context.Context, id uuid.UUID) (*domain.PickupDelivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, apperr.ErrNotFound
	}

	nextStatus := domain.NextStatus(cur.Status, cur.Type)
	if nextStatus == cur.Status {
		return cur, nil
	}

	next := *cur
	next.Status = nextStatus
	s.stamp(&next)
	if err := s.save(ctx, &next); err != nil {
		return nil, err
	}
	s.transitioned(cur.Status, &next)
	return &next, nil
}

// AssignCourier puts a courier on a record and moves a pending record to assigned.
// The courier name is copied onto the record.
func (s *Service) AssignCourier(ctx context.Context, id, courierID uuid.UUID) (*domain.PickupDelivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, apperr.ErrNotFound
	}
	m, err := s.courier(ctx, courierID)
	if err != nil {
		return nil, err
	}

	next := *cur
	cid := m.ID
	next.CourierID = &cid
	next.CourierName = m.Name
	if next.Status == domain.PickupPending {
		next.Status = domain.NextStatus(next.Status, next.Type)
	}
	if err := s.save(ctx, &next); err != nil {
		return nil, err
	}

	s.logger.Info("courier assigned",
		logx.String("event", "courier_assigned"),
		logx.String("pickup_id", next.ID.String()),
		logx.String("courier_id", cid.String()),
	)
	s.transitioned(cur.Status, &next)
	return &next, nil
}

func (s *Service) save(ctx context.Context, p *domain.PickupDelivery) error {
	ok, err := s.repo.Update(ctx, p)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Service) transitioned(from domain.PickupStatus, p *domain.PickupDelivery) {
	if from == p.Status {
		return
	}
	s.transitions.Observe(string(p.Type), string(p.Status))
	s.logger.Info("pickup advanced",
		logx.String("event", "pickup_advanced"),
		logx.String("pickup_id", p.ID.String()),
		logx.String("type", string(p.Type)),
		logx.String("from", string(from)),
		logx.String("to", string(p.Status)),
	)
}

// Status reports the state of one record, or of the latest one when id is nil.
// It never fails: missing data yields a pending or not_found report.
func (s *Service) Status(ctx context.Context, id *uuid.UUID) domain.PickupStatusReport {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		p   *domain.PickupDelivery
		err error
	)
	if id == nil {
		p, err = s.repo.Latest(ctx)
	} else {
		p, err = s.repo.Get(ctx, *id)
	}

	switch {
	case err != nil:
		s.logger.Warn("pickup status unavailable", logx.Err(err))
		return domain.PickupStatusReport{
			PickupID: id,
			Status:   string(domain.PickupPending),
			Message:  "pickup status is temporarily unavailable",
		}
	case p == nil && id == nil:
		return domain.PickupStatusReport{
			Status:  string(domain.PickupPending),
			Message: "no pickups scheduled yet",
		}
	case p == nil:
		return domain.PickupStatusReport{PickupID: id, Status: domain.StatusNotFound}
	}

	pid := p.ID
	created := p.CreatedAt
	return domain.PickupStatusReport{
		PickupID:    &pid,
		Type:        p.Type,
		Status:      string(p.Status),
		CourierName: p.CourierName,
		CreatedAt:   &created,
	}
}
