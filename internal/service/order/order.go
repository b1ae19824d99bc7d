package order

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
	"laundry-service/internal/logx"
)

// Service coordinates order business logic.
type Service struct {
	repo             orderRepository
	catalog          priceCatalog
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures an order Service.
func NewService(r orderRepository, c priceCatalog, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		catalog:          c,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateFields(name *string, quantity, total *float64, status *domain.OrderStatus) []string {
	var msgs []string
	if name != nil && strings.TrimSpace(*name) == "" {
		msgs = append(msgs, "customer_name is required")
	}
	if quantity != nil && *quantity <= 0 {
		msgs = append(msgs, "quantity must be greater than 0")
	}
	if total != nil && *total < 0 {
		msgs = append(msgs, "total must be greater than or equal to 0")
	}
	if status != nil && !status.Valid() {
		msgs = append(msgs, "status must be one of pending, processing, ready, completed, cancelled")
	}
	return msgs
}

// price returns the referenced service, or an invalid-input error when it is unknown.
func (s *Service) price(ctx context.Context, id uuid.UUID) (*domain.LaundryService, error) {
	svc, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperr.Invalid("service_id does not reference a known service")
	}
	return svc, nil
}

func roundCents(v float64) float64 { return math.Round(v*100) / 100 }

// Create stores a new order. A zero total on an order that references a
// service is computed from the service price and the quantity.
func (s *Service) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if o == nil {
		return nil, apperr.Invalid("order is required")
	}
	o.CustomerName = strings.TrimSpace(o.CustomerName)
	if o.Status == "" {
		o.Status = domain.OrderPending
	}
	if msgs := validateFields(&o.CustomerName, &o.Quantity, &o.Total, &o.Status); len(msgs) > 0 {
		return nil, apperr.Invalid(msgs...)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if o.ServiceID != nil {
		svc, err := s.price(ctx, *o.ServiceID)
		if err != nil {
			return nil, err
		}
		if o.Total == 0 {
			o.Total = roundCents(svc.Price * o.Quantity)
		}
	}

	now := s.now()
	o.ID = uuid.New()
	o.CreatedAt = now
	o.UpdatedAt = now
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		logx.String("event", "order_created"),
		logx.String("order_id", o.ID.String()),
		logx.Float64("total", o.Total),
	)
	return o, nil
}

// Get retrieves an order by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

// List returns every order, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, false)
}

// ListOpen returns orders that are neither completed nor cancelled.
func (s *Service) ListOpen(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, true)
}

// Update applies a partial update to an order.
func (s *Service) Update(ctx context.Context, u domain.PartialOrderUpdate) (*domain.Order, error) {
	if u.ID == uuid.Nil {
		return nil, apperr.Invalid("id is required")
	}
	if u.Empty() {
		return nil, apperr.Invalid("at least one field must be provided")
	}
	if msgs := validateFields(u.CustomerName, u.Quantity, u.Total, u.Status); len(msgs) > 0 {
		return nil, apperr.Invalid(msgs...)
	}
	if u.CustomerName != nil {
		name := strings.TrimSpace(*u.CustomerName)
		u.CustomerName = &name
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if u.ServiceID != nil {
		if _, err := s.price(ctx, *u.ServiceID); err != nil {
			return nil, err
		}
	}

	cur, err := s.repo.Get(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, apperr.ErrNotFound
	}

	next := cur.Apply(u)
	next.UpdatedAt = s.now()
	ok, err := s.repo.Update(ctx, &next)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}

	if next.Status != cur.Status {
		s.logger.Info("order status changed",
			logx.String("event", "order_status_changed"),
			logx.String("order_id", next.ID.String()),
			logx.String("from", string(cur.Status)),
			logx.String("to", string(next.Status)),
		)
	}
	return &next, nil
}

// Delete removes an order.
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
