// Package catalog manages the priced laundry services the shop offers.
package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
	"laundry-service/internal/logx"
)

// Service coordinates laundry service catalog logic.
type Service struct {
	repo             serviceRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures a catalog Service.
func NewService(r serviceRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateFields(name *string, price *float64, unit *domain.ServiceUnit) []string {
	var msgs []string
	if name != nil && strings.TrimSpace(*name) == "" {
		msgs = append(msgs, "name is required")
	}
	if price != nil && *price < 0 {
		msgs = append(msgs, "price must be greater than or equal to 0")
	}
	if unit != nil && !unit.Valid() {
		msgs = append(msgs, "unit must be one of kg, piece, item")
	}
	return msgs
}

// Create adds a non-default laundry service. A missing unit defaults to kg.
func (s *Service) Create(ctx context.Context, svc *domain.LaundryService) (*domain.LaundryService, error) {
	if svc == nil {
		return nil, apperr.Invalid("service is required")
	}
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Unit == "" {
		svc.Unit = domain.UnitKg
	}
	if msgs := validateFields(&svc.Name, &svc.Price, &svc.Unit); len(msgs) > 0 {
		return nil, apperr.Invalid(msgs...)
	}

	svc.ID = uuid.New()
	svc.IsDefault = false
	svc.CreatedAt = s.now()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Get retrieves a laundry service by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.LaundryService, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	svc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperr.ErrNotFound
	}
	return svc, nil
}

// List returns the whole catalog.
func (s *Service) List(ctx context.Context) ([]domain.LaundryService, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// Update applies a partial update to a laundry service.
func (s *Service) Update(ctx context.Context, u domain.PartialServiceUpdate) (*domain.LaundryService, error) {
	if u.ID == uuid.Nil {
		return nil, apperr.Invalid("id is required")
	}
	if u.Empty() {
		return nil, apperr.Invalid("at least one field must be provided")
	}
	if msgs := validateFields(u.Name, u.Price, u.Unit); len(msgs) > 0 {
		return nil, apperr.Invalid(msgs...)
	}
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		u.Name = &name
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

	next := cur.Apply(u)
	ok, err := s.repo.Update(ctx, &next)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &next, nil
}

// Delete removes a laundry service. Default services yield apperr.ErrConflict.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		return apperr.ErrNotFound
	}
	if cur.IsDefault {
		return apperr.ErrConflict
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	s.logger.Info("service deleted",
		logx.String("event", "service_deleted"),
		logx.String("service_id", id.String()),
	)
	return nil
}
