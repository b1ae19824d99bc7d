package customer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
	"laundry-service/internal/logx"
)

// Service coordinates customer business logic and orchestrates repository calls.
type Service struct {
	repo             customerRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures a customer Service.
func NewService(r customerRepository, timeout time.Duration, logger logx.Logger) *Service {
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

func normalize(c *domain.Customer) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
}

func validateCreate(c *domain.Customer) error {
	if c == nil {
		return apperr.Invalid("customer is required")
	}
	var msgs []string
	if c.Name == "" {
		msgs = append(msgs, "name is required")
	}
	if c.Email == "" {
		msgs = append(msgs, "email is required")
	} else if at := strings.IndexByte(c.Email, '@'); at <= 0 || at == len(c.Email)-1 {
		msgs = append(msgs, "email must be a valid email address")
	}
	if len(msgs) > 0 {
		return apperr.Invalid(msgs...)
	}
	return nil
}

// Create stores a new customer. Emails are compared case-insensitively and a
// second customer with the same email yields apperr.ErrConflict.
func (s *Service) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if c != nil {
		normalize(c)
	}
	if err := validateCreate(c); err != nil {
		return nil, err
	}

	c.ID = uuid.New()
	c.CreatedAt = s.now()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("customer created",
		logx.String("event", "customer_created"),
		logx.String("customer_id", c.ID.String()),
	)
	return c, nil
}

// Get retrieves a customer by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if id == uuid.Nil {
		return nil, apperr.Invalid("id is required")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

// List returns customers with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Customer, error) {
	if limit != nil && *limit < 0 {
		return nil, apperr.Invalid("limit must not be negative")
	}
	if offset != nil && *offset < 0 {
		return nil, apperr.Invalid("offset must not be negative")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}
