package staff

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
)

// Service coordinates staff business logic.
type Service struct {
	repo             staffRepository
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures a staff Service.
func NewService(r staffRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateFields(name *string, role *domain.StaffRole) []string {
	var msgs []string
	if name != nil && strings.TrimSpace(*name) == "" {
		msgs = append(msgs, "name is required")
	}
	if role != nil && !role.Valid() {
		msgs = append(msgs, "role must be one of admin, staff, courier")
	}
	return msgs
}

// Create adds a staff member. A missing role defaults to staff.
func (s *Service) Create(ctx context.Context, m *domain.Staff) (*domain.Staff, error) {
	if m == nil {
		return nil, apperr.Invalid("staff member is required")
	}
	m.Name = strings.TrimSpace(m.Name)
	m.Phone = strings.TrimSpace(m.Phone)
	if m.Role == "" {
		m.Role = domain.RoleStaff
	}
	if msgs := validateFields(&m.Name, &m.Role); len(msgs) > 0 {
		return nil, apperr.Invalid(msgs...)
	}

	m.ID = uuid.New()
	m.CreatedAt = s.now()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get retrieves a staff member by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.ErrNotFound
	}
	return m, nil
}

// List returns staff, optionally only those with the given role.
func (s *Service) List(ctx context.Context, role *domain.StaffRole) ([]domain.Staff, error) {
	if role != nil && !role.Valid() {
		return nil, apperr.Invalid("role must be one of admin, staff, courier")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, role)
}

// Update applies a partial update to a staff member.
func (s *Service) Update(ctx context.Context, u domain.PartialStaffUpdate) (*domain.Staff, error) {
	if u.ID == uuid.Nil {
		return nil, apperr.Invalid("id is required")
	}
	if u.Empty() {
		return nil, apperr.Invalid("at least one field must be provided")
	}
	if msgs := validateFields(u.Name, u.Role); len(msgs) > 0 {
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

// Delete removes a staff member.
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
