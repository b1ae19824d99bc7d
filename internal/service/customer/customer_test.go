package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
	testlog "laundry-service/internal/testutil"
)

type stubCustomerRepo struct {
	getFn    func(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	listFn   func(ctx context.Context, limit, offset *int) ([]domain.Customer, error)
	createFn func(ctx context.Context, c *domain.Customer) error
}

func (m *stubCustomerRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return m.getFn(ctx, id)
}

func (m *stubCustomerRepo) List(ctx context.Context, limit, offset *int) ([]domain.Customer, error) {
	return m.listFn(ctx, limit, offset)
}

func (m *stubCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	return m.createFn(ctx, c)
}

func TestNewService_Defaults(t *testing.T) {
	t.Parallel()

	s := NewService(&stubCustomerRepo{}, 0, nil)
	if s.operationTimeout != 3*time.Second {
		t.Fatalf("default timeout 3s, got %v", s.operationTimeout)
	}
	if s.logger == nil {
		t.Fatal("expected nop logger")
	}

	s = NewService(&stubCustomerRepo{}, 5*time.Second, nil)
	if s.operationTimeout != 5*time.Second {
		t.Fatalf("expected timeout 5s, got %v", s.operationTimeout)
	}
}

func TestService_Create_NormalizesAndLogs(t *testing.T) {
	t.Parallel()

	logs := testlog.New()
	var stored domain.Customer
	repo := &stubCustomerRepo{
		createFn: func(ctx context.Context, c *domain.Customer) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Fatal("expected deadline on context")
			}
			stored = *c
			return nil
		},
	}
	s := NewService(repo, time.Second, logs.Logger())

	got, err := s.Create(context.Background(), &domain.Customer{Name: "  Ann ", Email: " Ann@Example.COM "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == uuid.Nil || got.CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at to be set: %+v", got)
	}
	if stored.Email != "ann@example.com" || stored.Name != "Ann" {
		t.Fatalf("expected normalized customer, got %+v", stored)
	}
	if _, ok := logs.Find("customer created"); !ok {
		t.Fatal("expected customer created log entry")
	}
}

func TestService_Create_DuplicateEmailConflict(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	repo := &stubCustomerRepo{
		createFn: func(_ context.Context, c *domain.Customer) error {
			if seen[c.Email] {
				return apperr.ErrConflict
			}
			seen[c.Email] = true
			return nil
		},
	}
	s := NewService(repo, time.Second, nil)

	if _, err := s.Create(context.Background(), &domain.Customer{Name: "A", Email: "dup@example.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := s.Create(context.Background(), &domain.Customer{Name: "B", Email: "DUP@example.com"})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	s := NewService(&stubCustomerRepo{}, time.Second, nil)
	cases := []struct {
		name string
		in   *domain.Customer
		msgs []string
	}{
		{"nil", nil, []string{"customer is required"}},
		{"empty", &domain.Customer{}, []string{"name is required", "email is required"}},
		{"bad email", &domain.Customer{Name: "A", Email: "nope"}, []string{"email must be a valid email address"}},
		{"trailing at", &domain.Customer{Name: "A", Email: "a@"}, []string{"email must be a valid email address"}},
	}
	for _, tc := range cases {
		_, err := s.Create(context.Background(), tc.in)
		if !errors.Is(err, apperr.ErrInvalid) {
			t.Fatalf("%s: expected invalid, got %v", tc.name, err)
		}
		got := apperr.Messages(err)
		if len(got) != len(tc.msgs) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.msgs, got)
		}
		for i := range got {
			if got[i] != tc.msgs[i] {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.msgs, got)
			}
		}
	}
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	repo := &stubCustomerRepo{
		getFn: func(_ context.Context, got uuid.UUID) (*domain.Customer, error) {
			if got == id {
				return &domain.Customer{ID: id, Name: "Ann"}, nil
			}
			return nil, nil
		},
	}
	s := NewService(repo, time.Second, nil)

	c, err := s.Get(context.Background(), id)
	if err != nil || c.Name != "Ann" {
		t.Fatalf("unexpected result %+v, %v", c, err)
	}
	if _, err := s.Get(context.Background(), uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := s.Get(context.Background(), uuid.Nil); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
}

func TestService_List_RejectsNegativePagination(t *testing.T) {
	t.Parallel()

	called := false
	repo := &stubCustomerRepo{
		listFn: func(context.Context, *int, *int) ([]domain.Customer, error) {
			called = true
			return []domain.Customer{}, nil
		},
	}
	s := NewService(repo, time.Second, nil)

	neg := -1
	if _, err := s.List(context.Background(), &neg, nil); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
	if _, err := s.List(context.Background(), nil, &neg); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
	if called {
		t.Fatal("repository must not be called for invalid pagination")
	}
	if _, err := s.List(context.Background(), nil, nil); err != nil || !called {
		t.Fatalf("expected list call, err=%v", err)
	}
}
