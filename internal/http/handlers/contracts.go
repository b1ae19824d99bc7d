package handlers

import (
	"context"

	"github.com/google/uuid"

	"laundry-service/internal/domain"
	"laundry-service/internal/service/catalog"
	"laundry-service/internal/service/customer"
	"laundry-service/internal/service/order"
	"laundry-service/internal/service/pickup"
	"laundry-service/internal/service/staff"
)

type customerUsecase interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Customer, error)
}

// NewCustomerUsecase wires a customer Service into a customerUsecase.
func NewCustomerUsecase(svc *customer.Service) customerUsecase {
	return svc
}

type orderUsecase interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListOpen(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, u domain.PartialOrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewOrderUsecase wires an order Service into an orderUsecase.
func NewOrderUsecase(svc *order.Service) orderUsecase {
	return svc
}

type catalogUsecase interface {
	Create(ctx context.Context, s *domain.LaundryService) (*domain.LaundryService, error)
	List(ctx context.Context) ([]domain.LaundryService, error)
	Update(ctx context.Context, u domain.PartialServiceUpdate) (*domain.LaundryService, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewCatalogUsecase wires a catalog Service into a catalogUsecase.
func NewCatalogUsecase(svc *catalog.Service) catalogUsecase {
	return svc
}

type staffUsecase interface {
	Create(ctx context.Context, m *domain.Staff) (*domain.Staff, error)
	List(ctx context.Context, role *domain.StaffRole) ([]domain.Staff, error)
	Update(ctx context.Context, u domain.PartialStaffUpdate) (*domain.Staff, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewStaffUsecase wires a staff Service into a staffUsecase.
func NewStaffUsecase(svc *staff.Service) staffUsecase {
	return svc
}

type pickupUsecase interface {
	Create(ctx context.Context, p *domain.PickupDelivery) (*domain.PickupDelivery, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PickupDelivery, error)
	List(ctx context.Context, kind *domain.PickupKind) ([]domain.PickupDelivery, error)
	Update(ctx context.Context, u domain.PartialPickupUpdate) (*domain.PickupDelivery, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Advance(ctx context.Context, id uuid.UUID) (*domain.PickupDelivery, error)
	AssignCourier(ctx context.Context, id, courierID uuid.UUID) (*domain.PickupDelivery, error)
	Status(ctx context.Context, id *uuid.UUID) domain.PickupStatusReport
}

// NewPickupUsecase wires a pickup Service into a pickupUsecase.
func NewPickupUsecase(svc *pickup.Service) pickupUsecase {
	return svc
}
