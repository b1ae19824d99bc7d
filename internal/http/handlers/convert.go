package handlers

import "laundry-service/internal/domain"

func mapList[T, D any](list []T, fn func(T) D) []D {
	out := make([]D, 0, len(list))
	for _, v := range list {
		out = append(out, fn(v))
	}
	return out
}

func (r createCustomerRequest) toModel() *domain.Customer {
	return &domain.Customer{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}

func customerToResponse(c domain.Customer) customerDTO {
	return customerDTO{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func (r createOrderRequest) toModel() *domain.Order {
	o := &domain.Order{
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		ServiceID:    r.ServiceID,
		Quantity:     r.Quantity,
		Status:       r.Status,
		Notes:        r.Notes,
	}
	if r.Total != nil {
		o.Total = *r.Total
	}
	return o
}

func (r editOrderRequest) toModel() domain.PartialOrderUpdate {
	return domain.PartialOrderUpdate{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		ServiceID:    r.ServiceID,
		Quantity:     r.Quantity,
		Total:        r.Total,
		Status:       r.Status,
		Notes:        r.Notes,
	}
}

func orderToResponse(o domain.Order) orderDTO {
	return orderDTO{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		ServiceID:    o.ServiceID,
		Quantity:     o.Quantity,
		Total:        o.Total,
		Status:       o.Status,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func (r createServiceRequest) toModel() *domain.LaundryService {
	s := &domain.LaundryService{Name: r.Name, Unit: r.Unit, Active: true}
	if r.Price != nil {
		s.Price = *r.Price
	}
	if r.Active != nil {
		s.Active = *r.Active
	}
	return s
}

func (r updateServiceRequest) toModel() domain.PartialServiceUpdate {
	return domain.PartialServiceUpdate{
		ID:     r.ID,
		Name:   r.Name,
		Price:  r.Price,
		Unit:   r.Unit,
		Active: r.Active,
	}
}

func serviceToResponse(s domain.LaundryService) serviceDTO {
	return serviceDTO{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price,
		Unit:      s.Unit,
		Active:    s.Active,
		IsDefault: s.IsDefault,
		CreatedAt: s.CreatedAt,
	}
}

func (r createStaffRequest) toModel() *domain.Staff {
	m := &domain.Staff{Name: r.Name, Phone: r.Phone, Role: r.Role, Active: true}
	if r.Active != nil {
		m.Active = *r.Active
	}
	return m
}

func (r updateStaffRequest) toModel() domain.PartialStaffUpdate {
	return domain.PartialStaffUpdate{Name: r.Name, Phone: r.Phone, Role: r.Role, Active: r.Active}
}

func staffToResponse(m domain.Staff) staffDTO {
	return staffDTO{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Role:      m.Role,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}

func (r createPickupRequest) toModel() *domain.PickupDelivery {
	return &domain.PickupDelivery{
		Type:          r.Type,
		Status:        r.Status,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Address:       r.Address,
		Notes:         r.Notes,
		CourierID:     r.CourierID,
		OrderID:       r.OrderID,
		ScheduledDate: r.ScheduledDate.ptr(),
	}
}

func (r updatePickupRequest) toModel() domain.PartialPickupUpdate {
	return domain.PartialPickupUpdate{
		Status:        r.Status,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Address:       r.Address,
		Notes:         r.Notes,
		OrderID:       r.OrderID,
		ScheduledDate: r.ScheduledDate.ptr(),
	}
}

func pickupToResponse(p domain.PickupDelivery) pickupDTO {
	return pickupDTO{
		ID:            p.ID,
		Type:          p.Type,
		Status:        p.Status,
		CustomerName:  p.CustomerName,
		CustomerPhone: p.CustomerPhone,
		Address:       p.Address,
		Notes:         p.Notes,
		CourierID:     p.CourierID,
		CourierName:   p.CourierName,
		OrderID:       p.OrderID,
		ScheduledDate: p.ScheduledDate,
		CompletedAt:   p.CompletedAt,
		CreatedAt:     p.CreatedAt,
	}
}

func statusReportToResponse(rep domain.PickupStatusReport) pickupStatusResponse {
	return pickupStatusResponse{
		Success:     true,
		Status:      rep.Status,
		PickupID:    rep.PickupID,
		Type:        string(rep.Type),
		CourierName: rep.CourierName,
		Message:     rep.Message,
		CreatedAt:   rep.CreatedAt,
	}
}
