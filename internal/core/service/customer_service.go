package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

// CustomerService manages the customers/payments bounded context.
type CustomerService struct {
	customers ports.CustomerRepository
	payments  ports.PaymentRepository
	activity  ports.ActivityRepository
	logger    zerolog.Logger
}

func NewCustomerService(customers ports.CustomerRepository, payments ports.PaymentRepository, activity ports.ActivityRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{customers: customers, payments: payments, activity: activity, logger: logger}
}

func (s *CustomerService) Get(ctx context.Context, id int) (*domain.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.customers.List(ctx)
}

// UpdateStatus moves the customer to the given status and bumps UpdatedAt.
func (s *CustomerService) UpdateStatus(ctx context.Context, actor ports.Actor, customerID int, status string) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.Status = status
	customer.UpdatedAt = time.Now().UTC()
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	appendActivity(ctx, s.activity, s.logger, actor,
		domain.ActionCustomerUpdated,
		fmt.Sprintf("Updated status for customer #%d", customerID),
		nil)

	return customer, nil
}

// UpdatePricing changes the customer's pricing model and price.
func (s *CustomerService) UpdatePricing(ctx context.Context, in ports.CustomerPricingInput) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	customer.PricingModel = in.PricingModel
	customer.Price = in.Price
	customer.UpdatedAt = time.Now().UTC()
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	appendActivity(ctx, s.activity, s.logger, in.Actor,
		domain.ActionCustomerPricing,
		fmt.Sprintf("Updated pricing for customer #%d", in.CustomerID),
		nil)

	return customer, nil
}

func (s *CustomerService) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	return s.payments.List(ctx)
}

// PaymentsForCustomer lists the payment records of one customer. An unknown
// id reports domain.ErrCustomerNotFound rather than an empty list.
func (s *CustomerService) PaymentsForCustomer(ctx context.Context, customerID int) ([]*domain.Payment, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.payments.ListByCustomer(ctx, customerID)
}
