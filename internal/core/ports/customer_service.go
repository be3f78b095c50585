package ports

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// CustomerPricingInput updates a customer's billing terms.
type CustomerPricingInput struct {
	Actor        Actor
	CustomerID   int
	PricingModel string
	Price        float64
}

// CustomerService manages the customers/payments bounded context. It is a
// separate model from users/returns/invoices and is deliberately not
// reconciled with them.
type CustomerService interface {
	Get(ctx context.Context, id int) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	UpdateStatus(ctx context.Context, actor Actor, customerID int, status string) (*domain.Customer, error)
	UpdatePricing(ctx context.Context, in CustomerPricingInput) (*domain.Customer, error)
	ListPayments(ctx context.Context) ([]*domain.Payment, error)
	PaymentsForCustomer(ctx context.Context, customerID int) ([]*domain.Payment, error)
}
