package ports

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// CustomerRepository defines persistence for the customers bounded context.
type CustomerRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
}

// PaymentRepository defines read access to customer payment records.
type PaymentRepository interface {
	List(ctx context.Context) ([]*domain.Payment, error)
	ListByCustomer(ctx context.Context, customerID int) ([]*domain.Payment, error)
}
