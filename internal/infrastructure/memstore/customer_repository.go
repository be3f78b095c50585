package memstore

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// CustomerRepository implements ports.CustomerRepository over the shared
// store.
type CustomerRepository struct {
	store *Store
}

func (r *CustomerRepository) FindByID(_ context.Context, id int) (*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, customer := range r.store.customers {
		if customer.ID == id {
			return cloneCustomer(customer), nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *CustomerRepository) List(_ context.Context) ([]*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Customer, 0, len(r.store.customers))
	for _, customer := range r.store.customers {
		out = append(out, cloneCustomer(customer))
	}
	return out, nil
}

func (r *CustomerRepository) Update(_ context.Context, customer *domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.customers {
		if existing.ID == customer.ID {
			r.store.customers[i] = cloneCustomer(customer)
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

// PaymentRepository implements ports.PaymentRepository over the shared store.
type PaymentRepository struct {
	store *Store
}

func (r *PaymentRepository) List(_ context.Context) ([]*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Payment, 0, len(r.store.payments))
	for _, payment := range r.store.payments {
		out = append(out, clonePayment(payment))
	}
	return out, nil
}

func (r *PaymentRepository) ListByCustomer(_ context.Context, customerID int) ([]*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Payment, 0)
	for _, payment := range r.store.payments {
		if payment.CustomerID == customerID {
			out = append(out, clonePayment(payment))
		}
	}
	return out, nil
}
