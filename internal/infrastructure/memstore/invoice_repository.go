package memstore

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// InvoiceRepository implements ports.InvoiceRepository over the shared store.
type InvoiceRepository struct {
	store *Store
}

func (r *InvoiceRepository) Insert(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.invoiceID++
	stored := cloneInvoice(inv)
	stored.ID = r.store.invoiceID
	r.store.invoices = append(r.store.invoices, stored)
	return cloneInvoice(stored), nil
}

func (r *InvoiceRepository) Update(_ context.Context, inv *domain.Invoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.invoices {
		if existing.ID == inv.ID {
			r.store.invoices[i] = cloneInvoice(inv)
			return nil
		}
	}
	return domain.ErrInvoiceNotFound
}

func (r *InvoiceRepository) FindByID(_ context.Context, id int) (*domain.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, inv := range r.store.invoices {
		if inv.ID == id {
			return cloneInvoice(inv), nil
		}
	}
	return nil, domain.ErrInvoiceNotFound
}

func (r *InvoiceRepository) List(_ context.Context) ([]*domain.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Invoice, 0, len(r.store.invoices))
	for _, inv := range r.store.invoices {
		out = append(out, cloneInvoice(inv))
	}
	return out, nil
}

func (r *InvoiceRepository) ListByUser(_ context.Context, userID int) ([]*domain.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Invoice, 0)
	for _, inv := range r.store.invoices {
		if inv.UserID == userID {
			out = append(out, cloneInvoice(inv))
		}
	}
	return out, nil
}
