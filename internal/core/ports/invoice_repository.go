package ports

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// InvoiceRepository defines persistence for invoices.
type InvoiceRepository interface {
	Insert(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	FindByID(ctx context.Context, id int) (*domain.Invoice, error)
	List(ctx context.Context) ([]*domain.Invoice, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Invoice, error)
}
