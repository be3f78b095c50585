package ports

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// CreateInvoiceInput carries the data to bill a client. ReturnID may be nil
// or reference a return that does not exist; it is stored as given.
type CreateInvoiceInput struct {
	Actor       Actor
	UserID      int
	ReturnID    *int
	Amount      float64
	Description string
}

// RevenueSummary aggregates invoice amounts by billing status.
type RevenueSummary struct {
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Overdue float64 `json:"overdue"`
}

// InvoiceStatusCount is one bucket of the invoices-per-status rollup.
type InvoiceStatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// BillingService defines invoicing and payment operations. ProcessPayment on
// an unknown invoice returns domain.ErrInvoiceNotFound; on an already-Paid
// invoice it re-stamps the payment date and method without checking status.
type BillingService interface {
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (*domain.Invoice, error)
	ProcessPayment(ctx context.Context, actor Actor, invoiceID int, paymentMethod string) (*domain.Invoice, error)
	Get(ctx context.Context, actor Actor, id int) (*domain.Invoice, error)
	List(ctx context.Context, actor Actor) ([]*domain.Invoice, error)
	Revenue(ctx context.Context, actor Actor) (*RevenueSummary, error)
	StatusCounts(ctx context.Context, actor Actor) ([]InvoiceStatusCount, error)
}
