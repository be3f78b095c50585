package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

// dueInDays is how long after issue an invoice falls due.
const dueInDays = 15

// BillingService implements invoicing and payment processing.
type BillingService struct {
	invoices ports.InvoiceRepository
	users    ports.UserRepository
	activity ports.ActivityRepository
	logger   zerolog.Logger
}

func NewBillingService(invoices ports.InvoiceRepository, users ports.UserRepository, activity ports.ActivityRepository, logger zerolog.Logger) *BillingService {
	return &BillingService{invoices: invoices, users: users, activity: activity, logger: logger}
}

// CreateInvoice issues a Pending invoice due 15 days from today. The billed
// user's name is snapshotted at this point; a missing user yields the
// "Unknown User" placeholder rather than an error, and ReturnID is stored
// without checking that the return exists.
func (s *BillingService) CreateInvoice(ctx context.Context, in ports.CreateInvoiceInput) (*domain.Invoice, error) {
	userName := "Unknown User"
	user, err := s.users.FindByID(ctx, in.UserID)
	switch {
	case err == nil:
		userName = user.Name
	case errors.Is(err, domain.ErrUserNotFound):
		// keep the placeholder
	default:
		return nil, err
	}

	issued := today()
	inv := &domain.Invoice{
		UserID:      in.UserID,
		UserName:    userName,
		ReturnID:    in.ReturnID,
		Amount:      in.Amount,
		Status:      domain.InvoicePending,
		DateIssued:  issued,
		DueDate:     issued.AddDate(0, 0, dueInDays),
		Description: in.Description,
	}

	created, err := s.invoices.Insert(ctx, inv)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create invoice")
		return nil, err
	}

	appendActivity(ctx, s.activity, s.logger, in.Actor,
		domain.ActionInvoiceCreated,
		fmt.Sprintf("Generated invoice #%d for $%s", created.ID, formatAmount(in.Amount)),
		in.ReturnID)

	s.logger.Info().Int("invoice_id", created.ID).Float64("amount", in.Amount).Msg("invoice generated")
	return created, nil
}

// ProcessPayment marks the invoice Paid, stamping the payment date and
// method. Status is not checked first: paying an already-Paid invoice
// re-stamps date and method. The audit entry is built from the invoice as
// read before the update commits, so the logged amount and return reference
// come from that pre-mutation snapshot.
func (s *BillingService) ProcessPayment(ctx context.Context, actor ports.Actor, invoiceID int, paymentMethod string) (*domain.Invoice, error) {
	snapshot, err := s.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	paid := *snapshot
	now := today()
	paid.Status = domain.InvoicePaid
	paid.DatePaid = &now
	paid.PaymentMethod = paymentMethod

	if err := s.invoices.Update(ctx, &paid); err != nil {
		return nil, err
	}

	appendActivity(ctx, s.activity, s.logger, actor,
		domain.ActionPaymentDone,
		fmt.Sprintf("Payment of $%s processed for invoice #%d", formatAmount(snapshot.Amount), invoiceID),
		snapshot.ReturnID)

	s.logger.Info().Int("invoice_id", invoiceID).Str("method", paymentMethod).Msg("payment processed")
	return &paid, nil
}

// Get fetches one invoice. Non-admins can only read their own.
func (s *BillingService) Get(ctx context.Context, actor ports.Actor, id int) (*domain.Invoice, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !seesAll(actor) && inv.UserID != actor.ID {
		return nil, domain.ErrInvoiceNotFound
	}
	return inv, nil
}

// List returns every invoice for admins, the actor's own otherwise.
func (s *BillingService) List(ctx context.Context, actor ports.Actor) ([]*domain.Invoice, error) {
	if seesAll(actor) {
		return s.invoices.List(ctx)
	}
	return s.invoices.ListByUser(ctx, actor.ID)
}

// Revenue sums the actor's visible invoice amounts, total and per status.
func (s *BillingService) Revenue(ctx context.Context, actor ports.Actor) (*ports.RevenueSummary, error) {
	invoices, err := s.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	var summary ports.RevenueSummary
	for _, inv := range invoices {
		summary.Total += inv.Amount
		switch inv.Status {
		case domain.InvoicePaid:
			summary.Paid += inv.Amount
		case domain.InvoicePending:
			summary.Pending += inv.Amount
		case domain.InvoiceOverdue:
			summary.Overdue += inv.Amount
		}
	}
	return &summary, nil
}

// StatusCounts tallies the actor's visible invoices per billing status.
func (s *BillingService) StatusCounts(ctx context.Context, actor ports.Actor) ([]ports.InvoiceStatusCount, error) {
	invoices, err := s.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[domain.InvoiceStatus]int, len(domain.InvoiceStatuses))
	for _, inv := range invoices {
		byStatus[inv.Status]++
	}

	counts := make([]ports.InvoiceStatusCount, 0, len(domain.InvoiceStatuses))
	for _, status := range domain.InvoiceStatuses {
		counts = append(counts, ports.InvoiceStatusCount{Status: string(status), Count: byStatus[status]})
	}
	return counts, nil
}
