package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

// OverviewService composes the dashboard landing rollup from the other
// collections' read views.
type OverviewService struct {
	users    ports.UserRepository
	returns  ports.ReturnRepository
	invoices ports.InvoiceRepository
	logger   zerolog.Logger
}

func NewOverviewService(users ports.UserRepository, returns ports.ReturnRepository, invoices ports.InvoiceRepository, logger zerolog.Logger) *OverviewService {
	return &OverviewService{users: users, returns: returns, invoices: invoices, logger: logger}
}

// Stats computes the overview counters. Admins see system-wide figures;
// everyone else sees only their own records (TotalUsers stays zero for them).
func (s *OverviewService) Stats(ctx context.Context, actor ports.Actor) (*ports.OverviewStats, error) {
	stats := &ports.OverviewStats{}

	var (
		returns  []*domain.TaxReturn
		invoices []*domain.Invoice
		err      error
	)
	if seesAll(actor) {
		users, err := s.users.List(ctx)
		if err != nil {
			return nil, err
		}
		stats.TotalUsers = len(users)

		returns, err = s.returns.List(ctx)
		if err != nil {
			return nil, err
		}
		invoices, err = s.invoices.List(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		returns, err = s.returns.ListByUser(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		invoices, err = s.invoices.ListByUser(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
	}

	stats.TotalReturns = len(returns)
	for _, ret := range returns {
		switch ret.Status {
		case domain.StatusReview, domain.StatusPreparationStarted:
			stats.PendingReturns++
		case domain.StatusFiled:
			stats.CompletedReturns++
		}
		stats.TotalDocuments += len(ret.Documents)
	}

	stats.TotalInvoices = len(invoices)
	for _, inv := range invoices {
		stats.TotalRevenue += inv.Amount
		if inv.Status == domain.InvoicePaid {
			stats.PaidInvoices++
		}
	}
	return stats, nil
}
