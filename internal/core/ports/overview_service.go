package ports

import "context"

// OverviewStats is the dashboard landing rollup. For admins the figures span
// all collections; for everyone else they cover only the actor's records.
// PendingReturns counts Review and Preparation started; CompletedReturns
// counts Filed.
type OverviewStats struct {
	TotalUsers       int     `json:"total_users"`
	TotalReturns     int     `json:"total_returns"`
	PendingReturns   int     `json:"pending_returns"`
	CompletedReturns int     `json:"completed_returns"`
	TotalDocuments   int     `json:"total_documents"`
	TotalInvoices    int     `json:"total_invoices"`
	PaidInvoices     int     `json:"paid_invoices"`
	TotalRevenue     float64 `json:"total_revenue"`
}

// OverviewService computes the dashboard overview.
type OverviewService interface {
	Stats(ctx context.Context, actor Actor) (*OverviewStats, error)
}
