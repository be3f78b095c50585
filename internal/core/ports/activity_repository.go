package ports

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// ActivityRepository defines persistence for the audit trail. Append assigns
// the id and stores entries newest-first; List returns them in that order.
type ActivityRepository interface {
	Append(ctx context.Context, entry domain.ActivityLog) (*domain.ActivityLog, error)
	List(ctx context.Context) ([]*domain.ActivityLog, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.ActivityLog, error)
}
