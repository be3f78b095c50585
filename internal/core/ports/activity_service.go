package ports

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// ActivitySummary is the aggregated view of an actor's audit trail.
// TopCategory is the most frequent first word of the action labels.
type ActivitySummary struct {
	Total            int            `json:"total"`
	Today            int            `json:"today"`
	ThisWeek         int            `json:"this_week"`
	TopCategory      string         `json:"top_category"`
	TopCategoryCount int            `json:"top_category_count"`
	Categories       map[string]int `json:"categories"`
}

// ActivityService exposes read access to the audit trail. Admins see every
// entry; all other roles see only entries they produced.
type ActivityService interface {
	List(ctx context.Context, actor Actor) ([]*domain.ActivityLog, error)
	Summary(ctx context.Context, actor Actor) (*ActivitySummary, error)
}
