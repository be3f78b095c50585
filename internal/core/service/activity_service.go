package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

// ActivityService exposes read views over the audit trail.
type ActivityService struct {
	activity ports.ActivityRepository
	logger   zerolog.Logger
}

func NewActivityService(activity ports.ActivityRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{activity: activity, logger: logger}
}

// List returns the trail newest-first: all entries for admins, the actor's
// own otherwise.
func (s *ActivityService) List(ctx context.Context, actor ports.Actor) ([]*domain.ActivityLog, error) {
	if seesAll(actor) {
		return s.activity.List(ctx)
	}
	return s.activity.ListByUser(ctx, actor.ID)
}

// Summary aggregates the actor's visible trail: today/this-week counts and a
// per-category tally keyed by the first word of each action label.
func (s *ActivityService) Summary(ctx context.Context, actor ports.Actor) (*ports.ActivitySummary, error) {
	entries, err := s.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	summary := &ports.ActivitySummary{
		Total:      len(entries),
		Categories: make(map[string]int),
	}
	for _, entry := range entries {
		if !entry.Timestamp.Before(startOfDay) {
			summary.Today++
		}
		if entry.Timestamp.After(weekAgo) {
			summary.ThisWeek++
		}
		summary.Categories[domain.ActivityCategory(entry.Action)]++
	}

	for category, count := range summary.Categories {
		// ties resolve to the lexicographically smaller category so the
		// result is deterministic across map iteration orders
		if count > summary.TopCategoryCount ||
			(count == summary.TopCategoryCount && category < summary.TopCategory) {
			summary.TopCategory = category
			summary.TopCategoryCount = count
		}
	}
	return summary, nil
}
