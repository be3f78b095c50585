package memstore

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// ActivityRepository implements ports.ActivityRepository over the shared
// store. The trail is kept newest-first.
type ActivityRepository struct {
	store *Store
}

// Append assigns the next entry id and prepends the entry.
func (r *ActivityRepository) Append(_ context.Context, entry domain.ActivityLog) (*domain.ActivityLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.activityID++
	entry.ID = r.store.activityID
	stored := cloneActivity(&entry)
	r.store.activity = append([]*domain.ActivityLog{stored}, r.store.activity...)
	return cloneActivity(stored), nil
}

func (r *ActivityRepository) List(_ context.Context) ([]*domain.ActivityLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.ActivityLog, 0, len(r.store.activity))
	for _, entry := range r.store.activity {
		out = append(out, cloneActivity(entry))
	}
	return out, nil
}

func (r *ActivityRepository) ListByUser(_ context.Context, userID int) ([]*domain.ActivityLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.ActivityLog, 0)
	for _, entry := range r.store.activity {
		if entry.UserID == userID {
			out = append(out, cloneActivity(entry))
		}
	}
	return out, nil
}
