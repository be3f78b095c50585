package memstore

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// UserRepository implements ports.UserRepository over the shared store.
type UserRepository struct {
	store *Store
}

// Insert assigns the next user id and stores a copy. Duplicate emails are
// not rejected.
func (r *UserRepository) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.userID++
	stored := cloneUser(user)
	stored.ID = r.store.userID
	r.store.users = append(r.store.users, stored)
	return cloneUser(stored), nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.users {
		if existing.ID == user.ID {
			r.store.users[i] = cloneUser(user)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id int) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.ID == id {
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		out = append(out, cloneUser(user))
	}
	return out, nil
}
