package ports

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// CreateUserInput carries the data for a new account. Name and Email are the
// caller's responsibility to fill; the store applies defaults for the rest
// (status active, zeroed totals, join date today).
type CreateUserInput struct {
	Actor   Actor
	Name    string
	Email   string
	Role    string
	Phone   string
	Address string
}

// UserPatch is a shallow-merge update for a user record.
type UserPatch struct {
	Name    *string
	Email   *string
	Role    *string
	Status  *string
	Phone   *string
	Address *string
}

// UserService defines account management operations. Update against an
// unknown id returns domain.ErrUserNotFound without touching the collection
// or the audit trail.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor Actor, id int, patch UserPatch) (*domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
