package ports

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Insert performs no
// duplicate-email check; the collection tolerates repeats.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
