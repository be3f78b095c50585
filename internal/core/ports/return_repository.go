package ports

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// ReturnRepository defines persistence for tax returns and their embedded
// documents and comments. Implementations assign ids from per-collection
// monotonic counters.
type ReturnRepository interface {
	Insert(ctx context.Context, ret *domain.TaxReturn) (*domain.TaxReturn, error)
	Update(ctx context.Context, ret *domain.TaxReturn) error
	FindByID(ctx context.Context, id int) (*domain.TaxReturn, error)
	List(ctx context.Context) ([]*domain.TaxReturn, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.TaxReturn, error)
	AddDocument(ctx context.Context, returnID int, doc domain.Document) (*domain.Document, error)
	AddComment(ctx context.Context, returnID int, comment domain.Comment) (*domain.Comment, error)
}
