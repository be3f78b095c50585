package ports

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// CreateReturnInput carries the data needed to open a new tax return.
// When OwnerID is zero the return is created for the acting user and
// OwnerName is ignored; otherwise OwnerName is the snapshot stored on the
// return (falling back to the actor's name when empty).
type CreateReturnInput struct {
	Actor     Actor
	Type      string
	Year      string
	OwnerID   int
	OwnerName string
}

// ReturnPatch is a shallow-merge update: nil fields are left untouched.
// Status accepts any string; the progression in domain.ReturnStatuses is not
// enforced on writes.
type ReturnPatch struct {
	Type       *string
	Year       *string
	Status     *string
	AssignedTo *string
}

// AddDocumentInput carries client-reported metadata for an upload. No file
// bytes travel through the store.
type AddDocumentInput struct {
	Actor    Actor
	ReturnID int
	Name     string
	Type     string
	Size     string
	Notes    string
}

// StatusCount is one bucket of the returns-per-status rollup.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ReturnService defines the tax-return operations of the domain store. Every
// mutation appends exactly one activity-log entry attributed to the actor.
// Mutations against an unknown id return domain.ErrReturnNotFound and leave
// both the collection and the audit trail untouched.
type ReturnService interface {
	Create(ctx context.Context, in CreateReturnInput) (*domain.TaxReturn, error)
	Update(ctx context.Context, actor Actor, id int, patch ReturnPatch) (*domain.TaxReturn, error)
	Get(ctx context.Context, actor Actor, id int) (*domain.TaxReturn, error)
	List(ctx context.Context, actor Actor) ([]*domain.TaxReturn, error)
	AddDocument(ctx context.Context, in AddDocumentInput) (*domain.Document, error)
	AddComment(ctx context.Context, actor Actor, returnID int, text string) (*domain.Comment, error)
	StatusCounts(ctx context.Context, actor Actor) ([]StatusCount, error)
}
