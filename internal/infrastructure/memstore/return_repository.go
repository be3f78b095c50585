package memstore

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// ReturnRepository implements ports.ReturnRepository over the shared store.
type ReturnRepository struct {
	store *Store
}

// Insert assigns the next return id and stores a copy.
func (r *ReturnRepository) Insert(_ context.Context, ret *domain.TaxReturn) (*domain.TaxReturn, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.returnID++
	stored := cloneReturn(ret)
	stored.ID = r.store.returnID
	r.store.returns = append(r.store.returns, stored)
	return cloneReturn(stored), nil
}

// Update replaces the stored return with the given one, matched by id.
func (r *ReturnRepository) Update(_ context.Context, ret *domain.TaxReturn) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.returns {
		if existing.ID == ret.ID {
			r.store.returns[i] = cloneReturn(ret)
			return nil
		}
	}
	return domain.ErrReturnNotFound
}

func (r *ReturnRepository) FindByID(_ context.Context, id int) (*domain.TaxReturn, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, ret := range r.store.returns {
		if ret.ID == id {
			return cloneReturn(ret), nil
		}
	}
	return nil, domain.ErrReturnNotFound
}

func (r *ReturnRepository) List(_ context.Context) ([]*domain.TaxReturn, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.TaxReturn, 0, len(r.store.returns))
	for _, ret := range r.store.returns {
		out = append(out, cloneReturn(ret))
	}
	return out, nil
}

func (r *ReturnRepository) ListByUser(_ context.Context, userID int) ([]*domain.TaxReturn, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.TaxReturn, 0)
	for _, ret := range r.store.returns {
		if ret.UserID == userID {
			out = append(out, cloneReturn(ret))
		}
	}
	return out, nil
}

// AddDocument appends the document to the return's list, assigning its id
// from the shared document counter.
func (r *ReturnRepository) AddDocument(_ context.Context, returnID int, doc domain.Document) (*domain.Document, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, ret := range r.store.returns {
		if ret.ID == returnID {
			r.store.documentID++
			doc.ID = r.store.documentID
			ret.Documents = append(ret.Documents, doc)
			stored := doc
			return &stored, nil
		}
	}
	return nil, domain.ErrReturnNotFound
}

// AddComment appends the comment to the return's thread, assigning its id
// from the shared comment counter.
func (r *ReturnRepository) AddComment(_ context.Context, returnID int, comment domain.Comment) (*domain.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, ret := range r.store.returns {
		if ret.ID == returnID {
			r.store.commentID++
			comment.ID = r.store.commentID
			ret.Comments = append(ret.Comments, comment)
			stored := comment
			return &stored, nil
		}
	}
	return nil, domain.ErrReturnNotFound
}
