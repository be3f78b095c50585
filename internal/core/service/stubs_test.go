package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func adminActor() ports.Actor {
	return ports.Actor{ID: 4, Name: "Admin User", Role: domain.RoleAdmin}
}

func clientActor() ports.Actor {
	return ports.Actor{ID: 1, Name: "John Doe", Role: domain.RoleUser}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// stubReturnRepo keeps returns in insertion order and assigns ids from a
// monotonic counter, matching the real store's behavior.
type stubReturnRepo struct {
	returns []*domain.TaxReturn
	nextID  int
	docID   int
	noteID  int
}

func newStubReturnRepo(seed ...*domain.TaxReturn) *stubReturnRepo {
	repo := &stubReturnRepo{}
	for _, ret := range seed {
		if ret.ID > repo.nextID {
			repo.nextID = ret.ID
		}
		repo.returns = append(repo.returns, ret)
	}
	return repo
}

func (r *stubReturnRepo) Insert(_ context.Context, ret *domain.TaxReturn) (*domain.TaxReturn, error) {
	r.nextID++
	stored := *ret
	stored.ID = r.nextID
	r.returns = append(r.returns, &stored)
	return &stored, nil
}

func (r *stubReturnRepo) Update(_ context.Context, ret *domain.TaxReturn) error {
	for i, existing := range r.returns {
		if existing.ID == ret.ID {
			stored := *ret
			r.returns[i] = &stored
			return nil
		}
	}
	return domain.ErrReturnNotFound
}

func (r *stubReturnRepo) FindByID(_ context.Context, id int) (*domain.TaxReturn, error) {
	for _, ret := range r.returns {
		if ret.ID == id {
			clone := *ret
			return &clone, nil
		}
	}
	return nil, domain.ErrReturnNotFound
}

func (r *stubReturnRepo) List(_ context.Context) ([]*domain.TaxReturn, error) {
	out := make([]*domain.TaxReturn, len(r.returns))
	copy(out, r.returns)
	return out, nil
}

func (r *stubReturnRepo) ListByUser(_ context.Context, userID int) ([]*domain.TaxReturn, error) {
	var out []*domain.TaxReturn
	for _, ret := range r.returns {
		if ret.UserID == userID {
			out = append(out, ret)
		}
	}
	return out, nil
}

func (r *stubReturnRepo) AddDocument(_ context.Context, returnID int, doc domain.Document) (*domain.Document, error) {
	for _, ret := range r.returns {
		if ret.ID == returnID {
			r.docID++
			doc.ID = r.docID
			ret.Documents = append(ret.Documents, doc)
			return &doc, nil
		}
	}
	return nil, domain.ErrReturnNotFound
}

func (r *stubReturnRepo) AddComment(_ context.Context, returnID int, comment domain.Comment) (*domain.Comment, error) {
	for _, ret := range r.returns {
		if ret.ID == returnID {
			r.noteID++
			comment.ID = r.noteID
			ret.Comments = append(ret.Comments, comment)
			return &comment, nil
		}
	}
	return nil, domain.ErrReturnNotFound
}

type stubUserRepo struct {
	users  []*domain.User
	nextID int
}

func newStubUserRepo(seed ...*domain.User) *stubUserRepo {
	repo := &stubUserRepo{}
	for _, user := range seed {
		if user.ID > repo.nextID {
			repo.nextID = user.ID
		}
		repo.users = append(repo.users, user)
	}
	return repo
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	stored := *user
	stored.ID = r.nextID
	r.users = append(r.users, &stored)
	return &stored, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	for i, existing := range r.users {
		if existing.ID == user.ID {
			stored := *user
			r.users[i] = &stored
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

type stubInvoiceRepo struct {
	invoices []*domain.Invoice
	nextID   int
}

func newStubInvoiceRepo(seed ...*domain.Invoice) *stubInvoiceRepo {
	repo := &stubInvoiceRepo{}
	for _, inv := range seed {
		if inv.ID > repo.nextID {
			repo.nextID = inv.ID
		}
		repo.invoices = append(repo.invoices, inv)
	}
	return repo
}

func (r *stubInvoiceRepo) Insert(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	r.nextID++
	stored := *inv
	stored.ID = r.nextID
	r.invoices = append(r.invoices, &stored)
	return &stored, nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, inv *domain.Invoice) error {
	for i, existing := range r.invoices {
		if existing.ID == inv.ID {
			stored := *inv
			r.invoices[i] = &stored
			return nil
		}
	}
	return domain.ErrInvoiceNotFound
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id int) (*domain.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			clone := *inv
			return &clone, nil
		}
	}
	return nil, domain.ErrInvoiceNotFound
}

func (r *stubInvoiceRepo) List(_ context.Context) ([]*domain.Invoice, error) {
	out := make([]*domain.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

func (r *stubInvoiceRepo) ListByUser(_ context.Context, userID int) ([]*domain.Invoice, error) {
	var out []*domain.Invoice
	for _, inv := range r.invoices {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

// stubActivityRepo prepends entries so the trail reads newest-first.
type stubActivityRepo struct {
	entries []*domain.ActivityLog
	nextID  int
}

func newStubActivityRepo(seed ...*domain.ActivityLog) *stubActivityRepo {
	repo := &stubActivityRepo{}
	for _, entry := range seed {
		if entry.ID > repo.nextID {
			repo.nextID = entry.ID
		}
		repo.entries = append(repo.entries, entry)
	}
	return repo
}

func (r *stubActivityRepo) Append(_ context.Context, entry domain.ActivityLog) (*domain.ActivityLog, error) {
	r.nextID++
	entry.ID = r.nextID
	stored := entry
	r.entries = append([]*domain.ActivityLog{&stored}, r.entries...)
	return &stored, nil
}

func (r *stubActivityRepo) List(_ context.Context) ([]*domain.ActivityLog, error) {
	out := make([]*domain.ActivityLog, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *stubActivityRepo) ListByUser(_ context.Context, userID int) ([]*domain.ActivityLog, error) {
	var out []*domain.ActivityLog
	for _, entry := range r.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	return out, nil
}

type stubCustomerRepo struct {
	customers []*domain.Customer
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id int) (*domain.Customer, error) {
	for _, customer := range r.customers {
		if customer.ID == id {
			clone := *customer
			return &clone, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	for i, existing := range r.customers {
		if existing.ID == customer.ID {
			stored := *customer
			r.customers[i] = &stored
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

type stubPaymentRepo struct {
	payments []*domain.Payment
}

func (r *stubPaymentRepo) List(_ context.Context) ([]*domain.Payment, error) {
	out := make([]*domain.Payment, len(r.payments))
	copy(out, r.payments)
	return out, nil
}

func (r *stubPaymentRepo) ListByCustomer(_ context.Context, customerID int) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range r.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}
