// Package memstore implements the repository ports over in-process
// collections. All application state lives here for the lifetime of the
// process; nothing is persisted across restarts.
package memstore

import (
	"sync"

	"github.com/taxpro/office-api/internal/core/domain"
)

// Store holds the five domain collections behind a single mutex. Ids come
// from per-collection monotonic counters so they stay unique even after
// interleaved inserts.
type Store struct {
	mu sync.RWMutex

	users    []*domain.User
	returns  []*domain.TaxReturn
	invoices []*domain.Invoice
	// activity is kept newest-first; Append prepends.
	activity  []*domain.ActivityLog
	customers []*domain.Customer
	payments  []*domain.Payment

	userID     int
	returnID   int
	invoiceID  int
	activityID int
	documentID int
	commentID  int
}

// New creates an empty store. Call Seed to load the demo fixtures.
func New() *Store {
	return &Store{}
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepository { return &UserRepository{store: s} }

// Returns returns the tax-return repository view of the store.
func (s *Store) Returns() *ReturnRepository { return &ReturnRepository{store: s} }

// Invoices returns the invoice repository view of the store.
func (s *Store) Invoices() *InvoiceRepository { return &InvoiceRepository{store: s} }

// Activity returns the audit-trail repository view of the store.
func (s *Store) Activity() *ActivityRepository { return &ActivityRepository{store: s} }

// Customers returns the customer repository view of the store.
func (s *Store) Customers() *CustomerRepository { return &CustomerRepository{store: s} }

// Payments returns the payment repository view of the store.
func (s *Store) Payments() *PaymentRepository { return &PaymentRepository{store: s} }

func cloneReturn(ret *domain.TaxReturn) *domain.TaxReturn {
	clone := *ret
	// lists stay non-nil so they serialize as [] rather than null
	clone.Documents = make([]domain.Document, len(ret.Documents))
	copy(clone.Documents, ret.Documents)
	clone.Comments = make([]domain.Comment, len(ret.Comments))
	copy(clone.Comments, ret.Comments)
	return &clone
}

func cloneUser(user *domain.User) *domain.User {
	clone := *user
	return &clone
}

func cloneInvoice(inv *domain.Invoice) *domain.Invoice {
	clone := *inv
	if inv.ReturnID != nil {
		id := *inv.ReturnID
		clone.ReturnID = &id
	}
	if inv.DatePaid != nil {
		ts := *inv.DatePaid
		clone.DatePaid = &ts
	}
	return &clone
}

func cloneActivity(entry *domain.ActivityLog) *domain.ActivityLog {
	clone := *entry
	if entry.ReturnID != nil {
		id := *entry.ReturnID
		clone.ReturnID = &id
	}
	return &clone
}

func cloneCustomer(customer *domain.Customer) *domain.Customer {
	clone := *customer
	return &clone
}

func clonePayment(payment *domain.Payment) *domain.Payment {
	clone := *payment
	return &clone
}
