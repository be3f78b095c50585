package domain

import (
	"errors"
	"time"
)

// InvoiceStatus represents the billing state of an invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "Pending"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// InvoiceStatuses lists the billing states in rollup order.
var InvoiceStatuses = []InvoiceStatus{InvoicePending, InvoicePaid, InvoiceOverdue}

var ErrInvoiceNotFound = errors.New("invoice not found")

// Invoice bills a client for preparation work. UserName is a creation-time
// snapshot; ReturnID optionally references a tax return and is accepted
// without validation.
type Invoice struct {
	ID            int           `json:"id"`
	UserID        int           `json:"user_id"`
	UserName      string        `json:"user_name"`
	ReturnID      *int          `json:"return_id"`
	Amount        float64       `json:"amount"`
	Status        InvoiceStatus `json:"status"`
	DateIssued    time.Time     `json:"date_issued"`
	DatePaid      *time.Time    `json:"date_paid"`
	DueDate       time.Time     `json:"due_date"`
	Description   string        `json:"description"`
	PaymentMethod string        `json:"payment_method,omitempty"`
}
