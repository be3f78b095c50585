package domain

import (
	"errors"
	"time"
)

// The customers/payments pair is a second bounded context covering the same
// conceptual clients as User/TaxReturn/Invoice. The two models evolved
// independently and are deliberately not reconciled; nothing links a Customer
// to a User beyond coincidental names.

const (
	CustomerActive   = "Active"
	CustomerInactive = "Inactive"
	CustomerPending  = "Pending"
)

const (
	PricingLump   = "lump"
	PricingHourly = "hourly"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Customer is the billing-desk view of a client.
type Customer struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Documents    int       `json:"documents"`
	Returns      int       `json:"returns"`
	Status       string    `json:"status"`
	Mobile       string    `json:"mobile,omitempty"`
	SSN          string    `json:"ssn,omitempty"`
	ReturnType   string    `json:"return_type,omitempty"`
	PricingModel string    `json:"pricing_model"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PaymentStatus is the state of a customer payment record.
type PaymentStatus string

const (
	PaymentReceived PaymentStatus = "Received"
	PaymentPending  PaymentStatus = "Pending"
	PaymentFailed   PaymentStatus = "Failed"
)

// Payment is a money movement recorded against a Customer (not an Invoice).
type Payment struct {
	ID           int           `json:"id"`
	CustomerID   int           `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	Amount       float64       `json:"amount"`
	Status       PaymentStatus `json:"status"`
	Date         time.Time     `json:"date"`
}
