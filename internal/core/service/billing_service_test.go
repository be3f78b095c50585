package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

func TestBillingServiceCreateInvoice(t *testing.T) {
	users := newStubUserRepo(&domain.User{ID: 1, Name: "John Doe"})
	invoices := newStubInvoiceRepo()
	activity := newStubActivityRepo()
	svc := NewBillingService(invoices, users, activity, testLogger())

	created, err := svc.CreateInvoice(context.Background(), ports.CreateInvoiceInput{
		Actor:       adminActor(),
		UserID:      1,
		ReturnID:    intPtr(7),
		Amount:      250,
		Description: "Individual tax return preparation",
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	if created.Status != domain.InvoicePending {
		t.Errorf("expected status Pending, got %q", created.Status)
	}
	if created.UserName != "John Doe" {
		t.Errorf("expected user name snapshot, got %q", created.UserName)
	}
	if created.DatePaid != nil {
		t.Errorf("expected no payment date, got %v", created.DatePaid)
	}
	wantDue := created.DateIssued.AddDate(0, 0, 15)
	if !created.DueDate.Equal(wantDue) {
		t.Errorf("expected due date %v, got %v", wantDue, created.DueDate)
	}

	entries, _ := activity.List(context.Background())
	if len(entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(entries))
	}
	if entries[0].Action != domain.ActionInvoiceCreated {
		t.Errorf("expected action %q, got %q", domain.ActionInvoiceCreated, entries[0].Action)
	}
	if entries[0].Details != "Generated invoice #1 for $250" {
		t.Errorf("unexpected details %q", entries[0].Details)
	}
	if entries[0].ReturnID == nil || *entries[0].ReturnID != 7 {
		t.Errorf("expected entry linked to return 7, got %v", entries[0].ReturnID)
	}
}

func TestBillingServiceCreateInvoiceUnknownUser(t *testing.T) {
	svc := NewBillingService(newStubInvoiceRepo(), newStubUserRepo(), newStubActivityRepo(), testLogger())

	created, err := svc.CreateInvoice(context.Background(), ports.CreateInvoiceInput{
		Actor:  adminActor(),
		UserID: 999,
		Amount: 100,
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if created.UserName != "Unknown User" {
		t.Errorf("expected placeholder name, got %q", created.UserName)
	}
}

func TestBillingServiceProcessPayment(t *testing.T) {
	seeded := &domain.Invoice{
		ID:         1,
		UserID:     1,
		UserName:   "John Doe",
		ReturnID:   intPtr(3),
		Amount:     250,
		Status:     domain.InvoicePending,
		DateIssued: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	invoices := newStubInvoiceRepo(seeded)
	activity := newStubActivityRepo()
	svc := NewBillingService(invoices, newStubUserRepo(), activity, testLogger())

	paid, err := svc.ProcessPayment(context.Background(), adminActor(), 1, "Credit Card")
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}

	if paid.Status != domain.InvoicePaid {
		t.Errorf("expected status Paid, got %q", paid.Status)
	}
	if paid.DatePaid == nil {
		t.Fatal("expected payment date stamped")
	}
	if paid.PaymentMethod != "Credit Card" {
		t.Errorf("expected payment method recorded, got %q", paid.PaymentMethod)
	}

	entries, _ := activity.List(context.Background())
	if len(entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(entries))
	}
	if entries[0].Details != "Payment of $250 processed for invoice #1" {
		t.Errorf("unexpected details %q", entries[0].Details)
	}
	if entries[0].ReturnID == nil || *entries[0].ReturnID != 3 {
		t.Errorf("expected entry linked to return 3, got %v", entries[0].ReturnID)
	}
}

func TestBillingServiceProcessPaymentRestamps(t *testing.T) {
	earlier := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	seeded := &domain.Invoice{
		ID:            1,
		UserID:        1,
		Amount:        90,
		Status:        domain.InvoicePaid,
		DatePaid:      &earlier,
		PaymentMethod: "Check",
	}
	invoices := newStubInvoiceRepo(seeded)
	svc := NewBillingService(invoices, newStubUserRepo(), newStubActivityRepo(), testLogger())

	paid, err := svc.ProcessPayment(context.Background(), adminActor(), 1, "Bank Transfer")
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if paid.DatePaid == nil || !paid.DatePaid.After(earlier) {
		t.Errorf("expected payment date re-stamped past %v, got %v", earlier, paid.DatePaid)
	}
	if paid.PaymentMethod != "Bank Transfer" {
		t.Errorf("expected method replaced, got %q", paid.PaymentMethod)
	}
}

func TestBillingServiceProcessPaymentUnknownInvoice(t *testing.T) {
	activity := newStubActivityRepo()
	svc := NewBillingService(newStubInvoiceRepo(), newStubUserRepo(), activity, testLogger())

	_, err := svc.ProcessPayment(context.Background(), adminActor(), 42, "Credit Card")
	if !errors.Is(err, domain.ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
	entries, _ := activity.List(context.Background())
	if len(entries) != 0 {
		t.Errorf("expected no activity entry, got %d", len(entries))
	}
}

func TestBillingServiceRevenueAndCounts(t *testing.T) {
	invoices := newStubInvoiceRepo(
		&domain.Invoice{ID: 1, UserID: 1, Amount: 250, Status: domain.InvoicePaid},
		&domain.Invoice{ID: 2, UserID: 2, Amount: 450, Status: domain.InvoicePending},
		&domain.Invoice{ID: 3, UserID: 3, Amount: 90, Status: domain.InvoiceOverdue},
	)
	svc := NewBillingService(invoices, newStubUserRepo(), newStubActivityRepo(), testLogger())

	revenue, err := svc.Revenue(context.Background(), adminActor())
	if err != nil {
		t.Fatalf("Revenue: %v", err)
	}
	if revenue.Total != 790 || revenue.Paid != 250 || revenue.Pending != 450 || revenue.Overdue != 90 {
		t.Errorf("unexpected revenue summary %+v", revenue)
	}

	counts, err := svc.StatusCounts(context.Background(), adminActor())
	if err != nil {
		t.Fatalf("StatusCounts: %v", err)
	}
	want := map[string]int{"Pending": 1, "Paid": 1, "Overdue": 1}
	for _, c := range counts {
		if c.Count != want[c.Status] {
			t.Errorf("bucket %q: expected %d, got %d", c.Status, want[c.Status], c.Count)
		}
	}
}

func TestBillingServiceListScoping(t *testing.T) {
	invoices := newStubInvoiceRepo(
		&domain.Invoice{ID: 1, UserID: 1, Amount: 100},
		&domain.Invoice{ID: 2, UserID: 2, Amount: 200},
	)
	svc := NewBillingService(invoices, newStubUserRepo(), newStubActivityRepo(), testLogger())

	own, err := svc.List(context.Background(), clientActor())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(own) != 1 || own[0].UserID != 1 {
		t.Errorf("client list leaked foreign invoices: %+v", own)
	}

	if _, err := svc.Get(context.Background(), clientActor(), 2); !errors.Is(err, domain.ErrInvoiceNotFound) {
		t.Errorf("expected cross-user Get to report not found, got %v", err)
	}
}
