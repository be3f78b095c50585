package memstore

import (
	"time"

	"github.com/taxpro/office-api/internal/core/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ts(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }
func intPtr(i int) *int              { return &i }

// Seed loads the demo dataset: four users, three tax returns, three
// invoices, four audit entries, two customers and three payments. Counters
// are advanced past the seeded ids so later inserts continue the sequences.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []*domain.User{
		{
			ID: 1, Name: "John Doe", Email: "john.doe@email.com",
			Role: domain.RoleUser, Status: domain.UserStatusActive,
			JoinDate: date(2024, time.January, 15),
			Phone:    "+1 (555) 123-4567", Address: "123 Main St, Anytown, ST 12345",
			TotalReturns: 3, TotalPaid: 750,
		},
		{
			ID: 2, Name: "Jane Smith", Email: "jane.smith@email.com",
			Role: domain.RoleUser, Status: domain.UserStatusActive,
			JoinDate: date(2024, time.February, 20),
			Phone:    "+1 (555) 987-6543", Address: "456 Oak Ave, Another City, ST 67890",
			TotalReturns: 2, TotalPaid: 500,
		},
		{
			ID: 3, Name: "Mike Johnson", Email: "mike.johnson@email.com",
			Role: domain.RolePreparer, Status: domain.UserStatusActive,
			JoinDate: date(2023, time.November, 10),
			Phone:    "+1 (555) 456-7890", Address: "789 Pine St, Tax City, ST 11111",
			TotalReturns: 15,
		},
		{
			ID: 4, Name: "Sarah Wilson", Email: "sarah.wilson@email.com",
			Role: domain.RoleReviewer, Status: domain.UserStatusActive,
			JoinDate: date(2023, time.December, 5),
			Phone:    "+1 (555) 321-0987", Address: "321 Elm St, Review Town, ST 22222",
			TotalReturns: 8,
		},
	}
	s.userID = 4

	s.returns = []*domain.TaxReturn{
		{
			ID: 1, UserID: 1, UserName: "John Doe",
			Type: "1040", Year: "2023", Status: domain.StatusFiled,
			DateCreated: date(2024, time.January, 20),
			DateUpdated: date(2024, time.February, 15),
			AssignedTo:  "Mike Johnson",
			Documents: []domain.Document{
				{ID: 1, Name: "W-2 Form.pdf", Type: "pdf", Size: "245 KB",
					UploadDate: date(2024, time.January, 20), Notes: "Primary W-2 from employer"},
				{ID: 2, Name: "1099-DIV.pdf", Type: "pdf", Size: "156 KB",
					UploadDate: date(2024, time.January, 22), Notes: "Dividend income statement"},
			},
			Comments: []domain.Comment{
				{ID: 1, Author: "John Doe", Date: date(2024, time.January, 20), Text: "Initial filing for 2023 tax year"},
				{ID: 2, Author: "Mike Johnson", Date: date(2024, time.February, 10), Text: "Review completed, ready to file"},
			},
		},
		{
			ID: 2, UserID: 1, UserName: "John Doe",
			Type: "1065", Year: "2023", Status: domain.StatusReview,
			DateCreated: date(2024, time.February, 1),
			DateUpdated: date(2024, time.February, 28),
			AssignedTo:  "Sarah Wilson",
			Documents: []domain.Document{
				{ID: 3, Name: "Partnership Agreement.pdf", Type: "pdf", Size: "1.2 MB",
					UploadDate: date(2024, time.February, 1), Notes: "Partnership formation documents"},
				{ID: 4, Name: "Business Receipts.pdf", Type: "pdf", Size: "890 KB",
					UploadDate: date(2024, time.February, 5), Notes: "Q4 business expenses"},
			},
			Comments: []domain.Comment{
				{ID: 3, Author: "John Doe", Date: date(2024, time.February, 1), Text: "Partnership return for new business"},
				{ID: 4, Author: "Sarah Wilson", Date: date(2024, time.February, 25), Text: "Need additional documentation for Schedule K-1"},
			},
		},
		{
			ID: 3, UserID: 2, UserName: "Jane Smith",
			Type: "1040", Year: "2023", Status: domain.StatusPreparationStarted,
			DateCreated: date(2024, time.February, 15),
			DateUpdated: date(2024, time.March, 1),
			AssignedTo:  "Mike Johnson",
			Documents: []domain.Document{
				{ID: 5, Name: "W-2 Form.pdf", Type: "pdf", Size: "198 KB",
					UploadDate: date(2024, time.February, 15), Notes: "Employment income"},
			},
			Comments: []domain.Comment{
				{ID: 5, Author: "Jane Smith", Date: date(2024, time.February, 15), Text: "Standard deduction filing"},
			},
		},
	}
	s.returnID = 3
	s.documentID = 5
	s.commentID = 5

	s.invoices = []*domain.Invoice{
		{
			ID: 1, UserID: 1, UserName: "John Doe", ReturnID: intPtr(1),
			Amount: 250, Status: domain.InvoicePaid,
			DateIssued: date(2024, time.February, 10),
			DatePaid:   datePtr(date(2024, time.February, 12)),
			DueDate:    date(2024, time.February, 25),
			Description: "Tax Return Preparation - Form 1040", PaymentMethod: "Credit Card",
		},
		{
			ID: 2, UserID: 1, UserName: "John Doe", ReturnID: intPtr(2),
			Amount: 500, Status: domain.InvoicePending,
			DateIssued:  date(2024, time.February, 28),
			DueDate:     date(2024, time.March, 15),
			Description: "Tax Return Preparation - Form 1065",
		},
		{
			ID: 3, UserID: 2, UserName: "Jane Smith", ReturnID: intPtr(3),
			Amount: 200, Status: domain.InvoiceOverdue,
			DateIssued:  date(2024, time.February, 20),
			DueDate:     date(2024, time.March, 5),
			Description: "Tax Return Preparation - Form 1040",
		},
	}
	s.invoiceID = 3

	// newest-first; the historical labels predate the current action
	// constants and are kept verbatim
	s.activity = []*domain.ActivityLog{
		{
			ID: 3, UserID: 3, UserName: "Mike Johnson", Action: "Status Updated",
			Details:   `Changed status from "Review" to "Filed" for John Doe's 2023 Tax Return`,
			Timestamp: ts(2024, time.February, 15, 14, 20, 0), ReturnID: intPtr(1),
		},
		{
			ID: 4, UserID: 1, UserName: "John Doe", Action: "Payment Made",
			Details:   "Paid invoice #1 - $250.00",
			Timestamp: ts(2024, time.February, 12, 9, 15, 0), ReturnID: intPtr(1),
		},
		{
			ID: 2, UserID: 1, UserName: "John Doe", Action: domain.ActionCommentAdded,
			Details:   "Added comment to 2023 Tax Return",
			Timestamp: ts(2024, time.January, 20, 10, 35, 0), ReturnID: intPtr(1),
		},
		{
			ID: 1, UserID: 1, UserName: "John Doe", Action: domain.ActionDocumentUpload,
			Details:   "Uploaded W-2 Form.pdf for 2023 Tax Return",
			Timestamp: ts(2024, time.January, 20, 10, 30, 0), ReturnID: intPtr(1),
		},
	}
	s.activityID = 4

	s.customers = []*domain.Customer{
		{
			ID: 1, Name: "John Doe", Email: "john.doe@email.com",
			Documents: 5, Returns: 2, Status: domain.CustomerActive,
			Mobile: "+1 (555) 111-2222", SSN: "123-45-6789", ReturnType: "1040",
			PricingModel: domain.PricingLump, Price: 250,
			CreatedAt: ts(2024, time.January, 15, 9, 30, 0),
			UpdatedAt: ts(2024, time.February, 20, 11, 0, 0),
		},
		{
			ID: 2, Name: "Jane Smith", Email: "jane.smith@email.com",
			Documents: 3, Returns: 1, Status: domain.CustomerPending,
			Mobile: "+1 (555) 333-4444", SSN: "987-65-4321", ReturnType: "1040",
			PricingModel: domain.PricingHourly, Price: 100,
			CreatedAt: ts(2024, time.February, 5, 12, 0, 0),
			UpdatedAt: ts(2024, time.March, 1, 8, 0, 0),
		},
	}

	s.payments = []*domain.Payment{
		{ID: 1, CustomerID: 1, CustomerName: "John Doe", Amount: 250,
			Status: domain.PaymentReceived, Date: ts(2024, time.February, 12, 9, 15, 0)},
		{ID: 2, CustomerID: 2, CustomerName: "Jane Smith", Amount: 200,
			Status: domain.PaymentPending, Date: ts(2024, time.March, 6, 13, 45, 0)},
		{ID: 3, CustomerID: 1, CustomerName: "John Doe", Amount: 150,
			Status: domain.PaymentReceived, Date: ts(2024, time.April, 1, 10, 10, 0)},
	}
}
