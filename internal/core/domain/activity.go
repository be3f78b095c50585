package domain

import (
	"strings"
	"time"
)

// Action labels written by store mutations. Free text elsewhere matches these
// by substring, so the exact wording is part of the contract.
const (
	ActionReturnCreated   = "Tax Return Created"
	ActionReturnUpdated   = "Tax Return Updated"
	ActionDocumentUpload  = "Document Uploaded"
	ActionCommentAdded    = "Comment Added"
	ActionUserCreated     = "User Created"
	ActionUserUpdated     = "User Updated"
	ActionInvoiceCreated  = "Invoice Generated"
	ActionPaymentDone     = "Payment Processed"
	ActionCustomerUpdated = "Customer Updated"
	ActionCustomerPricing = "Customer Pricing Updated"
)

// ActivityLog is one audit entry. UserID/UserName snapshot the acting user;
// ReturnID is set when the action concerns a specific tax return.
type ActivityLog struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	ReturnID  *int      `json:"return_id"`
}

// ActivityCategory reduces an action label to its coarse category: the first
// word ("Tax", "Document", "Payment", ...). Summaries tally by this key.
func ActivityCategory(action string) string {
	if i := strings.IndexByte(action, ' '); i > 0 {
		return action[:i]
	}
	return action
}
