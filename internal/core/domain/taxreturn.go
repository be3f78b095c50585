package domain

import (
	"errors"
	"time"
)

// ReturnStatus represents the lifecycle state of a tax return.
type ReturnStatus string

const (
	StatusUploadedDocuments  ReturnStatus = "Uploaded documents"
	StatusPreAnalysisDone    ReturnStatus = "Pre-analysis done"
	StatusPreparationStarted ReturnStatus = "Preparation started"
	StatusReview             ReturnStatus = "Review"
	StatusReadyToFile        ReturnStatus = "Ready to file"
	StatusFiled              ReturnStatus = "Filed"
)

// ReturnStatuses lists every status in progression order. Rollups iterate this
// slice so counts always come out in workflow order.
var ReturnStatuses = []ReturnStatus{
	StatusUploadedDocuments,
	StatusPreAnalysisDone,
	StatusPreparationStarted,
	StatusReview,
	StatusReadyToFile,
	StatusFiled,
}

var ErrReturnNotFound = errors.New("tax return not found")
var ErrForbidden = errors.New("access forbidden")

// IsKnownReturnStatus reports whether s matches one of the progression states.
// Updates do not enforce this (the status field accepts any string); the
// per-status rollup uses it to keep free-text states out of the buckets.
func IsKnownReturnStatus(s ReturnStatus) bool {
	for _, known := range ReturnStatuses {
		if known == s {
			return true
		}
	}
	return false
}

// Document records client-side metadata about an uploaded file. No file bytes
// are stored anywhere; Size stays the display string the uploader reported.
type Document struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       string    `json:"size"`
	UploadDate time.Time `json:"upload_date"`
	// Notes is the uploader's free-text annotation, distinct from Comment.
	Notes string `json:"comments"`
}

// Comment is a threaded note on a tax return. Author is a snapshot of the
// actor's display name at creation time.
type Comment struct {
	ID     int       `json:"id"`
	Author string    `json:"author"`
	Date   time.Time `json:"date"`
	Text   string    `json:"text"`
}

// TaxReturn is the core aggregate: one filing for one client in one tax year.
// UserName is a snapshot of the owner's name captured at creation and never
// re-joined against the users collection.
type TaxReturn struct {
	ID          int          `json:"id"`
	UserID      int          `json:"user_id"`
	UserName    string       `json:"user_name"`
	Type        string       `json:"type"`
	Year        string       `json:"year"`
	Status      ReturnStatus `json:"status"`
	DateCreated time.Time    `json:"date_created"`
	DateUpdated time.Time    `json:"date_updated"`
	// AssignedTo is the preparer's display name, free text rather than a user id.
	AssignedTo string     `json:"assigned_to,omitempty"`
	Documents  []Document `json:"documents"`
	Comments   []Comment  `json:"comments"`
}
