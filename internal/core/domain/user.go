package domain

import (
	"errors"
	"time"
)

const (
	RoleUser     = "user"
	RolePreparer = "preparer"
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether role is one of the four known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RolePreparer, RoleReviewer, RoleAdmin:
		return true
	}
	return false
}

// User models a registered account: clients (role user) as well as office
// staff (preparer, reviewer, admin). TotalReturns and TotalPaid are
// denormalized display counters, never recomputed from the other collections.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	JoinDate     time.Time `json:"join_date"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	TotalReturns int       `json:"total_returns"`
	TotalPaid    float64   `json:"total_paid"`
}
