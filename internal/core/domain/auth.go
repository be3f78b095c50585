package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidOTP = errors.New("invalid otp")
var ErrOTPExpired = errors.New("otp challenge expired")
var ErrSessionNotFound = errors.New("session not found")

// Remote auth API outcomes. Unavailable covers transport failures and
// timeouts; Rejected covers any non-2xx response. Both divert the login flow
// onto the demo fallback path.
var ErrAuthAPIUnavailable = errors.New("auth api unavailable")
var ErrAuthAPIRejected = errors.New("auth api rejected request")

// PendingLogin is the state parked between the login and verify-otp steps.
// DemoMode records that the challenge was issued by the local fallback table
// rather than the remote auth API.
type PendingLogin struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	UserID   int    `json:"user_id"`
	DemoMode bool   `json:"demo_mode"`
}
