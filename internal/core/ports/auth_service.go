package ports

import (
	"context"

	"github.com/taxpro/office-api/internal/core/domain"
)

// LoginResult reports the outcome of the first authentication step. A
// successful login always requires a follow-up OTP verification; DemoMode
// marks that the remote auth API was unavailable or rejected the credentials
// and the local demo-account table matched instead.
type LoginResult struct {
	OTPRequired bool   `json:"otp_required"`
	DemoMode    bool   `json:"demo_mode"`
	Message     string `json:"message"`
}

// AuthResult is returned once a session is established or refreshed.
type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// AuthService implements the two-step login flow with its demo fallback
// path, session persistence, and the demo role switch.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyOTP(ctx context.Context, email, otp string) (*AuthResult, error)
	Restore(ctx context.Context, token string) (*domain.User, error)
	SwitchRole(ctx context.Context, token, role string) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
}
