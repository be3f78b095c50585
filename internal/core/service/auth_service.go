package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

// AuthGateway abstracts the remote authentication API. Login triggers the
// remote OTP email; VerifyOTP exchanges the code for an identity and token.
// Implementations return domain.ErrAuthAPIUnavailable on transport failure
// and domain.ErrAuthAPIRejected on a non-2xx response.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) error
	VerifyOTP(ctx context.Context, email, otp string) (*domain.User, string, error)
}

// OTPStore parks pending logins between the two auth steps.
// Get returns domain.ErrOTPExpired when no live challenge exists.
type OTPStore interface {
	Create(ctx context.Context, email string, pending domain.PendingLogin) error
	Get(ctx context.Context, email string) (*domain.PendingLogin, error)
	Delete(ctx context.Context, email string) error
}

// SessionStore persists established sessions keyed by token.
// Load returns domain.ErrSessionNotFound when the session is absent or its
// stored state is inconsistent (in which case it has been cleared).
type SessionStore interface {
	Save(ctx context.Context, token string, user *domain.User) error
	Load(ctx context.Context, token string) (*domain.User, error)
	Delete(ctx context.Context, token string) error
}

// DemoAccount is one entry of the local fallback credential table.
type DemoAccount struct {
	Email        string
	Name         string
	Role         string
	UserID       int
	PasswordHash string
}

// DefaultDemoAccounts builds the fixed four-account fallback table, one per
// role, with the preset demo credentials bcrypt-hashed at startup.
func DefaultDemoAccounts() []DemoAccount {
	plain := []struct {
		email, password, name, role string
		userID                      int
	}{
		{"admin@taxpro.com", "admin123", "Admin User", domain.RoleAdmin, 4},
		{"user@taxpro.com", "user123", "John Doe", domain.RoleUser, 1},
		{"preparer@taxpro.com", "prep123", "Jane Smith", domain.RolePreparer, 2},
		{"reviewer@taxpro.com", "review123", "Mike Johnson", domain.RoleReviewer, 3},
	}

	accounts := make([]DemoAccount, 0, len(plain))
	for _, p := range plain {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.password), bcrypt.MinCost)
		if err != nil {
			continue
		}
		accounts = append(accounts, DemoAccount{
			Email:        p.email,
			Name:         p.name,
			Role:         p.role,
			UserID:       p.userID,
			PasswordHash: string(hash),
		})
	}
	return accounts
}

// AuthService implements the two-step login flow. The remote API is always
// tried first; any failure there falls back to the demo table so the system
// stays usable without a network.
type AuthService struct {
	gateway   AuthGateway
	otp       OTPStore
	sessions  SessionStore
	demo      []DemoAccount
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(gateway AuthGateway, otp OTPStore, sessions SessionStore, demo []DemoAccount, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		gateway:   gateway,
		otp:       otp,
		sessions:  sessions,
		demo:      demo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login runs the first auth step. Remote acceptance parks a pending login
// awaiting the emailed OTP; remote failure of any kind checks the demo
// table instead. Only when both paths miss does the caller see an error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	err := s.gateway.Login(ctx, email, password)
	if err == nil {
		// Remote path: identity is provisional until verify-otp returns the
		// real record. Name defaults to the mailbox local part, role to user.
		pending := domain.PendingLogin{
			Email: email,
			Name:  mailboxName(email),
			Role:  domain.RoleUser,
		}
		if err := s.otp.Create(ctx, email, pending); err != nil {
			return nil, err
		}
		return &ports.LoginResult{OTPRequired: true, Message: "OTP sent to your email"}, nil
	}

	if !errors.Is(err, domain.ErrAuthAPIUnavailable) && !errors.Is(err, domain.ErrAuthAPIRejected) {
		return nil, err
	}

	account := s.matchDemo(email, password)
	if account == nil {
		s.logger.Debug().Str("email", email).Msg("login rejected: remote failed and no demo match")
		return nil, domain.ErrInvalidCredentials
	}

	pending := domain.PendingLogin{
		Email:    account.Email,
		Name:     account.Name,
		Role:     account.Role,
		UserID:   account.UserID,
		DemoMode: true,
	}
	if err := s.otp.Create(ctx, email, pending); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("demo fallback login accepted")
	return &ports.LoginResult{OTPRequired: true, DemoMode: true, Message: "Demo mode: OTP verification simulated"}, nil
}

// VerifyOTP runs the second auth step and establishes the session. For
// remote challenges the code is verified upstream; if that verification is
// unreachable or rejects, or the challenge was issued in demo mode, any
// six-digit numeric code is accepted.
func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) (*ports.AuthResult, error) {
	pending, err := s.otp.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	if !pending.DemoMode {
		user, remoteToken, err := s.gateway.VerifyOTP(ctx, email, otp)
		if err == nil {
			return s.establish(ctx, email, s.mergeIdentity(user, pending), remoteToken)
		}
		if !errors.Is(err, domain.ErrAuthAPIUnavailable) && !errors.Is(err, domain.ErrAuthAPIRejected) {
			return nil, err
		}
		// fall through to the simulated verification
	}

	if !isSixDigits(otp) {
		return nil, domain.ErrInvalidOTP
	}
	return s.establish(ctx, email, s.pendingIdentity(pending), "")
}

// Restore resolves a session token back to its user, or reports logged-out.
func (s *AuthService) Restore(ctx context.Context, token string) (*domain.User, error) {
	return s.sessions.Load(ctx, token)
}

// SwitchRole overwrites the session actor's role in place and re-issues the
// token. This simulates privilege escalation for demos; it never touches the
// users collection and is not an authorization decision.
func (s *AuthService) SwitchRole(ctx context.Context, token, role string) (*ports.AuthResult, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.sessions.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	user.Role = role

	newToken, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, newToken, user); err != nil {
		return nil, err
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Warn().Err(err).Msg("failed to drop superseded session")
	}

	s.logger.Info().Int("user_id", user.ID).Str("role", role).Msg("session role switched")
	return &ports.AuthResult{Token: newToken, User: user}, nil
}

// Logout clears the session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) establish(ctx context.Context, email string, user *domain.User, remoteToken string) (*ports.AuthResult, error) {
	token := remoteToken
	if token == "" {
		issued, err := s.issueToken(user)
		if err != nil {
			return nil, err
		}
		token = issued
	}

	if err := s.sessions.Save(ctx, token, user); err != nil {
		return nil, err
	}
	if err := s.otp.Delete(ctx, email); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to clear otp challenge")
	}

	s.logger.Info().Int("user_id", user.ID).Str("role", user.Role).Msg("session established")
	return &ports.AuthResult{Token: token, User: user}, nil
}

// mergeIdentity fills gaps in the remote identity from the pending login.
func (s *AuthService) mergeIdentity(user *domain.User, pending *domain.PendingLogin) *domain.User {
	if user == nil {
		return s.pendingIdentity(pending)
	}
	merged := *user
	if merged.Name == "" {
		merged.Name = pending.Name
	}
	if merged.Email == "" {
		merged.Email = pending.Email
	}
	if merged.Role == "" {
		merged.Role = pending.Role
	}
	if merged.ID == 0 {
		merged.ID = demoUserID(merged.Role)
	}
	return &merged
}

// pendingIdentity builds the session user from the parked login alone.
func (s *AuthService) pendingIdentity(pending *domain.PendingLogin) *domain.User {
	id := pending.UserID
	if id == 0 {
		id = demoUserID(pending.Role)
	}
	return &domain.User{
		ID:     id,
		Name:   pending.Name,
		Email:  pending.Email,
		Role:   pending.Role,
		Status: domain.UserStatusActive,
	}
}

func (s *AuthService) matchDemo(email, password string) *DemoAccount {
	for i := range s.demo {
		account := &s.demo[i]
		if !strings.EqualFold(account.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil {
			return account
		}
	}
	return nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// demoUserID maps a role to the seeded user it impersonates.
func demoUserID(role string) int {
	switch role {
	case domain.RoleAdmin:
		return 4
	case domain.RolePreparer:
		return 2
	case domain.RoleReviewer:
		return 3
	default:
		return 1
	}
}

// mailboxName derives a provisional display name from the mailbox local part.
func mailboxName(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

func isSixDigits(otp string) bool {
	if len(otp) != 6 {
		return false
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
