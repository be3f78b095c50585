// Package authgw is the HTTP client for the external authentication API.
// The API is best-effort: the login flow treats any failure here as a cue to
// fall back to the local demo accounts.
package authgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/taxpro/office-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Client calls the remote auth API's login and verify-otp endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the API at baseURL. Zero or negative timeout means
// 10 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type verifyRequest struct {
	Email string `json:"Email"`
	Otp   string `json:"Otp"`
}

type verifyResponse struct {
	User *struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	Token string `json:"token"`
}

// Login submits credentials. A 2xx answer means the API accepted them and
// mailed an OTP; transport failures map to domain.ErrAuthAPIUnavailable and
// any other status to domain.ErrAuthAPIRejected.
func (c *Client) Login(ctx context.Context, email, password string) error {
	resp, err := c.post(ctx, "/api/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAuthAPIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", domain.ErrAuthAPIRejected, resp.StatusCode)
	}
	return nil
}

// VerifyOTP exchanges the emailed code for the user identity and token. The
// returned user may be nil when the API answers 2xx without a user object;
// the caller fills gaps from the pending login.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*domain.User, string, error) {
	resp, err := c.post(ctx, "/api/verify-otp", verifyRequest{Email: email, Otp: otp})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrAuthAPIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: status %d", domain.ErrAuthAPIRejected, resp.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, "", fmt.Errorf("%w: decode response: %v", domain.ErrAuthAPIUnavailable, err)
	}

	var user *domain.User
	if body.User != nil {
		user = &domain.User{
			ID:     body.User.ID,
			Name:   body.User.Name,
			Email:  body.User.Email,
			Role:   body.User.Role,
			Status: domain.UserStatusActive,
		}
	}
	return user, body.Token, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}
