package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taxpro/office-api/internal/core/domain"
)

const otpKey = "taxpro:otp:%s"

// OTPStore parks pending logins in Redis between the login and verify-otp
// steps. Challenges expire after ttl; an expired or absent challenge reads
// as domain.ErrOTPExpired.
type OTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOTPStore wraps the given client. Zero or negative ttl means 5 minutes.
func NewOTPStore(client *redis.Client, ttl time.Duration) *OTPStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &OTPStore{client: client, ttl: ttl}
}

// Create parks a pending login, replacing any live challenge for the email.
func (s *OTPStore) Create(ctx context.Context, email string, pending domain.PendingLogin) error {
	payload, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("marshal pending login: %w", err)
	}
	if err := s.client.Set(ctx, fmt.Sprintf(otpKey, email), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("create otp challenge: %w", err)
	}
	return nil
}

// Get reads the live challenge for the email.
func (s *OTPStore) Get(ctx context.Context, email string) (*domain.PendingLogin, error) {
	raw, err := s.client.Get(ctx, fmt.Sprintf(otpKey, email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrOTPExpired
		}
		return nil, fmt.Errorf("get otp challenge: %w", err)
	}

	var pending domain.PendingLogin
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		return nil, domain.ErrOTPExpired
	}
	return &pending, nil
}

// Delete clears the challenge for the email.
func (s *OTPStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, fmt.Sprintf(otpKey, email)).Err()
}
