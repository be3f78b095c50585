package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taxpro/office-api/internal/core/domain"
)

// Three keys per session: the serialized user, an authenticated flag, and an
// echo of the token. A session is valid only when all three agree; a partial
// or inconsistent set is treated as corrupted and cleared on read.
const (
	sessionUserKey  = "taxpro:session:%s:user"
	sessionAuthKey  = "taxpro:session:%s:auth"
	sessionTokenKey = "taxpro:session:%s:token"
)

// SessionStore persists login sessions in Redis, keyed by token.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wraps the given client. Sessions expire after ttl; zero or
// negative means 24 hours.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Save writes the session triple. The keys share one TTL so they expire
// together.
func (s *SessionStore) Save(ctx context.Context, token string, user *domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, fmt.Sprintf(sessionUserKey, token), payload, s.ttl)
	pipe.Set(ctx, fmt.Sprintf(sessionAuthKey, token), "true", s.ttl)
	pipe.Set(ctx, fmt.Sprintf(sessionTokenKey, token), token, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load resolves a token to its user. Any missing or disagreeing key clears
// the whole triple and reports domain.ErrSessionNotFound.
func (s *SessionStore) Load(ctx context.Context, token string) (*domain.User, error) {
	values, err := s.client.MGet(ctx,
		fmt.Sprintf(sessionUserKey, token),
		fmt.Sprintf(sessionAuthKey, token),
		fmt.Sprintf(sessionTokenKey, token),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	rawUser, okUser := values[0].(string)
	rawAuth, okAuth := values[1].(string)
	rawToken, okToken := values[2].(string)
	if !okUser || !okAuth || !okToken || rawAuth != "true" || rawToken != token {
		_ = s.Delete(ctx, token)
		return nil, domain.ErrSessionNotFound
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		_ = s.Delete(ctx, token)
		return nil, domain.ErrSessionNotFound
	}
	if user.ID == 0 {
		_ = s.Delete(ctx, token)
		return nil, domain.ErrSessionNotFound
	}
	return &user, nil
}

// Delete removes the session triple.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx,
		fmt.Sprintf(sessionUserKey, token),
		fmt.Sprintf(sessionAuthKey, token),
		fmt.Sprintf(sessionTokenKey, token),
	).Err()
}
