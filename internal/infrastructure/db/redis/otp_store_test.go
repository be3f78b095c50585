package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/taxpro/office-api/internal/core/domain"
)

func TestOTPStoreRoundTrip(t *testing.T) {
	_, client := newTestClient(t)
	store := NewOTPStore(client, 5*time.Minute)

	pending := domain.PendingLogin{
		Email:    "user@taxpro.com",
		Name:     "John Doe",
		Role:     domain.RoleUser,
		DemoMode: true,
	}
	if err := store.Create(context.Background(), pending.Email, pending); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Get(context.Background(), pending.Email)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "John Doe" || got.Role != domain.RoleUser || !got.DemoMode {
		t.Errorf("unexpected challenge %+v", got)
	}
}

func TestOTPStoreGetMissingChallenge(t *testing.T) {
	_, client := newTestClient(t)
	store := NewOTPStore(client, 5*time.Minute)

	if _, err := store.Get(context.Background(), "nobody@taxpro.com"); !errors.Is(err, domain.ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
}

func TestOTPStoreChallengeExpires(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewOTPStore(client, 5*time.Minute)

	pending := domain.PendingLogin{Email: "user@taxpro.com", Name: "John Doe", Role: domain.RoleUser}
	if err := store.Create(context.Background(), pending.Email, pending); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mr.FastForward(6 * time.Minute)

	if _, err := store.Get(context.Background(), pending.Email); !errors.Is(err, domain.ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired after ttl, got %v", err)
	}
}

func TestOTPStoreCorruptChallenge(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewOTPStore(client, 5*time.Minute)

	if err := mr.Set(fmt.Sprintf(otpKey, "user@taxpro.com"), "{not json"); err != nil {
		t.Fatalf("seed corrupt challenge: %v", err)
	}

	if _, err := store.Get(context.Background(), "user@taxpro.com"); !errors.Is(err, domain.ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
}

func TestOTPStoreDelete(t *testing.T) {
	_, client := newTestClient(t)
	store := NewOTPStore(client, 5*time.Minute)

	pending := domain.PendingLogin{Email: "user@taxpro.com", Name: "John Doe", Role: domain.RoleUser}
	if err := store.Create(context.Background(), pending.Email, pending); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.Delete(context.Background(), pending.Email); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(context.Background(), pending.Email); !errors.Is(err, domain.ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired after delete, got %v", err)
	}
}
