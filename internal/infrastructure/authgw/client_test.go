package authgw

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taxpro/office-api/internal/core/domain"
)

func TestLoginAccepted(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"otp sent"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if err := client.Login(context.Background(), "alice@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if gotPath != "/api/login" {
		t.Errorf("expected /api/login, got %q", gotPath)
	}
	if gotBody["Email"] != "alice@example.com" || gotBody["Password"] != "secret" {
		t.Errorf("unexpected request body %v", gotBody)
	}
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad credentials"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	err := client.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrAuthAPIRejected) {
		t.Fatalf("expected ErrAuthAPIRejected, got %v", err)
	}
}

func TestLoginUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := New(srv.URL, time.Second)
	err := client.Login(context.Background(), "alice@example.com", "secret")
	if !errors.Is(err, domain.ErrAuthAPIUnavailable) {
		t.Fatalf("expected ErrAuthAPIUnavailable, got %v", err)
	}
}

func TestVerifyOTPParsesIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/verify-otp" {
			t.Errorf("expected /api/verify-otp, got %q", r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["Otp"] != "123456" {
			t.Errorf("expected Otp field, got %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user":  map[string]any{"id": 17, "name": "Alice Real", "email": "alice@example.com", "role": "preparer"},
			"token": "remote-token",
		})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	user, token, err := client.VerifyOTP(context.Background(), "alice@example.com", "123456")
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if token != "remote-token" {
		t.Errorf("expected remote token, got %q", token)
	}
	if user == nil || user.ID != 17 || user.Role != "preparer" {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestVerifyOTPWithoutUserObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token":"bare-token"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	user, token, err := client.VerifyOTP(context.Background(), "alice@example.com", "123456")
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
	if token != "bare-token" {
		t.Errorf("expected bare-token, got %q", token)
	}
}
