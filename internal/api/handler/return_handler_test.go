package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

type stubReturnService struct {
	createFn func(ctx context.Context, in ports.CreateReturnInput) (*domain.TaxReturn, error)
	updateFn func(ctx context.Context, actor ports.Actor, id int, patch ports.ReturnPatch) (*domain.TaxReturn, error)
	listFn   func(ctx context.Context, actor ports.Actor) ([]*domain.TaxReturn, error)
}

func (s *stubReturnService) Create(ctx context.Context, in ports.CreateReturnInput) (*domain.TaxReturn, error) {
	return s.createFn(ctx, in)
}

func (s *stubReturnService) Update(ctx context.Context, actor ports.Actor, id int, patch ports.ReturnPatch) (*domain.TaxReturn, error) {
	return s.updateFn(ctx, actor, id, patch)
}

func (s *stubReturnService) Get(context.Context, ports.Actor, int) (*domain.TaxReturn, error) {
	return nil, domain.ErrReturnNotFound
}

func (s *stubReturnService) List(ctx context.Context, actor ports.Actor) ([]*domain.TaxReturn, error) {
	return s.listFn(ctx, actor)
}

func (s *stubReturnService) AddDocument(context.Context, ports.AddDocumentInput) (*domain.Document, error) {
	return nil, domain.ErrReturnNotFound
}

func (s *stubReturnService) AddComment(context.Context, ports.Actor, int, string) (*domain.Comment, error) {
	return nil, domain.ErrReturnNotFound
}

func (s *stubReturnService) StatusCounts(context.Context, ports.Actor) ([]ports.StatusCount, error) {
	return nil, nil
}

func setActorClaims(c echo.Context, id int, name, role string) {
	c.Set("user_id", id)
	c.Set("name", name)
	c.Set("role", role)
}

func TestReturnHandler_Create_Success(t *testing.T) {
	stub := &stubReturnService{
		createFn: func(_ context.Context, in ports.CreateReturnInput) (*domain.TaxReturn, error) {
			if in.Actor.ID != 1 || in.Actor.Name != "John Doe" {
				t.Fatalf("unexpected actor %+v", in.Actor)
			}
			if in.Type != "1040" || in.Year != "2024" {
				t.Fatalf("unexpected input %+v", in)
			}
			return &domain.TaxReturn{
				ID: 4, UserID: 1, UserName: "John Doe",
				Type: in.Type, Year: in.Year, Status: domain.StatusUploadedDocuments,
				Documents: []domain.Document{}, Comments: []domain.Comment{},
			}, nil
		},
	}
	handler := NewReturnHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/returns", `{"type":"1040","year":"2024"}`)
	setActorClaims(c, 1, "John Doe", domain.RoleUser)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != string(domain.StatusUploadedDocuments) {
		t.Fatalf("unexpected status %v", resp["status"])
	}
	if _, ok := resp["documents"].([]any); !ok {
		t.Fatalf("expected documents array, got %v", resp["documents"])
	}
}

func TestReturnHandler_Create_MissingClaims(t *testing.T) {
	handler := NewReturnHandler(&stubReturnService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/returns", `{"type":"1040","year":"2024"}`)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestReturnHandler_Create_InvalidYear(t *testing.T) {
	stub := &stubReturnService{
		createFn: func(context.Context, ports.CreateReturnInput) (*domain.TaxReturn, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReturnHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/returns", `{"type":"1040","year":"24"}`)
	setActorClaims(c, 1, "John Doe", domain.RoleUser)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestReturnHandler_Update_NotFound(t *testing.T) {
	stub := &stubReturnService{
		updateFn: func(context.Context, ports.Actor, int, ports.ReturnPatch) (*domain.TaxReturn, error) {
			return nil, domain.ErrReturnNotFound
		},
	}
	handler := NewReturnHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/v1/returns/999", `{"status":"Filed"}`)
	c.SetParamNames("id")
	c.SetParamValues("999")
	setActorClaims(c, 4, "Admin User", domain.RoleAdmin)

	err := handler.Update(c)
	if !errors.Is(err, domain.ErrReturnNotFound) {
		t.Fatalf("expected ErrReturnNotFound to propagate, got %v", err)
	}
}

func TestReturnHandler_Update_PatchFields(t *testing.T) {
	stub := &stubReturnService{
		updateFn: func(_ context.Context, actor ports.Actor, id int, patch ports.ReturnPatch) (*domain.TaxReturn, error) {
			if id != 2 {
				t.Fatalf("unexpected id %d", id)
			}
			if patch.Status == nil || *patch.Status != "Filed" {
				t.Fatalf("expected status patch, got %+v", patch)
			}
			if patch.Type != nil || patch.Year != nil || patch.AssignedTo != nil {
				t.Fatalf("expected untouched fields nil, got %+v", patch)
			}
			return &domain.TaxReturn{ID: id, Status: domain.StatusFiled}, nil
		},
	}
	handler := NewReturnHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/returns/2", `{"status":"Filed"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	setActorClaims(c, 4, "Admin User", domain.RoleAdmin)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReturnHandler_List(t *testing.T) {
	stub := &stubReturnService{
		listFn: func(_ context.Context, actor ports.Actor) ([]*domain.TaxReturn, error) {
			if actor.Role != domain.RoleUser {
				t.Fatalf("unexpected actor role %q", actor.Role)
			}
			return []*domain.TaxReturn{{ID: 1, UserID: actor.ID}}, nil
		},
	}
	handler := NewReturnHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/returns", "")
	setActorClaims(c, 1, "John Doe", domain.RoleUser)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 return, got %d", len(resp))
	}
}

func TestReturnHandler_BadID(t *testing.T) {
	handler := NewReturnHandler(&stubReturnService{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/returns/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	setActorClaims(c, 1, "John Doe", domain.RoleUser)

	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
