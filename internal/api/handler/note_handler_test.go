package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/safenotes/notes-system/internal/core/domain"
	"github.com/safenotes/notes-system/internal/core/ports"
)

type stubNoteService struct {
	createFn func(ctx context.Context, caller ports.Caller, title, content string) (*domain.Note, error)
	getFn    func(ctx context.Context, caller ports.Caller, id int64) (*domain.Note, error)
	updateFn func(ctx context.Context, caller ports.Caller, id int64, title, content string) (*domain.Note, error)
	deleteFn func(ctx context.Context, caller ports.Caller, id int64) error
}

func (s *stubNoteService) Create(ctx context.Context, caller ports.Caller, title, content string) (*domain.Note, error) {
	return s.createFn(ctx, caller, title, content)
}

func (s *stubNoteService) Get(ctx context.Context, caller ports.Caller, id int64) (*domain.Note, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubNoteService) Update(ctx context.Context, caller ports.Caller, id int64, title, content string) (*domain.Note, error) {
	return s.updateFn(ctx, caller, id, title, content)
}

func (s *stubNoteService) Delete(ctx context.Context, caller ports.Caller, id int64) error {
	return s.deleteFn(ctx, caller, id)
}

func noteContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("username", "alice")
	c.Set("role", domain.RoleEditor)
	return c, rec
}

func TestNoteHandler_Create_Success(t *testing.T) {
	e := newEcho()
	createdAt := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	stub := &stubNoteService{
		createFn: func(ctx context.Context, caller ports.Caller, title, content string) (*domain.Note, error) {
			if caller.Username != "alice" || caller.Role != domain.RoleEditor {
				t.Fatalf("unexpected caller: %+v", caller)
			}
			if title != "groceries" || content != "milk" {
				t.Fatalf("unexpected args: %s %s", title, content)
			}
			return &domain.Note{ID: 1, OwnerID: 2, Title: title, Content: content, CreatedAt: createdAt}, nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := noteContext(e, http.MethodPost, "/notas", `{"title":"groceries","content":"milk"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(1) || resp["owner_id"] != float64(2) || resp["title"] != "groceries" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestNoteHandler_Create_MissingFields(t *testing.T) {
	e := newEcho()
	stub := &stubNoteService{
		createFn: func(ctx context.Context, caller ports.Caller, title, content string) (*domain.Note, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewNoteHandler(stub)

	c, _ := noteContext(e, http.MethodPost, "/notas", `{"title":"only"}`)
	if code := httpCode(t, h.Create(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestNoteHandler_Get_PropagatesServiceError(t *testing.T) {
	e := newEcho()
	stub := &stubNoteService{
		getFn: func(ctx context.Context, caller ports.Caller, id int64) (*domain.Note, error) {
			return nil, domain.ErrAccessDenied
		},
	}
	h := NewNoteHandler(stub)

	c, _ := noteContext(e, http.MethodGet, "/notas/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Get(c); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestNoteHandler_Get_BadID(t *testing.T) {
	e := newEcho()
	stub := &stubNoteService{
		getFn: func(ctx context.Context, caller ports.Caller, id int64) (*domain.Note, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewNoteHandler(stub)

	for _, raw := range []string{"abc", "0", "-3"} {
		c, _ := noteContext(e, http.MethodGet, "/notas/"+raw, "")
		c.SetParamNames("id")
		c.SetParamValues(raw)
		if code := httpCode(t, h.Get(c)); code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %d", raw, code)
		}
	}
}

func TestNoteHandler_Update_Success(t *testing.T) {
	e := newEcho()
	stub := &stubNoteService{
		updateFn: func(ctx context.Context, caller ports.Caller, id int64, title, content string) (*domain.Note, error) {
			if id != 7 || title != "t2" || content != "c2" {
				t.Fatalf("unexpected args: %d %s %s", id, title, content)
			}
			return &domain.Note{ID: id, OwnerID: 2, Title: title, Content: content}, nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := noteContext(e, http.MethodPut, "/notas/7", `{"title":"t2","content":"c2"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNoteHandler_Delete_NoContent(t *testing.T) {
	e := newEcho()
	stub := &stubNoteService{
		deleteFn: func(ctx context.Context, caller ports.Caller, id int64) error {
			if id != 7 {
				t.Fatalf("unexpected id %d", id)
			}
			return nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := noteContext(e, http.MethodDelete, "/notas/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestNoteHandler_Delete_Missing(t *testing.T) {
	e := newEcho()
	stub := &stubNoteService{
		deleteFn: func(ctx context.Context, caller ports.Caller, id int64) error {
			return domain.ErrNoteNotFound
		},
	}
	h := NewNoteHandler(stub)

	c, _ := noteContext(e, http.MethodDelete, "/notas/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Delete(c); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}
