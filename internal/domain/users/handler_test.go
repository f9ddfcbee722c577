package users

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc, _ := seeded(t)
	r := chi.NewRouter()
	RegisterRoutes(r, svc)
	return r
}

func TestLoginHandler(t *testing.T) {
	h := newTestRouter(t)

	cases := []struct {
		name string
		body string
		code int
		text string
	}{
		{"ok", `{"username":"u","password":"p"}`, http.StatusOK, "login successful"},
		{"wrong password", `{"username":"u","password":"x"}`, http.StatusUnauthorized, "invalid credentials"},
		{"unknown user", `{"username":"nobody","password":"p"}`, http.StatusUnauthorized, "invalid credentials"},
		{"bad json", `{`, http.StatusBadRequest, "invalid json"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(c.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != c.code {
				t.Fatalf("expected %d, got %d (%s)", c.code, rec.Code, rec.Body.String())
			}
			if strings.TrimSpace(rec.Body.String()) != c.text {
				t.Fatalf("expected body %q, got %q", c.text, rec.Body.String())
			}
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"ana","email":"ana@example.com","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "s3cret") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response must not expose the password: %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"ana","email":"x@example.com","password":"x"}`))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"bob"}`))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
