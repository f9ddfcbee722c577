package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestIDParam(t *testing.T) {
	cases := map[string]bool{
		"42":  true,
		"0":   false,
		"-1":  false,
		"abc": false,
		"":    false,
	}
	for raw, ok := range cases {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", raw)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

		id, err := IDParam(r, "id")
		if ok && (err != nil || id != 42) {
			t.Fatalf("IDParam(%q)=%d,%v", raw, id, err)
		}
		if !ok && err == nil {
			t.Fatalf("IDParam(%q) expected error", raw)
		}
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	if err != nil || d == nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if FormatDate(d) != "2026-03-01" {
		t.Fatalf("unexpected format %s", FormatDate(d))
	}

	d, err = ParseDate("  ")
	if err != nil || d != nil {
		t.Fatalf("empty date should be nil, got %v %v", d, err)
	}

	if _, err := ParseDate("01/03/2026"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]int{"id": 1})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status=%d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("missing content type")
	}
	if rec.Body.String() != "{\"id\":1}\n" {
		t.Fatalf("body=%q", rec.Body.String())
	}
}
